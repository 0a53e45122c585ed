package models

import "time"

const (
	RoleStudent = "student"
	RoleAlumni  = "alumni"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:191;not null"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	Name         string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32"`
	PhoneNo      string `gorm:"size:32"`
	LinkedInURL  string `gorm:"size:512"`
	CollegeName  string `gorm:"size:255"`
	CourseName   string `gorm:"size:255"`
	CompanyName  string `gorm:"size:255"`
	Location     string `gorm:"size:255"`
	Expertise    string `gorm:"size:255"`
	AvatarURL    string `gorm:"size:512"`
	AvatarKey    string `gorm:"size:255"`
	RefreshToken string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
