package repo

import (
	"strings"

	"alumnet/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByIdentity(username, email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error
}

// UpdateFields applies a single column-map update so a profile rewrite is one
// store call from the caller's view.
func (r *UserRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) SetRefreshToken(id uint, token string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("refresh_token", token).Error
}

// Search matches each filter as a case-insensitive substring against its
// column, AND-combined, restricted to alumni records.
func (r *UserRepository) Search(filters map[string]string) ([]models.User, error) {
	q := r.db.Model(&models.User{}).Where("role = ?", models.RoleAlumni)
	for column, term := range filters {
		q = q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
