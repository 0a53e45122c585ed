package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserResponse is a User with credential and token fields stripped.
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	PhoneNo     string `json:"phoneNo,omitempty"`
	LinkedInURL string `json:"linkedInUrl,omitempty"`
	CollegeName string `json:"collegeName,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Location    string `json:"location,omitempty"`
	Expertise   string `json:"areaOfExpertise,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}
