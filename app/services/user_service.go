package services

import (
	"errors"
	"strings"

	"alumnet/app/models"
	"alumnet/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) Register(username, name, email, password string) (*models.User, error) {
	if username == "" || name == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	count, err := s.users.CountByIdentity(username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) StoreRefreshToken(id uint, token string) error {
	return s.users.SetRefreshToken(id, token)
}

func (s *UserService) ClearRefreshToken(id uint) error {
	return s.users.SetRefreshToken(id, "")
}

// ChangePassword verifies the old credential and rewrites only the hash,
// leaving every other field untouched.
func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrMissingField
	}
	u, err := s.Get(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdateFields(id, map[string]any{"password_hash": string(hash)})
}
