package services

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("invalid credentials")
	ErrConflict      = errors.New("already exists")
	ErrMissingField  = errors.New("all fields are required")
	ErrMissingFilter = errors.New("at least one search filter is required")
	ErrUploadFailed  = errors.New("avatar upload failed")
)
