package services

import (
	"context"
	"io"
	"strings"

	"alumnet/app/dto"
	"alumnet/app/models"
	"alumnet/app/repo"
)

// AvatarUploader pushes an avatar to the remote object store and reports the
// public URL plus the remote identifier.
type AvatarUploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*dto.AvatarAsset, error)
}

type ProfileService struct {
	users    *repo.UserRepository
	uploader AvatarUploader
}

func NewProfileService(users *repo.UserRepository, uploader AvatarUploader) *ProfileService {
	return &ProfileService{users: users, uploader: uploader}
}

func (s *ProfileService) UpdateStudent(ctx context.Context, userID uint, f dto.ProfileFields, avatarName string, avatar io.Reader) (*models.User, error) {
	if f.Name == "" || f.PhoneNo == "" || f.LinkedInURL == "" || f.CollegeName == "" || f.CourseName == "" {
		return nil, ErrMissingField
	}
	fields := baseFields(models.RoleStudent, f)
	return s.apply(ctx, userID, fields, avatarName, avatar)
}

func (s *ProfileService) UpdateAlumni(ctx context.Context, userID uint, f dto.ProfileFields, avatarName string, avatar io.Reader) (*models.User, error) {
	if f.Name == "" || f.PhoneNo == "" || f.LinkedInURL == "" || f.CollegeName == "" || f.CourseName == "" ||
		f.CompanyName == "" || f.Location == "" || f.Expertise == "" {
		return nil, ErrMissingField
	}
	fields := baseFields(models.RoleAlumni, f)
	fields["company_name"] = strings.ToLower(f.CompanyName)
	fields["location"] = strings.ToLower(f.Location)
	fields["expertise"] = strings.ToLower(f.Expertise)
	return s.apply(ctx, userID, fields, avatarName, avatar)
}

// apply uploads the avatar first, then rewrites the profile in one update.
// Nothing is persisted when the upload does not yield a URL.
func (s *ProfileService) apply(ctx context.Context, userID uint, fields map[string]any, avatarName string, avatar io.Reader) (*models.User, error) {
	if s.uploader == nil || avatar == nil {
		return nil, ErrUploadFailed
	}
	asset, err := s.uploader.Upload(ctx, avatarName, avatar)
	if err != nil || asset == nil || asset.URL == "" {
		return nil, ErrUploadFailed
	}
	fields["avatar_url"] = asset.URL
	fields["avatar_key"] = asset.Key
	if err := s.users.UpdateFields(userID, fields); err != nil {
		return nil, err
	}
	return s.users.FindByID(userID)
}

func baseFields(role string, f dto.ProfileFields) map[string]any {
	return map[string]any{
		"role":          role,
		"name":          f.Name,
		"phone_no":      f.PhoneNo,
		"linked_in_url": f.LinkedInURL,
		"college_name":  strings.ToLower(f.CollegeName),
		"course_name":   strings.ToLower(f.CourseName),
	}
}
