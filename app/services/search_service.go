package services

import (
	"alumnet/app/dto"
	"alumnet/app/models"
	"alumnet/app/repo"
)

type SearchService struct{ users *repo.UserRepository }

func NewSearchService(users *repo.UserRepository) *SearchService {
	return &SearchService{users: users}
}

// Search runs a case-insensitive substring match per supplied filter,
// AND-combined, over alumni profiles only.
func (s *SearchService) Search(f dto.SearchFilters) (*dto.SearchResponse, error) {
	filters := map[string]string{}
	if f.Name != "" {
		filters["name"] = f.Name
	}
	if f.CollegeName != "" {
		filters["college_name"] = f.CollegeName
	}
	if f.CourseName != "" {
		filters["course_name"] = f.CourseName
	}
	if f.CompanyName != "" {
		filters["company_name"] = f.CompanyName
	}
	if f.Location != "" {
		filters["location"] = f.Location
	}
	if f.Expertise != "" {
		filters["expertise"] = f.Expertise
	}
	if len(filters) == 0 {
		return nil, ErrMissingFilter
	}

	users, err := s.users.Search(filters)
	if err != nil {
		return nil, err
	}
	results := make([]dto.SearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, searchResult(u))
	}
	return &dto.SearchResponse{Count: len(results), Results: results}, nil
}

func searchResult(u models.User) dto.SearchResult {
	return dto.SearchResult{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNo:     u.PhoneNo,
		LinkedInURL: u.LinkedInURL,
		CollegeName: u.CollegeName,
		CourseName:  u.CourseName,
		CompanyName: u.CompanyName,
		Location:    u.Location,
		Expertise:   u.Expertise,
		AvatarURL:   u.AvatarURL,
	}
}
