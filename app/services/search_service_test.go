package services

import (
	"testing"

	"alumnet/app/dto"
	"alumnet/app/models"
	"alumnet/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAlumni(t *testing.T, db *gorm.DB, username, college, company string) {
	t.Helper()
	u := &models.User{
		Username: username, Email: username + "@example.com", Name: username,
		PasswordHash: "x", Role: models.RoleAlumni,
		CollegeName: college, CompanyName: company,
	}
	require.NoError(t, db.Create(u).Error)
}

func TestSearchRequiresFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repo.NewUserRepository(db))

	_, err := svc.Search(dto.SearchFilters{})
	assert.ErrorIs(t, err, ErrMissingFilter)
}

func TestSearchMatchesAlumniOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repo.NewUserRepository(db))
	seedAlumni(t, db, "alice", "mit college", "acme")
	student := &models.User{Username: "bob", Email: "bob@example.com", Name: "bob", PasswordHash: "x", Role: models.RoleStudent, CollegeName: "mit college"}
	require.NoError(t, db.Create(student).Error)

	resp, err := svc.Search(dto.SearchFilters{CollegeName: "MIT"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "alice", resp.Results[0].Username)
}

func TestSearchCombinesFiltersWithAnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repo.NewUserRepository(db))
	seedAlumni(t, db, "alice", "mit college", "acme corp")
	seedAlumni(t, db, "carol", "mit college", "globex")

	resp, err := svc.Search(dto.SearchFilters{CollegeName: "mit", CompanyName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "alice", resp.Results[0].Username)

	resp, err = svc.Search(dto.SearchFilters{CollegeName: "mit"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestSearchNoMatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repo.NewUserRepository(db))
	seedAlumni(t, db, "alice", "mit college", "acme")

	resp, err := svc.Search(dto.SearchFilters{Location: "antarctica"})
	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Results)
}
