package services

import (
	"fmt"
	"testing"

	"alumnet/app/models"
	"alumnet/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowerService(t *testing.T) (*FollowerService, *UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewFollowerService(repo.NewFollowerRepository(db)), NewUserService(repo.NewUserRepository(db)), db
}

func registerPair(t *testing.T, users *UserService) (*models.User, *models.User) {
	t.Helper()
	a, err := users.Register("alice", "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	b, err := users.Register("bob", "Bob", "bob@example.com", "secret")
	require.NoError(t, err)
	return a, b
}

func TestToggleAlternates(t *testing.T) {
	svc, users, db := newFollowerService(t)
	a, b := registerPair(t, users)
	target := fmt.Sprint(b.ID)

	following, err := svc.Toggle(a.ID, target)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.Toggle(a.ID, target)
	require.NoError(t, err)
	assert.False(t, following)

	var count int64
	require.NoError(t, db.Model(&models.Follower{}).Count(&count).Error)
	assert.Zero(t, count)

	// back to followed again
	following, err = svc.Toggle(a.ID, target)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestToggleRejectsInvalidTarget(t *testing.T) {
	svc, users, _ := newFollowerService(t)
	a, _ := registerPair(t, users)

	_, err := svc.Toggle(a.ID, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(a.ID, "0")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(a.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleRejectsSelfFollow(t *testing.T) {
	svc, users, _ := newFollowerService(t)
	a, _ := registerPair(t, users)

	_, err := svc.Toggle(a.ID, fmt.Sprint(a.ID))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListingsReturnExactEdgeSets(t *testing.T) {
	svc, users, _ := newFollowerService(t)
	a, b := registerPair(t, users)
	c, err := users.Register("carol", "Carol", "carol@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Toggle(b.ID, fmt.Sprint(a.ID))
	require.NoError(t, err)
	_, err = svc.Toggle(c.ID, fmt.Sprint(a.ID))
	require.NoError(t, err)
	_, err = svc.Toggle(a.ID, fmt.Sprint(c.ID))
	require.NoError(t, err)

	followers, err := svc.GetFollowers(a.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(followers))
	for _, f := range followers {
		names = append(names, f.Username)
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := svc.GetFollowing(a.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Username)

	// bob follows a but nobody follows bob
	followers, err = svc.GetFollowers(b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
