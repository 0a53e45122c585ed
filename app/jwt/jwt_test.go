package jwtutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner() *Signer {
	return &Signer{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		Issuer:        "alumnet-test",
		AccessExp:     15 * time.Minute,
		RefreshExp:    240 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newSigner()
	token, err := s.SignAccess(42, "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := s.ParseAccess(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alumnet-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := newSigner()
	token, err := s.SignRefresh(42)
	require.NoError(t, err)

	claims, err := s.ParseRefresh(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	s := newSigner()
	access, err := s.SignAccess(42, "alice", "alice@example.com")
	require.NoError(t, err)
	refresh, err := s.SignRefresh(42)
	require.NoError(t, err)

	_, err = s.ParseRefresh(access)
	assert.Error(t, err)
	_, err = s.ParseAccess(refresh)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	s := newSigner()
	token, err := s.SignAccess(42, "alice", "alice@example.com")
	require.NoError(t, err)

	other := newSigner()
	other.AccessSecret = []byte("different")
	_, err = other.ParseAccess(token)
	assert.Error(t, err)
}

func TestDenylistWithoutRedisIsDisabled(t *testing.T) {
	d := NewDenylist(nil)
	ctx := context.Background()

	assert.NoError(t, d.Revoke(ctx, "some-jti", time.Minute))
	assert.False(t, d.Revoked(ctx, "some-jti"))

	var nilList *Denylist
	assert.False(t, nilList.Revoked(ctx, "some-jti"))
}
