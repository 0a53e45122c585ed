package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"uname,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Signer issues the access/refresh pair. Secrets and expiries are explicit
// construction-time inputs, never read from the environment here.
type Signer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessExp     time.Duration
	RefreshExp    time.Duration
}

func (s *Signer) SignAccess(userID uint, username, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID, Username: username, Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessExp)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.AccessSecret)
}

func (s *Signer) SignRefresh(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.RefreshExp)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.RefreshSecret)
}

func (s *Signer) ParseAccess(tokenStr string) (*Claims, error) {
	return parse(tokenStr, s.AccessSecret)
}

func (s *Signer) ParseRefresh(tokenStr string) (*Claims, error) {
	return parse(tokenStr, s.RefreshSecret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
