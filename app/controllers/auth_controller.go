package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"alumnet/app/dto"
	jwtutil "alumnet/app/jwt"
	"alumnet/app/middleware"
	"alumnet/app/models"
	"alumnet/app/services"
)

type AuthController struct {
	Users    *services.UserService
	Signer   *jwtutil.Signer
	Denylist *jwtutil.Denylist
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer, denylist *jwtutil.Denylist) *AuthController {
	return &AuthController{Users: users, Signer: signer, Denylist: denylist}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Register(req.Username, req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userResponse(u), "user registered")
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeError(w, services.ErrMissingField)
		return
	}
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	access, err := c.Signer.SignAccess(u.ID, u.Username, u.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	refresh, err := c.Signer.SignRefresh(u.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Users.StoreRefreshToken(u.ID, refresh); err != nil {
		writeError(w, err)
		return
	}
	setCookie(w, "accessToken", access, c.Signer.AccessExp)
	setCookie(w, "refreshToken", refresh, c.Signer.RefreshExp)
	writeJSON(w, http.StatusOK, dto.LoginResponse{User: userResponse(u), AccessToken: access, RefreshToken: refresh}, "logged in")
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	if err := c.Users.ClearRefreshToken(claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	if claims.ExpiresAt != nil {
		_ = c.Denylist.Revoke(r.Context(), claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	clearCookie(w, "accessToken")
	clearCookie(w, "refreshToken")
	writeJSON(w, http.StatusOK, struct{}{}, "logged out")
}

func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	var req dto.ChangePasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.ChangePassword(claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{}, "password changed")
}

func (c *AuthController) MyProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	u, err := c.Users.Get(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse(u), "user found")
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   true,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: true})
}

func userResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
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
