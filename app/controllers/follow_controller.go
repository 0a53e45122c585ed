package controllers

import (
	"net/http"

	"alumnet/app/dto"
	"alumnet/app/middleware"
	"alumnet/app/services"
)

type FollowController struct{ Followers *services.FollowerService }

func NewFollowController(followers *services.FollowerService) *FollowController {
	return &FollowController{Followers: followers}
}

func (c *FollowController) Toggle(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	following, err := c.Followers.Toggle(claims.UserID, r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	msg := "follow toggled - unfollow"
	if following {
		msg = "follow toggled - follow"
	}
	writeJSON(w, http.StatusOK, dto.ToggleFollowResponse{IsFollowing: following}, msg)
}

func (c *FollowController) GetFollowers(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	list, err := c.Followers.GetFollowers(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FollowersResponse{FollowerList: list, Length: len(list)}, "followers fetched")
}

func (c *FollowController) GetFollowing(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	list, err := c.Followers.GetFollowing(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FollowingResponse{FollowingList: list, Length: len(list)}, "followings fetched")
}
