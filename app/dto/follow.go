package dto

// PublicUser is the projection exposed for follower/following listings.
type PublicUser struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type ToggleFollowResponse struct {
	IsFollowing bool `json:"isFollowing"`
}

type FollowersResponse struct {
	FollowerList []PublicUser `json:"followerList"`
	Length       int          `json:"length"`
}

type FollowingResponse struct {
	FollowingList []PublicUser `json:"followingList"`
	Length        int          `json:"length"`
}
