package services

import (
	"errors"
	"fmt"
	"strconv"

	"alumnet/app/dto"
	"alumnet/app/models"
	"alumnet/app/repo"

	"gorm.io/gorm"
)

type FollowerService struct{ followers *repo.FollowerRepository }

func NewFollowerService(followers *repo.FollowerRepository) *FollowerService {
	return &FollowerService{followers: followers}
}

// Toggle flips the follow edge from actor to target: an existing edge is
// removed, a missing one is created. Self-follow is rejected.
func (s *FollowerService) Toggle(actorID uint, target string) (bool, error) {
	targetID, err := ParseUserID(target)
	if err != nil {
		return false, ErrInvalidInput
	}
	if targetID == actorID {
		return false, ErrInvalidInput
	}

	edge, err := s.followers.FindEdge(actorID, targetID)
	if err == nil {
		if err := s.followers.DeleteByID(edge.ID); err != nil {
			return false, fmt.Errorf("delete follow edge: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := s.followers.Create(&models.Follower{FollowFromID: actorID, FollowToID: targetID}); err != nil {
		return false, fmt.Errorf("create follow edge: %w", err)
	}
	return true, nil
}

func (s *FollowerService) GetFollowers(userID uint) ([]dto.PublicUser, error) {
	rows, err := s.followers.Followers(userID)
	if err != nil {
		return nil, err
	}
	return toPublic(rows), nil
}

func (s *FollowerService) GetFollowing(userID uint) ([]dto.PublicUser, error) {
	rows, err := s.followers.Following(userID)
	if err != nil {
		return nil, err
	}
	return toPublic(rows), nil
}

func toPublic(rows []repo.PublicProfile) []dto.PublicUser {
	out := make([]dto.PublicUser, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PublicUser{Username: r.Username, Name: r.Name, AvatarURL: r.AvatarURL})
	}
	return out
}

// ParseUserID validates a candidate identity key.
func ParseUserID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidInput
	}
	return uint(id), nil
}
