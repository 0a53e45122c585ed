package models

import "time"

// Follower is a directed follow edge. The composite unique index keeps at
// most one edge per ordered pair, so concurrent toggles cannot duplicate it.
type Follower struct {
	ID           uint `gorm:"primaryKey"`
	FollowFromID uint `gorm:"index;uniqueIndex:idx_follow_pair;not null"`
	FollowToID   uint `gorm:"index;uniqueIndex:idx_follow_pair;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
