package repo

import (
	"alumnet/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowerRepository struct{ db *gorm.DB }

func NewFollowerRepository(db *gorm.DB) *FollowerRepository { return &FollowerRepository{db: db} }

// PublicProfile is the projection resolved for each edge endpoint. Edges
// whose user row no longer exists scan as empty fields rather than being
// filtered out.
type PublicProfile struct {
	Username  string
	Name      string
	AvatarURL string
}

func (r *FollowerRepository) FindEdge(fromID, toID uint) (*models.Follower, error) {
	var e models.Follower
	if err := r.db.Where("follow_from_id = ? AND follow_to_id = ?", fromID, toID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts the edge; the unique pair index plus DO NOTHING makes a
// concurrent duplicate insert a no-op instead of a second edge.
func (r *FollowerRepository) Create(e *models.Follower) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follow_from_id"}, {Name: "follow_to_id"}},
		DoNothing: true,
	}).Create(e).Error
}

func (r *FollowerRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Follower{}, id).Error
}

func (r *FollowerRepository) Followers(userID uint) ([]PublicProfile, error) {
	var out []PublicProfile
	err := r.db.Model(&models.Follower{}).
		Select("COALESCE(users.username, '') AS username, COALESCE(users.name, '') AS name, COALESCE(users.avatar_url, '') AS avatar_url").
		Joins("LEFT JOIN users ON users.id = followers.follow_from_id").
		Where("followers.follow_to_id = ?", userID).
		Scan(&out).Error
	return out, err
}

func (r *FollowerRepository) Following(userID uint) ([]PublicProfile, error) {
	var out []PublicProfile
	err := r.db.Model(&models.Follower{}).
		Select("COALESCE(users.username, '') AS username, COALESCE(users.name, '') AS name, COALESCE(users.avatar_url, '') AS avatar_url").
		Joins("LEFT JOIN users ON users.id = followers.follow_to_id").
		Where("followers.follow_from_id = ?", userID).
		Scan(&out).Error
	return out, err
}
