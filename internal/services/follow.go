package services

import (
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"gorm.io/gorm"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow inserts a follower -> followee edge and returns its id.
// Self-follows and duplicate edges are not checked here.
func (s *FollowService) Follow(followerUsername, followeeUsername string) (uint, error) {
	follow := models.Follow{
		FollowerUserID: followerUsername,
		FolloweeUserID: followeeUsername,
	}

	if err := s.db.Create(&follow).Error; err != nil {
		return 0, err
	}

	return follow.FollowerID, nil
}

func (s *FollowService) Unfollow(followerUsername, followeeUsername string) error {
	result := s.db.Where("follower_user_id = ? AND followee_user_id = ?", followerUsername, followeeUsername).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.BadRequest("invalid unfollow request")
	}

	return nil
}
