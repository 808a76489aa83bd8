package services

import (
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"gorm.io/gorm"
)

type ReviewLikeService struct {
	db *gorm.DB
}

func NewReviewLikeService(db *gorm.DB) *ReviewLikeService {
	return &ReviewLikeService{db: db}
}

// Like inserts a like row and returns its id. Duplicates are not
// checked here; uniqueness, if any, is the database's call.
func (s *ReviewLikeService) Like(username string, reviewID uint) (uint, error) {
	like := models.ReviewLike{
		UserID:   username,
		ReviewID: reviewID,
	}

	if err := s.db.Create(&like).Error; err != nil {
		return 0, err
	}

	return like.LikeID, nil
}

func (s *ReviewLikeService) Unlike(username string, reviewID uint) error {
	result := s.db.Where("user_id = ? AND review_id = ?", username, reviewID).
		Delete(&models.ReviewLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.BadRequest("invalid unlike request")
	}

	return nil
}

func (s *ReviewLikeService) CountLikes(reviewID uint) (int, error) {
	var count int64
	err := s.db.Model(&models.ReviewLike{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// LikedReviews returns the ids of the reviews the user has liked.
func (s *ReviewLikeService) LikedReviews(username string) ([]uint, error) {
	reviewIDs := []uint{}
	err := s.db.Model(&models.ReviewLike{}).
		Where("user_id = ?", username).
		Pluck("review_id", &reviewIDs).Error
	if err != nil {
		return nil, err
	}

	return reviewIDs, nil
}
