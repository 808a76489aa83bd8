package services

import (
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create stores a new review. Out-of-range ratings are clamped into
// [1,10] rather than rejected.
func (s *ReviewService) Create(username, googleBooksAPIID string, rating int, reviewText string) (*models.Review, error) {
	review := models.Review{
		UserID:           username,
		GoogleBooksAPIID: googleBooksAPIID,
		Rating:           utils.ClampRating(rating),
		ReviewText:       utils.SanitizeString(reviewText),
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *ReviewService) Get(reviewID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "review_id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("review not found with id: %d", reviewID))
		}
		return nil, err
	}

	return &review, nil
}

func (s *ReviewService) GetByBook(googleBooksAPIID string) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.Where("google_books_api_id = ?", googleBooksAPIID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *ReviewService) GetByUser(username string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.Where("user_id = ?", username).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// Update applies a partial update over rating and review_text. A
// payload with neither field is a bad request; an unknown id is not
// found. Returns the updated row.
func (s *ReviewService) Update(reviewID uint, rating *int, reviewText *string) (*models.Review, error) {
	fields := []UpdateField{
		{Column: "rating", Set: rating != nil},
		{Column: "review_text", Set: reviewText != nil},
	}
	if rating != nil {
		fields[0].Value = utils.ClampRating(*rating)
	}
	if reviewText != nil {
		fields[1].Value = utils.SanitizeString(*reviewText)
	}

	setClause, values, err := BuildPartialUpdate(fields)
	if err != nil {
		return nil, err
	}
	values = append(values, reviewID)

	query := fmt.Sprintf(
		`UPDATE reviews SET %s WHERE review_id = $%d
		 RETURNING review_id, user_id, google_books_api_id, rating, review_text, created_at`,
		setClause, len(values),
	)

	var review models.Review
	result := s.db.Raw(query, values...).Scan(&review)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFound(fmt.Sprintf("review not found with id: %d", reviewID))
	}

	return &review, nil
}

func (s *ReviewService) Delete(reviewID uint) error {
	result := s.db.Delete(&models.Review{}, "review_id = ?", reviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(fmt.Sprintf("review not found with id: %d", reviewID))
	}

	return nil
}
