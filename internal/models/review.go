package models

import (
	"time"
)

type Review struct {
	ReviewID         uint      `json:"review_id" gorm:"column:review_id;primaryKey"`
	UserID           string    `json:"user_id" gorm:"column:user_id;not null;index"`
	GoogleBooksAPIID string    `json:"google_books_api_id" gorm:"column:google_books_api_id;not null;index"`
	Rating           int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 10"`
	ReviewText       string    `json:"review_text" gorm:"column:review_text"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewLike struct {
	LikeID   uint   `json:"like_id" gorm:"column:like_id;primaryKey"`
	UserID   string `json:"user_id" gorm:"column:user_id;not null;index"`
	ReviewID uint   `json:"review_id" gorm:"column:review_id;not null;index"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}

// Request structs for the reviews API. Rating is a pointer so that
// presence is validated rather than non-zero-ness; out-of-range values
// are accepted here and clamped at write time.
type CreateReviewRequest struct {
	Username         string `json:"username" binding:"required"`
	GoogleBooksAPIID string `json:"google_books_api_id" binding:"required"`
	Rating           *int   `json:"rating" binding:"required"`
	ReviewText       string `json:"review_text"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty"`
	ReviewText *string `json:"review_text,omitempty"`
}

type ReviewLikeRequest struct {
	Username string `json:"username" binding:"required"`
	ReviewID uint   `json:"reviewId" binding:"required"`
}
