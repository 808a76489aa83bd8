package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

// ReviewStore is what the handler needs from the review access layer.
type ReviewStore interface {
	Create(username, googleBooksAPIID string, rating int, reviewText string) (*models.Review, error)
	Get(reviewID uint) (*models.Review, error)
	GetByBook(googleBooksAPIID string) ([]models.Review, error)
	GetByUser(username string) ([]models.Review, error)
	Update(reviewID uint, rating *int, reviewText *string) (*models.Review, error)
	Delete(reviewID uint) error
}

type ReviewHandler struct {
	reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username, google_books_api_id and rating are required"))
		return
	}

	review, err := h.reviews.Create(req.Username, req.GoogleBooksAPIID, *req.Rating, req.ReviewText)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	review, err := h.reviews.Get(reviewID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("invalid review update payload"))
		return
	}

	review, err := h.reviews.Update(reviewID, req.Rating, req.ReviewText)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	if err := h.reviews.Delete(reviewID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) GetBookReviews(c *gin.Context) {
	googleBooksAPIID := c.Param("google_books_api_id")
	if googleBooksAPIID == "" {
		c.Error(utils.BadRequest("google_books_api_id is required"))
		return
	}

	reviews, err := h.reviews.GetByBook(googleBooksAPIID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	reviews, err := h.reviews.GetByUser(c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func reviewIDParam(c *gin.Context) (uint, bool) {
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.Error(utils.BadRequest("invalid review id"))
		return 0, false
	}
	return uint(reviewID), true
}
