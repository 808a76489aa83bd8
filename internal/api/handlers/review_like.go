package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

type ReviewLikeStore interface {
	Like(username string, reviewID uint) (uint, error)
	Unlike(username string, reviewID uint) error
	CountLikes(reviewID uint) (int, error)
	LikedReviews(username string) ([]uint, error)
}

type ReviewLikeHandler struct {
	likes ReviewLikeStore
}

func NewReviewLikeHandler(likes ReviewLikeStore) *ReviewLikeHandler {
	return &ReviewLikeHandler{likes: likes}
}

func (h *ReviewLikeHandler) LikeReview(c *gin.Context) {
	var req models.ReviewLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username and reviewId are required"))
		return
	}

	likeID, err := h.likes.Like(req.Username, req.ReviewID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"likeId": likeID})
}

func (h *ReviewLikeHandler) UnlikeReview(c *gin.Context) {
	var req models.ReviewLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username and reviewId are required"))
		return
	}

	if err := h.likes.Unlike(req.Username, req.ReviewID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review unlike successful"})
}

func (h *ReviewLikeHandler) GetLikeCount(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.Error(utils.BadRequest("invalid review id"))
		return
	}

	count, err := h.likes.CountLikes(uint(reviewID))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likeCount": count})
}

func (h *ReviewLikeHandler) GetUserLikes(c *gin.Context) {
	likedReviews, err := h.likes.LikedReviews(c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likedReviews})
}
