package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

type FollowStore interface {
	Follow(followerUsername, followeeUsername string) (uint, error)
	Unfollow(followerUsername, followeeUsername string) error
}

type FollowHandler struct {
	follows FollowStore
}

func NewFollowHandler(follows FollowStore) *FollowHandler {
	return &FollowHandler{follows: follows}
}

func (h *FollowHandler) FollowUser(c *gin.Context) {
	var req models.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("followerUsername and followeeUsername are required"))
		return
	}

	followerID, err := h.follows.Follow(req.FollowerUsername, req.FolloweeUsername)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"followerId": followerID})
}

func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	var req models.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("followerUsername and followeeUsername are required"))
		return
	}

	if err := h.follows.Unfollow(req.FollowerUsername, req.FolloweeUsername); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollow successful"})
}
