package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/api/middleware"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

type BookLogStore interface {
	AddToReadBooks(username, googleBooksAPIID string) ([]string, error)
	RemoveFromReadBooks(username, googleBooksAPIID string) ([]string, error)
	AddFavorite(username, googleBooksAPIID string, rank int) ([]string, error)
	RemoveFavorite(username string, rank int) ([]string, error)
}

// BookLogHandler serves the personal reading log. All routes require
// the caller to be the subject user or an admin.
type BookLogHandler struct {
	bookLog BookLogStore
}

func NewBookLogHandler(bookLog BookLogStore) *BookLogHandler {
	return &BookLogHandler{bookLog: bookLog}
}

func (h *BookLogHandler) AddReadBook(c *gin.Context) {
	var req models.ReadBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username and googleBooksApiId are required"))
		return
	}
	if err := middleware.EnsureCorrectUserOrAdmin(c, req.Username); err != nil {
		c.Error(err)
		return
	}

	readBooks, err := h.bookLog.AddToReadBooks(req.Username, req.GoogleBooksAPIID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"readBooks": readBooks})
}

func (h *BookLogHandler) RemoveReadBook(c *gin.Context) {
	var req models.ReadBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username and googleBooksApiId are required"))
		return
	}
	if err := middleware.EnsureCorrectUserOrAdmin(c, req.Username); err != nil {
		c.Error(err)
		return
	}

	readBooks, err := h.bookLog.RemoveFromReadBooks(req.Username, req.GoogleBooksAPIID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"readBooks": readBooks})
}

func (h *BookLogHandler) AddFavoriteBook(c *gin.Context) {
	var req models.FavoriteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username, googleBooksApiId and rank (1-4) are required"))
		return
	}
	if err := middleware.EnsureCorrectUserOrAdmin(c, req.Username); err != nil {
		c.Error(err)
		return
	}

	favorites, err := h.bookLog.AddFavorite(req.Username, req.GoogleBooksAPIID, req.Rank)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favoriteBooksRanked": favorites})
}

func (h *BookLogHandler) RemoveFavoriteBook(c *gin.Context) {
	var req models.RemoveFavoriteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("username and rank (1-4) are required"))
		return
	}
	if err := middleware.EnsureCorrectUserOrAdmin(c, req.Username); err != nil {
		c.Error(err)
		return
	}

	favorites, err := h.bookLog.RemoveFavorite(req.Username, req.Rank)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favoriteBooksRanked": favorites})
}
