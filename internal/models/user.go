package models

import (
	"time"

	"github.com/lib/pq"
)

// User rows are created and destroyed by the external user-management
// service. This backend only touches the reading-log columns.
type User struct {
	Username            string         `json:"username" gorm:"primaryKey"`
	ReadBooks           pq.StringArray `json:"read_books" gorm:"column:read_books;type:text[]"`
	FavoriteBooksRanked pq.StringArray `json:"favorite_books_ranked" gorm:"column:favorite_books_ranked;type:text[]"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Request structs for the book-log API
type ReadBookRequest struct {
	Username         string `json:"username" binding:"required"`
	GoogleBooksAPIID string `json:"googleBooksApiId" binding:"required"`
}

type FavoriteBookRequest struct {
	Username         string `json:"username" binding:"required"`
	GoogleBooksAPIID string `json:"googleBooksApiId" binding:"required"`
	Rank             int    `json:"rank" binding:"required,min=1,max=4"`
}

type RemoveFavoriteBookRequest struct {
	Username string `json:"username" binding:"required"`
	Rank     int    `json:"rank" binding:"required,min=1,max=4"`
}
