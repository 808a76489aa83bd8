package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"gorm.io/gorm"
)

// BookLogService mutates the reading-log columns on the users table.
// The read list is an ordered text[] the user appends to; favorites
// are a four-slot text[] indexed by rank, with NULL for empty slots.
type BookLogService struct {
	db *gorm.DB
}

func NewBookLogService(db *gorm.DB) *BookLogService {
	return &BookLogService{db: db}
}

func (s *BookLogService) AddToReadBooks(username, googleBooksAPIID string) ([]string, error) {
	row := s.db.Raw(
		`UPDATE users SET read_books = array_append(read_books, $2) WHERE username = $1 RETURNING read_books`,
		username, googleBooksAPIID,
	).Row()

	return s.scanReadBooks(row, username)
}

func (s *BookLogService) RemoveFromReadBooks(username, googleBooksAPIID string) ([]string, error) {
	row := s.db.Raw(
		`UPDATE users SET read_books = array_remove(read_books, $2) WHERE username = $1 RETURNING read_books`,
		username, googleBooksAPIID,
	).Row()

	return s.scanReadBooks(row, username)
}

func (s *BookLogService) AddFavorite(username, googleBooksAPIID string, rank int) ([]string, error) {
	if !utils.IsValidRank(rank) {
		return nil, utils.BadRequest(fmt.Sprintf("rank must be between %d and %d", utils.MinFavoriteRank, utils.MaxFavoriteRank))
	}

	row := s.db.Raw(
		`UPDATE users SET favorite_books_ranked[$2] = $3 WHERE username = $1 RETURNING favorite_books_ranked`,
		username, rank, googleBooksAPIID,
	).Row()

	return s.scanFavorites(row, username)
}

func (s *BookLogService) RemoveFavorite(username string, rank int) ([]string, error) {
	if !utils.IsValidRank(rank) {
		return nil, utils.BadRequest(fmt.Sprintf("rank must be between %d and %d", utils.MinFavoriteRank, utils.MaxFavoriteRank))
	}

	row := s.db.Raw(
		`UPDATE users SET favorite_books_ranked[$2] = NULL WHERE username = $1 RETURNING favorite_books_ranked`,
		username, rank,
	).Row()

	return s.scanFavorites(row, username)
}

func (s *BookLogService) scanReadBooks(row *sql.Row, username string) ([]string, error) {
	var readBooks pq.StringArray
	if err := row.Scan(&readBooks); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("user not found: " + username)
		}
		return nil, err
	}

	return []string(readBooks), nil
}

// scanFavorites tolerates NULL slots, which slot assignment pads the
// array with.
func (s *BookLogService) scanFavorites(row *sql.Row, username string) ([]string, error) {
	var slots []sql.NullString
	if err := row.Scan(pq.Array(&slots)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("user not found: " + username)
		}
		return nil, err
	}

	favorites := make([]string, len(slots))
	for i, slot := range slots {
		if slot.Valid {
			favorites[i] = slot.String
		}
	}

	return favorites, nil
}
