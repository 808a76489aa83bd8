package utils

import "strings"

const (
	MinRating = 1
	MaxRating = 10

	MinFavoriteRank = 1
	MaxFavoriteRank = 4
)

// ClampRating forces a rating into the valid range instead of
// rejecting it; out-of-range input is a soft error here.
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

func IsValidRank(rank int) bool {
	return rank >= MinFavoriteRank && rank <= MaxFavoriteRank
}

func SanitizeString(input string) string {
	return strings.TrimSpace(input)
}
