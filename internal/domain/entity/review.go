// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// RatingMin and RatingMax bound the allowed review rating, inclusive.
	RatingMin = 1
	RatingMax = 5

	// ReviewContentMaxLen caps the review text length in runes.
	ReviewContentMaxLen = 2000
)

// Review is one user's rating and text for one album.
type Review struct {
	ID        uuid.UUID // The unique ID for this review.
	AlbumID   uuid.UUID // The album this review targets.
	AuthorID  uuid.UUID // The user who wrote this review.
	Content   string    // Non-blank review text, bounded by ReviewContentMaxLen.
	Rating    int       // Integer rating in [RatingMin, RatingMax].
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AverageRating computes the displayed album rating from the current review
// ratings: the arithmetic mean rounded to one decimal, or 0 when no ratings
// remain. It is pure and safe to recompute at any time.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	mean := float64(sum) / float64(len(ratings))

	return math.Round(mean*10) / 10
}
