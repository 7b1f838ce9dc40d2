// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artist represents a musician or band in the catalog.
type Artist struct {
	ID        uuid.UUID // The unique ID for this artist.
	Name      string    // Unique display name of the artist.
	Bio       string    // Free-text biography shown on the artist page.
	Image     string    // Reference to the artist image, may be empty.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Album represents one release by an artist. AverageRating is derived state:
// it must always equal the mean of the album's current review ratings.
type Album struct {
	ID            uuid.UUID   // The unique ID for this album.
	ArtistID      uuid.UUID   // Links the album to its artist.
	Title         string      // Album title, unique per artist.
	ReleaseYear   int         // Year of release.
	Cover         string      // Reference to cover art, may be empty.
	AverageRating float64     // Mean of current review ratings, 0 when none exist.
	FavoritedBy   []uuid.UUID // IDs of users who favorited this album.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
