// Package entity defines the domain entities for the animes feature.
package entity

import "time"

// ReleaseDay is the weekday on which new episodes of an anime air.
type ReleaseDay string

// Weekday values accepted for Anime.ReleaseDay.
const (
	Sundays    ReleaseDay = "SUNDAYS"
	Mondays    ReleaseDay = "MONDAYS"
	Tuesdays   ReleaseDay = "TUESDAYS"
	Wednesdays ReleaseDay = "WEDNESDAYS"
	Thursdays  ReleaseDay = "THURSDAYS"
	Fridays    ReleaseDay = "FRIDAYS"
	Saturdays  ReleaseDay = "SATURDAYS"
)

// Valid reports whether d is one of the seven weekday values.
func (d ReleaseDay) Valid() bool {
	switch d {
	case Sundays, Mondays, Tuesdays, Wednesdays, Thursdays, Fridays, Saturdays:
		return true
	}
	return false
}

// Anime represents one catalog entry in the release calendar.
type Anime struct {
	// ID is the unique identifier, generated on insert.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the display title. It is the only required field.
	Title string `gorm:"size:255;not null" json:"title"`

	// Slug is a URL-friendly version of the title. Uniqueness is not
	// enforced at this layer.
	Slug string `gorm:"size:255" json:"slug,omitempty"`

	// CoverURL points at the cover image.
	CoverURL string `gorm:"size:512" json:"cover_url,omitempty"`

	// Genres is a free-form list of genre names. Order carries no meaning.
	Genres []string `gorm:"serializer:json" json:"genres"`

	// ReleaseYear is the year the anime airs.
	ReleaseYear *int `json:"release_year,omitempty"`

	// ReleaseDay is the weekday new episodes air on.
	ReleaseDay ReleaseDay `gorm:"size:16" json:"release_day,omitempty"`

	// IsRecommended marks editorially recommended entries.
	IsRecommended bool `gorm:"default:false" json:"is_recommended"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}
