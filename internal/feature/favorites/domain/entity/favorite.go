// Package entity defines the domain entities for the favorites feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	animeentity "anime_calendar/internal/feature/animes/domain/entity"
)

// Favorite links one user to one catalog entry. At most one Favorite may
// exist per (UserID, AnimeID) pair, enforced by the composite unique index.
type Favorite struct {
	// ID is a UUID string, assigned on insert.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// UserID is the owning account. Only that account may read or remove
	// the favorite.
	UserID string `gorm:"size:36;not null;uniqueIndex:idx_favorites_user_anime" json:"userId"`

	// AnimeID references the favorited catalog entry. Deleting the entry
	// cascades to its favorites.
	AnimeID uint `gorm:"not null;uniqueIndex:idx_favorites_user_anime" json:"animeId"`

	// Anime is the joined catalog entry, preloaded on read paths that
	// return the favorite to the client.
	Anime animeentity.Anime `gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE" json:"anime"`

	// CreatedAt is the timestamp when the favorite was created.
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns the UUID surrogate before the row is written.
func (f *Favorite) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
