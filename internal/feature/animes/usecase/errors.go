// Package usecase implements the business logic for the animes feature.
package usecase

import "errors"

// ErrAnimeNotFound is returned when no catalog entry exists for the
// requested ID.
var ErrAnimeNotFound = errors.New("anime not found")
