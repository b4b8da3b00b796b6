// Package usecase implements the business logic for the favorites feature.
package usecase

import "errors"

var (
	// ErrAnimeNotFound is returned when favoriting a catalog entry that
	// does not exist.
	ErrAnimeNotFound = errors.New("anime not found")

	// ErrFavoriteNotFound is returned when no favorite matches the
	// requested ID or (user, anime) pair.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrAlreadyFavorited is returned when the (user, anime) pair already
	// has a favorite.
	ErrAlreadyFavorited = errors.New("anime is already favorited")

	// ErrNotOwner is returned when a favorite exists but belongs to a
	// different user than the requester.
	ErrNotOwner = errors.New("favorite belongs to another user")
)
