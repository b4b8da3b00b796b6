// Package dto defines data transfer objects for the favorites feature's
// HTTP transport layer.
package dto

// CreateFavoriteReq represents the request body for POST /favorites.
type CreateFavoriteReq struct {
	AnimeID uint `json:"animeId" binding:"required,min=1"`
}
