// Package handler provides the HTTP handlers for the favorites feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anime_calendar/internal/feature/favorites/domain/entity"
	"anime_calendar/internal/feature/favorites/transport/http/dto"
	"anime_calendar/internal/feature/favorites/usecase"
	jwtmw "anime_calendar/internal/platform/jwt"
)

// FavoriteUsecase defines the favorite operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type FavoriteUsecase interface {
	Create(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error)
	List(ctx context.Context, userID string) ([]entity.Favorite, error)
	FindByID(ctx context.Context, id, userID string) (*entity.Favorite, error)
	FindByAnime(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error)
	RemoveByID(ctx context.Context, id, userID string) error
	RemoveByAnime(ctx context.Context, userID string, animeID uint) error
	IsFavorite(ctx context.Context, userID string, animeID uint) (bool, error)
}

// FavoriteHandler handles the HTTP requests of the /favorites routes. All
// of them require an authenticated user.
type FavoriteHandler struct {
	favorites FavoriteUsecase
}

// NewFavoriteHandler creates a new FavoriteHandler with the usecase
// injected.
func NewFavoriteHandler(favorites FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// animeIDParam parses the :animeId route parameter. A non-numeric or
// non-positive value responds 400 and reports false.
func animeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("animeId"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the favorites sentinel errors to their status codes and
// everything else to an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAnimeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "anime not found"})
	case errors.Is(err, usecase.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
	case errors.Is(err, usecase.ErrAlreadyFavorited):
		c.JSON(http.StatusConflict, gin.H{"error": "anime is already in your favorites"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have access to this favorite"})
	default:
		slog.Error("favorites operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Create handles POST /favorites.
// - 400 when the body fails validation
// - 404 when the anime does not exist
// - 409 when the pair is already favorited
// - 201 with a confirmation and the joined favorite on success
func (h *FavoriteHandler) Create(c *gin.Context) {
	var req dto.CreateFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID := c.GetString(jwtmw.ContextUserID)
	favorite, err := h.favorites.Create(c.Request.Context(), userID, req.AnimeID)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("favorite created", "favorite_id", favorite.ID, "user_id", userID, "anime_id", req.AnimeID)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "anime added to favorites",
		"favorite": favorite,
	})
}

// List handles GET /favorites and returns {total, favorites} for the
// requesting user, newest first.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     len(favorites),
		"favorites": favorites,
	})
}

// Check handles GET /favorites/check/:animeId. It always answers with a
// boolean; an unknown pair is not an error.
func (h *FavoriteHandler) Check(c *gin.Context) {
	animeID, ok := animeIDParam(c)
	if !ok {
		return
	}
	userID := c.GetString(jwtmw.ContextUserID)
	isFavorite, err := h.favorites.IsFavorite(c.Request.Context(), userID, animeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// GetByAnime handles GET /favorites/anime/:animeId.
func (h *FavoriteHandler) GetByAnime(c *gin.Context) {
	animeID, ok := animeIDParam(c)
	if !ok {
		return
	}
	userID := c.GetString(jwtmw.ContextUserID)
	favorite, err := h.favorites.FindByAnime(c.Request.Context(), userID, animeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// Get handles GET /favorites/:id.
// - 404 when no favorite has that id
// - 403 when it belongs to another user
func (h *FavoriteHandler) Get(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	favorite, err := h.favorites.FindByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// Remove handles DELETE /favorites/:id with the same 404/403 mapping as Get.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")
	if err := h.favorites.RemoveByID(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("favorite removed", "favorite_id", id, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "anime removed from favorites"})
}

// RemoveByAnime handles DELETE /favorites/anime/:animeId.
func (h *FavoriteHandler) RemoveByAnime(c *gin.Context) {
	animeID, ok := animeIDParam(c)
	if !ok {
		return
	}
	userID := c.GetString(jwtmw.ContextUserID)
	if err := h.favorites.RemoveByAnime(c.Request.Context(), userID, animeID); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("favorite removed", "user_id", userID, "anime_id", animeID)
	c.JSON(http.StatusOK, gin.H{"message": "anime removed from favorites"})
}
