// Package handler provides the HTTP handlers for the animes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"anime_calendar/internal/feature/animes/domain/entity"
	"anime_calendar/internal/feature/animes/transport/http/dto"
	"anime_calendar/internal/feature/animes/usecase"
)

// AnimeUsecase defines the catalog operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AnimeUsecase interface {
	Create(ctx context.Context, anime *entity.Anime) (*entity.Anime, error)
	FindByID(ctx context.Context, id uint) (*entity.Anime, error)
	List(ctx context.Context, params usecase.ListParams) (*usecase.Page, error)
	Update(ctx context.Context, id uint, params usecase.UpdateParams) (*entity.Anime, error)
	Delete(ctx context.Context, id uint) error
}

// AnimeHandler handles the HTTP requests of the /animes routes.
type AnimeHandler struct {
	animes AnimeUsecase
}

// NewAnimeHandler creates a new AnimeHandler with the usecase injected.
func NewAnimeHandler(animes AnimeUsecase) *AnimeHandler {
	return &AnimeHandler{animes: animes}
}

// animeID parses the :id route parameter. A non-numeric or non-positive
// value responds 400 and reports false.
func animeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime id"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /animes (admin only).
// - 400 when the body fails validation
// - 201 with the stored record on success
func (h *AnimeHandler) Create(c *gin.Context) {
	var req dto.CreateAnimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	anime := &entity.Anime{
		Title:       req.Title,
		Slug:        req.Slug,
		CoverURL:    req.CoverURL,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		ReleaseDay:  entity.ReleaseDay(req.ReleaseDay),
	}
	if req.IsRecommended != nil {
		anime.IsRecommended = *req.IsRecommended
	}
	created, err := h.animes.Create(c.Request.Context(), anime)
	if err != nil {
		slog.Error("anime create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("anime created", "anime_id", created.ID, "title", created.Title)
	c.JSON(http.StatusCreated, created)
}

// List handles GET /animes. The query string carries optional paging,
// sorting and filter parameters; invalid values respond 400.
func (h *AnimeHandler) List(c *gin.Context) {
	var q dto.ListAnimesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	day := entity.ReleaseDay(strings.ToUpper(q.Day))
	if q.Day != "" && !day.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid release day"})
		return
	}

	page, err := h.animes.List(c.Request.Context(), usecase.ListParams{
		Page:        q.Page,
		Limit:       q.Limit,
		SortBy:      q.SortBy,
		Order:       q.Order,
		Day:         day,
		Year:        q.Year,
		Recommended: q.Recommended,
		Search:      q.Search,
	})
	if err != nil {
		slog.Error("anime list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /animes/:id.
// - 400 when the id is malformed
// - 404 when no entry matches
// - 200 with the record on success
func (h *AnimeHandler) Get(c *gin.Context) {
	id, ok := animeID(c)
	if !ok {
		return
	}
	anime, err := h.animes.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "anime not found"})
			return
		}
		slog.Error("anime lookup failed", "error", err, "anime_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, anime)
}

// Update handles PATCH /animes/:id (admin only). Only the supplied fields
// are modified.
func (h *AnimeHandler) Update(c *gin.Context) {
	id, ok := animeID(c)
	if !ok {
		return
	}
	var req dto.UpdateAnimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	params := usecase.UpdateParams{
		Title:         req.Title,
		Slug:          req.Slug,
		CoverURL:      req.CoverURL,
		Genres:        req.Genres,
		ReleaseYear:   req.ReleaseYear,
		IsRecommended: req.IsRecommended,
	}
	if req.ReleaseDay != nil {
		day := entity.ReleaseDay(*req.ReleaseDay)
		params.ReleaseDay = &day
	}

	anime, err := h.animes.Update(c.Request.Context(), id, params)
	if err != nil {
		if errors.Is(err, usecase.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "anime not found"})
			return
		}
		slog.Error("anime update failed", "error", err, "anime_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("anime updated", "anime_id", id)
	c.JSON(http.StatusOK, anime)
}

// Delete handles DELETE /animes/:id (admin only). Responds 204 with no body
// on success.
func (h *AnimeHandler) Delete(c *gin.Context) {
	id, ok := animeID(c)
	if !ok {
		return
	}
	if err := h.animes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "anime not found"})
			return
		}
		slog.Error("anime delete failed", "error", err, "anime_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("anime deleted", "anime_id", id)
	c.Status(http.StatusNoContent)
}
