// Package adapters provides the repository implementations for the animes
// feature.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"anime_calendar/internal/feature/animes/domain/entity"
	"anime_calendar/internal/feature/animes/usecase"
)

// sortColumns maps the API sort field names to their database columns.
// Anything outside this map falls back to created_at.
var sortColumns = map[string]string{
	usecase.SortByID:          "id",
	usecase.SortByTitle:       "title",
	usecase.SortByReleaseYear: "release_year",
	usecase.SortByCreatedAt:   "created_at",
	usecase.SortByUpdatedAt:   "updated_at",
}

// animeGorm is the GORM implementation of the AnimeRepository interface.
type animeGorm struct {
	db *gorm.DB
}

// Compile-time check that animeGorm implements AnimeRepository.
var _ usecase.AnimeRepository = (*animeGorm)(nil)

// NewAnimeRepository creates a new animeGorm with the given database handle.
func NewAnimeRepository(db *gorm.DB) *animeGorm {
	return &animeGorm{db: db}
}

// Create inserts a catalog entry and fills in its generated ID and
// timestamps.
func (r *animeGorm) Create(ctx context.Context, a *entity.Anime) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByID retrieves one entry, or usecase.ErrAnimeNotFound.
func (r *animeGorm) FindByID(ctx context.Context, id uint) (*entity.Anime, error) {
	var a entity.Anime
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnimeNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Exists reports whether a catalog entry with the given ID exists.
func (r *animeGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Anime{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// filtered applies the AND-combined filters of params to a query. The title
// search lowers both sides so the substring match is case-insensitive on
// every driver.
func (r *animeGorm) filtered(ctx context.Context, params usecase.ListParams) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entity.Anime{})
	if params.Day != "" {
		q = q.Where("release_day = ?", params.Day)
	}
	if params.Year != nil {
		q = q.Where("release_year = ?", *params.Year)
	}
	if params.Recommended != nil {
		q = q.Where("is_recommended = ?", *params.Recommended)
	}
	if params.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}
	return q
}

// List returns one page of entries matching the params and the total count
// of matches computed with the same filters, independent of paging.
func (r *animeGorm) List(ctx context.Context, params usecase.ListParams) ([]entity.Anime, int64, error) {
	var total int64
	if err := r.filtered(ctx, params).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if params.Order == usecase.OrderDesc {
		direction = "DESC"
	}

	animes := []entity.Anime{}
	if err := r.filtered(ctx, params).
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&animes).Error; err != nil {
		return nil, 0, err
	}
	return animes, total, nil
}

// Update applies the given column values to one entry and returns the
// updated record, or usecase.ErrAnimeNotFound. An empty field map still
// verifies existence and returns the record unchanged.
//
// The genres column holds JSON. GORM does not run the serializer for
// map-form updates, so the slice is encoded here before it reaches the
// column map.
func (r *animeGorm) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Anime, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return a, nil
	}
	if genres, ok := fields["genres"].([]string); ok {
		encoded, err := json.Marshal(genres)
		if err != nil {
			return nil, fmt.Errorf("failed to encode genres: %w", err)
		}
		fields["genres"] = string(encoded)
	}
	if err := r.db.WithContext(ctx).Model(a).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes one entry, or returns usecase.ErrAnimeNotFound when no row
// matched.
func (r *animeGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Anime{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAnimeNotFound
	}
	return nil
}
