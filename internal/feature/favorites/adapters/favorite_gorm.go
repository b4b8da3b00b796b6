// Package adapters provides the repository implementations for the
// favorites feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anime_calendar/internal/feature/favorites/domain/entity"
	"anime_calendar/internal/feature/favorites/usecase"
)

// favoriteGorm is the GORM implementation of the FavoriteRepository
// interface.
type favoriteGorm struct {
	db *gorm.DB
}

// Compile-time check that favoriteGorm implements FavoriteRepository.
var _ usecase.FavoriteRepository = (*favoriteGorm)(nil)

// NewFavoriteRepository creates a new favoriteGorm with the given database
// handle.
func NewFavoriteRepository(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// Create inserts a favorite. A violation of the (user_id, anime_id) unique
// index is reported as usecase.ErrAlreadyFavorited, which covers the race
// where two requests pass the usecase precheck simultaneously.
func (r *favoriteGorm) Create(ctx context.Context, f *entity.Favorite) error {
	if err := r.db.WithContext(ctx).Omit("Anime").Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

// FindByID retrieves one favorite with its Anime preloaded, or
// usecase.ErrFavoriteNotFound.
func (r *favoriteGorm) FindByID(ctx context.Context, id string) (*entity.Favorite, error) {
	var f entity.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Anime").
		Where("id = ?", id).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByPair retrieves the favorite of a (user, anime) pair with its Anime
// preloaded, or usecase.ErrFavoriteNotFound.
func (r *favoriteGorm) FindByPair(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error) {
	var f entity.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Anime").
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByUser returns all favorites of one user, newest first, with their
// Anime preloaded.
func (r *favoriteGorm) ListByUser(ctx context.Context, userID string) ([]entity.Favorite, error) {
	favorites := []entity.Favorite{}
	if err := r.db.WithContext(ctx).
		Preload("Anime").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteByID removes one favorite by ID.
func (r *favoriteGorm) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFavoriteNotFound
	}
	return nil
}

// DeleteByPair removes the favorite of a (user, anime) pair.
func (r *favoriteGorm) DeleteByPair(ctx context.Context, userID string, animeID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		Delete(&entity.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFavoriteNotFound
	}
	return nil
}
