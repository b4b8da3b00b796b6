package usecase

import (
	"context"
	"errors"

	"anime_calendar/internal/feature/favorites/domain/entity"
)

// FavoriteRepository abstracts the persistence layer for favorites.
// Read paths that return a favorite preload its Anime association.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FavoriteRepository interface {
	// Create persists a new favorite. It returns ErrAlreadyFavorited when
	// the (user, anime) pair already exists.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByID retrieves one favorite with its Anime preloaded, or
	// ErrFavoriteNotFound.
	FindByID(ctx context.Context, id string) (*entity.Favorite, error)

	// FindByPair retrieves the favorite of a (user, anime) pair with its
	// Anime preloaded, or ErrFavoriteNotFound.
	FindByPair(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error)

	// ListByUser returns all favorites of one user, newest first, with
	// their Anime preloaded.
	ListByUser(ctx context.Context, userID string) ([]entity.Favorite, error)

	// DeleteByID removes one favorite by ID.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByPair removes the favorite of a (user, anime) pair.
	DeleteByPair(ctx context.Context, userID string, animeID uint) error
}

// AnimeCatalog is the slice of the catalog the favorites feature needs:
// an existence check before a favorite may reference an entry.
type AnimeCatalog interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// FavoriteUsecase implements the favorites state machine: per (user, anime)
// pair, absent → present via Create and present → absent via a remove.
type FavoriteUsecase struct {
	favorites FavoriteRepository
	catalog   AnimeCatalog
}

// NewFavoriteUsecase creates a new FavoriteUsecase with its dependencies
// injected.
func NewFavoriteUsecase(favorites FavoriteRepository, catalog AnimeCatalog) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites, catalog: catalog}
}

// Create adds a catalog entry to a user's favorites and returns the stored
// favorite with its Anime joined. It fails with ErrAnimeNotFound when the
// entry does not exist and ErrAlreadyFavorited when the pair already has a
// favorite. The duplicate precheck is best-effort; the store's unique index
// rejects the second writer under a race and surfaces the same error.
func (u *FavoriteUsecase) Create(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error) {
	exists, err := u.catalog.Exists(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAnimeNotFound
	}

	if _, err := u.favorites.FindByPair(ctx, userID, animeID); err == nil {
		return nil, ErrAlreadyFavorited
	} else if !errors.Is(err, ErrFavoriteNotFound) {
		return nil, err
	}

	favorite := &entity.Favorite{UserID: userID, AnimeID: animeID}
	if err := u.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	// Reload to return the joined Anime.
	return u.favorites.FindByID(ctx, favorite.ID)
}

// List returns all favorites owned by the requesting user, newest first.
func (u *FavoriteUsecase) List(ctx context.Context, userID string) ([]entity.Favorite, error) {
	return u.favorites.ListByUser(ctx, userID)
}

// FindByID returns one favorite. Existence is checked before ownership, so
// a missing favorite yields ErrFavoriteNotFound and someone else's favorite
// yields ErrNotOwner.
func (u *FavoriteUsecase) FindByID(ctx context.Context, id, userID string) (*entity.Favorite, error) {
	favorite, err := u.favorites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if favorite.UserID != userID {
		return nil, ErrNotOwner
	}
	return favorite, nil
}

// FindByAnime returns the requester's favorite of one catalog entry, or
// ErrFavoriteNotFound.
func (u *FavoriteUsecase) FindByAnime(ctx context.Context, userID string, animeID uint) (*entity.Favorite, error) {
	return u.favorites.FindByPair(ctx, userID, animeID)
}

// RemoveByID deletes one favorite by ID, with the same existence-then-
// ownership checks as FindByID.
func (u *FavoriteUsecase) RemoveByID(ctx context.Context, id, userID string) error {
	favorite, err := u.favorites.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if favorite.UserID != userID {
		return ErrNotOwner
	}
	return u.favorites.DeleteByID(ctx, id)
}

// RemoveByAnime deletes the requester's favorite of one catalog entry. The
// pair already encodes ownership, so no separate ownership check is needed.
func (u *FavoriteUsecase) RemoveByAnime(ctx context.Context, userID string, animeID uint) error {
	if _, err := u.favorites.FindByPair(ctx, userID, animeID); err != nil {
		return err
	}
	return u.favorites.DeleteByPair(ctx, userID, animeID)
}

// IsFavorite reports whether the (user, anime) pair has a favorite. Absence
// is not an error.
func (u *FavoriteUsecase) IsFavorite(ctx context.Context, userID string, animeID uint) (bool, error) {
	if _, err := u.favorites.FindByPair(ctx, userID, animeID); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
