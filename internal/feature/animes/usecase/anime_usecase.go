package usecase

import (
	"context"

	"anime_calendar/internal/feature/animes/domain/entity"
)

// Paging and sorting defaults for the catalog listing.
const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100

	DefaultSortBy = SortByCreatedAt
	DefaultOrder  = OrderDesc
)

// Sort fields accepted by List. The names match the query string values of
// the HTTP API.
const (
	SortByID          = "id"
	SortByTitle       = "title"
	SortByReleaseYear = "release_year"
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
)

// Sort directions accepted by List.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListParams carries the paging, sorting and filter options of a catalog
// listing. Zero values mean "not supplied": paging and sorting fall back to
// the defaults above, filters impose no constraint.
type ListParams struct {
	Page   int
	Limit  int
	SortBy string
	Order  string

	// Day filters by release weekday.
	Day entity.ReleaseDay
	// Year filters by release year.
	Year *int
	// Recommended filters by the recommended flag.
	Recommended *bool
	// Search is a case-insensitive substring match on the title.
	Search string
}

// normalize fills in the defaults for unset paging/sorting values.
func (p *ListParams) normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.Order == "" {
		p.Order = DefaultOrder
	}
}

// Offset returns how many rows to skip for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the position of a page within the full result set.
// Total is computed with the same filters as the page, independent of paging.
type PageMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Page is the {data, meta} envelope returned by List.
type Page struct {
	Data []entity.Anime `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// UpdateParams carries a partial catalog entry update. Nil fields are left
// untouched.
type UpdateParams struct {
	Title         *string
	Slug          *string
	CoverURL      *string
	Genres        *[]string
	ReleaseYear   *int
	ReleaseDay    *entity.ReleaseDay
	IsRecommended *bool
}

// fields maps the supplied values to their column names.
func (p UpdateParams) fields() map[string]any {
	f := map[string]any{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Slug != nil {
		f["slug"] = *p.Slug
	}
	if p.CoverURL != nil {
		f["cover_url"] = *p.CoverURL
	}
	if p.Genres != nil {
		f["genres"] = *p.Genres
	}
	if p.ReleaseYear != nil {
		f["release_year"] = *p.ReleaseYear
	}
	if p.ReleaseDay != nil {
		f["release_day"] = *p.ReleaseDay
	}
	if p.IsRecommended != nil {
		f["is_recommended"] = *p.IsRecommended
	}
	return f
}

// AnimeRepository abstracts the persistence layer for catalog entries.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AnimeRepository interface {
	// Create persists a new catalog entry and fills in its generated ID and
	// timestamps.
	Create(ctx context.Context, anime *entity.Anime) error

	// FindByID retrieves one entry, or ErrAnimeNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Anime, error)

	// List returns one page of entries matching the params, plus the total
	// count of matches independent of paging.
	List(ctx context.Context, params ListParams) ([]entity.Anime, int64, error)

	// Update applies the given column values to one entry and returns the
	// updated record, or ErrAnimeNotFound.
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Anime, error)

	// Delete removes one entry, or returns ErrAnimeNotFound.
	Delete(ctx context.Context, id uint) error
}

// AnimeUsecase provides the catalog query and command operations.
type AnimeUsecase struct {
	animes AnimeRepository
}

// NewAnimeUsecase creates a new AnimeUsecase with the given repository.
func NewAnimeUsecase(animes AnimeRepository) *AnimeUsecase {
	return &AnimeUsecase{animes: animes}
}

// Create inserts a new catalog entry and returns the stored record.
func (u *AnimeUsecase) Create(ctx context.Context, anime *entity.Anime) (*entity.Anime, error) {
	if err := u.animes.Create(ctx, anime); err != nil {
		return nil, err
	}
	return anime, nil
}

// FindByID returns one catalog entry, or ErrAnimeNotFound.
func (u *AnimeUsecase) FindByID(ctx context.Context, id uint) (*entity.Anime, error) {
	return u.animes.FindByID(ctx, id)
}

// List returns a filtered, sorted page of catalog entries wrapped in the
// {data, meta} envelope. All supplied filters combine with logical AND.
func (u *AnimeUsecase) List(ctx context.Context, params ListParams) (*Page, error) {
	params.normalize()

	animes, total, err := u.animes.List(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return &Page{
		Data: animes,
		Meta: PageMeta{
			Total:       total,
			Page:        params.Page,
			Limit:       params.Limit,
			TotalPages:  totalPages,
			HasNextPage: params.Page < totalPages,
			HasPrevPage: params.Page > 1,
		},
	}, nil
}

// Update applies a partial update to one catalog entry and returns the
// updated record, or ErrAnimeNotFound.
func (u *AnimeUsecase) Update(ctx context.Context, id uint, params UpdateParams) (*entity.Anime, error) {
	return u.animes.Update(ctx, id, params.fields())
}

// Delete removes one catalog entry, or returns ErrAnimeNotFound. Favorites
// pointing at the entry are removed by the store's cascade constraint.
func (u *AnimeUsecase) Delete(ctx context.Context, id uint) error {
	return u.animes.Delete(ctx, id)
}
