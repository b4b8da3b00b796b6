package usecase

import (
	"context"
	"errors"
	"testing"

	"anime_calendar/internal/feature/animes/domain/entity"
)

// mockAnimeRepository is a mock implementation of the AnimeRepository
// interface.
type mockAnimeRepository struct {
	CreateFunc   func(ctx context.Context, anime *entity.Anime) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Anime, error)
	ListFunc     func(ctx context.Context, params ListParams) ([]entity.Anime, int64, error)
	UpdateFunc   func(ctx context.Context, id uint, fields map[string]any) (*entity.Anime, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockAnimeRepository) Create(ctx context.Context, anime *entity.Anime) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, anime)
	}
	return nil
}

func (m *mockAnimeRepository) FindByID(ctx context.Context, id uint) (*entity.Anime, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrAnimeNotFound
}

func (m *mockAnimeRepository) List(ctx context.Context, params ListParams) ([]entity.Anime, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockAnimeRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Anime, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, ErrAnimeNotFound
}

func (m *mockAnimeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return ErrAnimeNotFound
}

func TestAnimeUsecase_List_Defaults(t *testing.T) {
	var got ListParams
	mockRepo := &mockAnimeRepository{
		ListFunc: func(ctx context.Context, params ListParams) ([]entity.Anime, int64, error) {
			got = params
			return nil, 0, nil
		},
	}

	uc := NewAnimeUsecase(mockRepo)
	if _, err := uc.List(context.Background(), ListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Page != DefaultPage || got.Limit != DefaultLimit {
		t.Errorf("paging defaults not applied: page=%d limit=%d", got.Page, got.Limit)
	}
	if got.SortBy != SortByCreatedAt || got.Order != OrderDesc {
		t.Errorf("sorting defaults not applied: sortBy=%s order=%s", got.SortBy, got.Order)
	}
}

func TestAnimeUsecase_List_Meta(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int64
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{"first of many", 1, 5, 12, 3, true, false},
		{"middle page", 2, 5, 12, 3, true, true},
		{"last page", 3, 5, 12, 3, false, true},
		{"exact multiple", 2, 5, 10, 2, false, true},
		{"empty result", 1, 5, 0, 0, false, false},
		{"page beyond the end", 9, 5, 12, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockAnimeRepository{
				ListFunc: func(ctx context.Context, params ListParams) ([]entity.Anime, int64, error) {
					return []entity.Anime{}, tt.total, nil
				},
			}

			uc := NewAnimeUsecase(mockRepo)
			page, err := uc.List(context.Background(), ListParams{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			m := page.Meta
			if m.Total != tt.total || m.TotalPages != tt.totalPages {
				t.Errorf("total=%d totalPages=%d, want %d/%d", m.Total, m.TotalPages, tt.total, tt.totalPages)
			}
			if m.HasNextPage != tt.hasNext {
				t.Errorf("hasNextPage=%v, want %v", m.HasNextPage, tt.hasNext)
			}
			if m.HasPrevPage != tt.hasPrev {
				t.Errorf("hasPrevPage=%v, want %v", m.HasPrevPage, tt.hasPrev)
			}
		})
	}
}

func TestListParams_Offset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 5}
	if got := p.Offset(); got != 10 {
		t.Errorf("offset = %d, want 10", got)
	}
}

func TestUpdateParams_Fields(t *testing.T) {
	title := "New Title"
	recommended := true
	p := UpdateParams{Title: &title, IsRecommended: &recommended}

	fields := p.fields()

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
	}
	if fields["title"] != "New Title" {
		t.Errorf("title = %v", fields["title"])
	}
	if fields["is_recommended"] != true {
		t.Errorf("is_recommended = %v", fields["is_recommended"])
	}
}

func TestAnimeUsecase_Delete(t *testing.T) {
	t.Run("missing entry propagates not found", func(t *testing.T) {
		uc := NewAnimeUsecase(&mockAnimeRepository{})
		if err := uc.Delete(context.Background(), 42); !errors.Is(err, ErrAnimeNotFound) {
			t.Errorf("expected ErrAnimeNotFound, got %v", err)
		}
	})
}
