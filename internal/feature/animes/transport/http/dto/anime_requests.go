package dto

// CreateAnimeReq represents the request body for POST /animes. Only the
// title is required.
type CreateAnimeReq struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug"`
	CoverURL      string   `json:"cover_url"`
	Genres        []string `json:"genres"`
	ReleaseYear   *int     `json:"release_year" binding:"omitempty,min=1900"`
	ReleaseDay    string   `json:"release_day" binding:"omitempty,oneof=SUNDAYS MONDAYS TUESDAYS WEDNESDAYS THURSDAYS FRIDAYS SATURDAYS"`
	IsRecommended *bool    `json:"is_recommended"`
}

// UpdateAnimeReq represents the request body for PATCH /animes/:id. Every
// field is optional; absent fields are left untouched.
type UpdateAnimeReq struct {
	Title         *string   `json:"title" binding:"omitempty,min=1"`
	Slug          *string   `json:"slug"`
	CoverURL      *string   `json:"cover_url"`
	Genres        *[]string `json:"genres"`
	ReleaseYear   *int      `json:"release_year" binding:"omitempty,min=1900"`
	ReleaseDay    *string   `json:"release_day" binding:"omitempty,oneof=SUNDAYS MONDAYS TUESDAYS WEDNESDAYS THURSDAYS FRIDAYS SATURDAYS"`
	IsRecommended *bool     `json:"is_recommended"`
}
