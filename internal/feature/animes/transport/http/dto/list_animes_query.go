// Package dto defines data transfer objects for the animes feature's HTTP
// transport layer.
package dto

// ListAnimesQuery represents the query string of GET /animes. Paging bounds
// and the sort/order enumerations are validated here; the weekday filter is
// upper-cased and checked in the handler because its value arrives in any
// case.
type ListAnimesQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy      string `form:"sortBy" binding:"omitempty,oneof=id title release_year createdAt updatedAt"`
	Order       string `form:"order" binding:"omitempty,oneof=asc desc"`
	Day         string `form:"day"`
	Year        *int   `form:"year" binding:"omitempty,min=1900"`
	Recommended *bool  `form:"recommended"`
	Search      string `form:"search"`
}
