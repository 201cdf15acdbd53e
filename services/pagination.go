package services

import (
	"strconv"
)

const defaultPageLimit = 10

// PageMetadata mirrors the pagination envelope consumed by the frontend.
// Cursor is the offset of the next page and is omitted on the terminal page.
type PageMetadata struct {
	Cursor      *string `json:"cursor,omitempty"`
	HasNextPage bool    `json:"hasNextPage"`
	TotalItems  int64   `json:"totalItems"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
}

// buildPageMetadata computes offset pagination metadata for a page starting
// at skip with the given limit.
func buildPageMetadata(totalCount int64, limit, skip int) PageMetadata {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}

	nextCursor := skip + limit
	hasNextPage := int64(nextCursor) < totalCount

	meta := PageMetadata{
		HasNextPage: hasNextPage,
		TotalItems:  totalCount,
		CurrentPage: skip/limit + 1,
		TotalPages:  int((totalCount + int64(limit) - 1) / int64(limit)),
	}
	if hasNextPage {
		c := strconv.Itoa(nextCursor)
		meta.Cursor = &c
	}
	return meta
}

func normalizePage(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
