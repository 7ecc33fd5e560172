package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the default page size
	DefaultLimit = 20
	// MaxLimit is the maximum allowed page size
	MaxLimit = 100
	// DefaultOffset is the default offset
	DefaultOffset = 0
)

// Params holds parsed pagination parameters
type Params struct {
	Limit  int
	Offset int
}

// Meta describes a paginated result set
type Meta struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ParseParams extracts limit/offset from query parameters with sane bounds
func ParseParams(c *gin.Context) Params {
	limit := DefaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}

	offset := DefaultOffset
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	return Params{Limit: limit, Offset: offset}
}

// BuildMeta builds pagination metadata for a response
func BuildMeta(limit, offset int, total int64) *Meta {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Meta{Limit: limit, Offset: offset, Total: total, TotalPages: totalPages}
}

// HasMore reports whether there are records beyond the current page
func HasMore(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}

// GetCurrentPage derives the 1-based page number from offset and limit
func GetCurrentPage(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
