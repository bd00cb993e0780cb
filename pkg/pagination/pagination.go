package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/numbershield/numbershield/pkg/common"
)

const (
	// DefaultLimit is used when no limit query parameter is provided
	DefaultLimit = 20
	// MaxLimit caps the limit query parameter
	MaxLimit = 100
	// DefaultOffset is used when no offset query parameter is provided
	DefaultOffset = 0
)

// Params holds parsed pagination parameters
type Params struct {
	Limit  int
	Offset int
}

// ParseParams parses limit/offset query parameters with defaults and bounds
func ParseParams(c *gin.Context) Params {
	params := Params{Limit: DefaultLimit, Offset: DefaultOffset}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			if limit > MaxLimit {
				limit = MaxLimit
			}
			params.Limit = limit
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	return params
}

// BuildMeta builds response metadata from pagination parameters and a total count
func BuildMeta(limit, offset int, total int64) *common.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &common.Meta{
		Limit:      limit,
		Offset:     offset,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HasMore reports whether more items exist past the current page
func HasMore(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}
