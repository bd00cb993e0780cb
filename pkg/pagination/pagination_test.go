package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name           string
		queryString    string
		expectedLimit  int
		expectedOffset int
	}{
		{"no params uses defaults", "", DefaultLimit, DefaultOffset},
		{"valid limit and offset", "limit=10&offset=20", 10, 20},
		{"zero limit uses default", "limit=0", DefaultLimit, DefaultOffset},
		{"negative limit uses default", "limit=-10", DefaultLimit, DefaultOffset},
		{"limit exceeds max", "limit=200", MaxLimit, DefaultOffset},
		{"limit exactly at max", "limit=100", 100, DefaultOffset},
		{"negative offset uses default", "offset=-10", DefaultLimit, DefaultOffset},
		{"large offset", "offset=10000", DefaultLimit, 10000},
		{"non-numeric limit", "limit=abc", DefaultLimit, DefaultOffset},
		{"non-numeric offset", "offset=xyz", DefaultLimit, DefaultOffset},
		{"limit=1 minimum valid", "limit=1", 1, DefaultOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/?"+tt.queryString, nil)

			params := ParseParams(c)

			if params.Limit != tt.expectedLimit {
				t.Errorf("Limit = %d, want %d", params.Limit, tt.expectedLimit)
			}
			if params.Offset != tt.expectedOffset {
				t.Errorf("Offset = %d, want %d", params.Offset, tt.expectedOffset)
			}
		})
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name               string
		limit              int
		offset             int
		total              int64
		expectedTotalPages int
	}{
		{"first page with 100 items", 10, 0, 100, 10},
		{"partial last page", 10, 0, 25, 3},
		{"no items", 10, 0, 0, 0},
		{"zero limit", 0, 0, 100, 0},
		{"limit greater than total", 50, 0, 10, 1},
		{"one item over page", 10, 0, 11, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.limit, tt.offset, tt.total)

			if meta.Limit != tt.limit || meta.Offset != tt.offset || meta.Total != tt.total {
				t.Errorf("meta = %+v, want limit=%d offset=%d total=%d", meta, tt.limit, tt.offset, tt.total)
			}
			if meta.TotalPages != tt.expectedTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.expectedTotalPages)
			}
		})
	}
}

func TestHasMore(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		limit    int
		total    int64
		expected bool
	}{
		{"first page has more", 0, 10, 100, true},
		{"last page no more", 90, 10, 100, false},
		{"one before last page", 89, 10, 100, true},
		{"offset past total", 110, 10, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasMore(tt.offset, tt.limit, tt.total); got != tt.expected {
				t.Errorf("HasMore(%d, %d, %d) = %v, want %v", tt.offset, tt.limit, tt.total, got, tt.expected)
			}
		})
	}
}
