package trends

import "context"

// RepositoryInterface defines the read-only aggregation queries behind the
// trending and dashboard views.
type RepositoryInterface interface {
	CountAll(ctx context.Context) (int64, error)
	GroupByCategory(ctx context.Context) (map[string]int64, error)
	GroupByNumber(ctx context.Context, limit int) ([]TrendingEntry, error)
}
