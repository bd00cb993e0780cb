package trends

import (
	"context"
	"database/sql"
)

// Repository runs aggregation queries over the reports table. It reads
// through database/sql so the heavier GROUP BY queries stay off the
// ingestion pool.
type Repository struct {
	db *sql.DB
}

var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new trends repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CountAll returns the total number of stored reports
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total)
	return total, err
}

// GroupByCategory returns report counts per category
func (r *Repository) GroupByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM reports
		GROUP BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		distribution[category] = count
	}

	return distribution, rows.Err()
}

// GroupByNumber returns the most-reported numbers, highest count first
func (r *Repository) GroupByNumber(ctx context.Context, limit int) ([]TrendingEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, COUNT(*) AS reports
		FROM reports
		GROUP BY number
		ORDER BY reports DESC, number ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []TrendingEntry{}
	for rows.Next() {
		var entry TrendingEntry
		if err := rows.Scan(&entry.Number, &entry.Reports); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
