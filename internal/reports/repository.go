package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles report persistence on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// Ensure the concrete repository satisfies the service's requirements.
var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new report repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert stores a new report
func (r *Repository) Insert(ctx context.Context, report *Report) error {
	query := `
		INSERT INTO reports (id, number, category, message, created_at, scam_probability)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.Number,
		report.Category,
		report.Message,
		report.CreatedAt,
		report.ScamProbability,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	return nil
}

// FindByNumber returns all reports for a normalized number, newest first
func (r *Repository) FindByNumber(ctx context.Context, number string) ([]Report, error) {
	query := `
		SELECT id, number, category, message, created_at, scam_probability
		FROM reports
		WHERE number = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, number)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var result []Report
	for rows.Next() {
		var report Report
		if err := rows.Scan(
			&report.ID,
			&report.Number,
			&report.Category,
			&report.Message,
			&report.CreatedAt,
			&report.ScamProbability,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}

	return result, nil
}
