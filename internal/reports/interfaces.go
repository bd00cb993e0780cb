package reports

import "context"

// RepositoryInterface defines the persistence operations for reports.
// The store is treated as an append-only log: there is no update or delete.
type RepositoryInterface interface {
	Insert(ctx context.Context, report *Report) error
	FindByNumber(ctx context.Context, number string) ([]Report, error)
}
