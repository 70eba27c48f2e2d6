package ports

import (
	"context"

	"bookflow/domain/batch"
)

// ReportStore persists finished batch reports. Persistence is optional;
// a no-op implementation is used when no database is configured.
type ReportStore interface {
	Save(ctx context.Context, report batch.Report) error
}
