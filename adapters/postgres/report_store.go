package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookflow/domain/batch"
	"bookflow/internal/errors"
	"bookflow/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ReportStoreImpl persists batch reports and their per-row outcomes to
// PostgreSQL. Reports are write-once; the batch service never reads them
// back, so there is no query surface beyond what operators run by hand.
type ReportStoreImpl struct {
	db *sqlx.DB
}

// NewReportStore connects to PostgreSQL and ensures the report schema
// exists.
func NewReportStore(databaseURL string) (*ReportStoreImpl, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	store := &ReportStoreImpl{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, errors.DatabaseError("failed to ensure report schema", err)
	}
	return store, nil
}

var _ ports.ReportStore = (*ReportStoreImpl)(nil)

func (s *ReportStoreImpl) ensureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS batch_reports (
		batch_id         TEXT PRIMARY KEY,
		total_orders     INTEGER NOT NULL,
		successful       INTEGER NOT NULL,
		failed           INTEGER NOT NULL,
		start_time       TIMESTAMPTZ NOT NULL,
		end_time         TIMESTAMPTZ NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		error_message    TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS row_outcomes (
		id               BIGSERIAL PRIMARY KEY,
		batch_id         TEXT NOT NULL REFERENCES batch_reports(batch_id) ON DELETE CASCADE,
		row_number       INTEGER NOT NULL,
		po_number        TEXT,
		kind             TEXT NOT NULL,
		success          BOOLEAN NOT NULL,
		status_code      INTEGER,
		shipment_id      TEXT,
		detail           TEXT,
		processing_start TIMESTAMPTZ,
		processing_end   TIMESTAMPTZ,
		duration_ms      DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS idx_row_outcomes_batch ON row_outcomes(batch_id);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save writes one report and all its row outcomes atomically.
func (s *ReportStoreImpl) Save(ctx context.Context, report batch.Report) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batch_reports (batch_id, total_orders, successful, failed, start_time, end_time, duration_seconds, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
	`, report.BatchID, report.TotalOrders, report.Successful, report.Failed,
		report.StartTime, report.EndTime, report.DurationSeconds, report.Error)
	if err != nil {
		return fmt.Errorf("failed to insert batch report: %w", err)
	}

	for _, outcome := range report.Outcomes {
		detail := outcome.Error
		if detail == "" && len(outcome.Data) > 0 {
			detail = string(outcome.Data)
		}
		if detail == "" {
			detail = outcome.RawResponse
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO row_outcomes (batch_id, row_number, po_number, kind, success, status_code, shipment_id, detail, processing_start, processing_end, duration_ms)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, report.BatchID, outcome.RowNumber, outcome.PONumber, outcome.Kind, outcome.Success,
			outcome.StatusCode, outcome.ShipmentID, detail,
			outcome.ProcessingStart, outcome.ProcessingEnd, outcome.DurationMS)
		if err != nil {
			return fmt.Errorf("failed to insert row outcome %d: %w", outcome.RowNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}

	log.Printf("[ReportStore] Saved batch %s (%d rows)", report.BatchID, len(report.Outcomes))
	return nil
}

// Close releases the underlying connection pool.
func (s *ReportStoreImpl) Close() error {
	return s.db.Close()
}

// NoopStore discards reports. Used when no DATABASE_URL is configured;
// callers still get the report back in the response body.
type NoopStore struct{}

func (NoopStore) Save(context.Context, batch.Report) error { return nil }
