package app

import (
	"context"
	"log"
	"time"

	"bookflow/domain/batch"
	"bookflow/domain/booking"
	"bookflow/domain/sheet"
	"bookflow/internal/batchid"
	"bookflow/ports"
)

// BatchService orchestrates one spreadsheet batch: load, locate the
// header, then build, validate and submit each row in order. Rows never
// abort the batch; only an unreadable workbook does.
type BatchService struct {
	loader    ports.SheetLoader
	submitter ports.Submitter
	store     ports.ReportStore
}

func NewBatchService(loader ports.SheetLoader, submitter ports.Submitter, store ports.ReportStore) *BatchService {
	return &BatchService{
		loader:    loader,
		submitter: submitter,
		store:     store,
	}
}

// RunBatch processes one workbook against one Booking Service target and
// returns the full report. The report is also handed to the store; a
// store failure is logged but never fails the batch, since the caller
// already holds the report.
func (s *BatchService) RunBatch(ctx context.Context, data []byte, target ports.Target) batch.Report {
	id := batchid.New()
	ctx = batchid.WithContext(ctx, id)
	startTime := time.Now()

	log.Printf("[BatchService] [%s] Starting batch (%d bytes)", id, len(data))

	table, err := s.loader.Load(data)
	if err != nil {
		log.Printf("[BatchService] [%s] Failed to load workbook: %v", id, err)
		report := batch.Report{
			BatchID:   id,
			StartTime: startTime,
			EndTime:   time.Now(),
			Error:     err.Error(),
			Outcomes:  []batch.RowOutcome{},
		}
		report.DurationSeconds = report.EndTime.Sub(report.StartTime).Seconds()
		s.persist(ctx, report)
		return report
	}

	outcomes := make([]batch.RowOutcome, 0, len(table.Rows))
	successful := 0

	for i, row := range table.Rows {
		// Absolute 1-based spreadsheet row: rows start right after the
		// located header row.
		rowNumber := table.HeaderRow + 2 + i
		outcome := s.processRow(ctx, row, rowNumber, target)
		if outcome.Success {
			successful++
		}
		outcomes = append(outcomes, outcome)
	}

	endTime := time.Now()
	report := batch.Report{
		BatchID:         id,
		TotalOrders:     len(table.Rows),
		Successful:      successful,
		Failed:          len(table.Rows) - successful,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationSeconds: endTime.Sub(startTime).Seconds(),
		Outcomes:        outcomes,
	}

	log.Printf("[BatchService] [%s] Batch complete: %d total, %d successful, %d failed in %.2fs",
		id, report.TotalOrders, report.Successful, report.Failed, report.DurationSeconds)

	s.persist(ctx, report)
	return report
}

// processRow takes one row through build, validate and submit. Every
// return path yields a classified outcome; nothing propagates upward.
func (s *BatchService) processRow(ctx context.Context, row sheet.Row, rowNumber int, target ports.Target) batch.RowOutcome {
	id := batchid.FromContext(ctx)
	rowTag := batchid.RowTag(id, rowNumber)
	processingStart := time.Now()

	rec, err := booking.Build(row)
	if err != nil {
		log.Printf("[BatchService] [%s] Failed to build record: %v", rowTag, err)
		outcome := batch.ConstructionFailedOutcome(rowNumber, rec.PONumber, err.Error())
		return stamped(outcome, processingStart)
	}

	log.Printf("[BatchService] [%s] Processing PO %s", rowTag, rec.PONumber)

	if result := booking.Validate(rec); !result.OK {
		log.Printf("[BatchService] [%s] Validation failed: %s", rowTag, result.Reason)
		outcome := batch.ValidationFailedOutcome(rowNumber, rec.PONumber, result.Reason)
		return stamped(outcome, processingStart)
	}

	submitResult := s.submitter.Submit(ctx, rec, target)
	if submitResult.Success {
		log.Printf("[BatchService] [%s] Submitted PO %s: status %d, shipment %s",
			rowTag, rec.PONumber, submitResult.StatusCode, submitResult.ShipmentID)
	} else {
		log.Printf("[BatchService] [%s] Submission failed for PO %s: status %d",
			rowTag, rec.PONumber, submitResult.StatusCode)
	}

	outcome := batch.SubmittedOutcome(rowNumber, rec.PONumber, submitResult)
	return stamped(outcome, processingStart)
}

func (s *BatchService) persist(ctx context.Context, report batch.Report) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, report); err != nil {
		log.Printf("[BatchService] [%s] Failed to persist report: %v", report.BatchID, err)
	}
}

func stamped(outcome batch.RowOutcome, start time.Time) batch.RowOutcome {
	outcome.ProcessingStart = start
	outcome.ProcessingEnd = time.Now()
	if outcome.DurationMS == 0 {
		outcome.DurationMS = float64(outcome.ProcessingEnd.Sub(start).Microseconds()) / 1000
	}
	return outcome
}
