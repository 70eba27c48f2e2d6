package ports

import (
	"context"

	"bookflow/domain/batch"
	"bookflow/domain/booking"
)

// Target identifies the Booking Service endpoint and credential for one
// batch. Both arrive from the inbound gateway and are trusted as already
// validated.
type Target struct {
	Endpoint string
	Token    string
}

// Submitter sends one validated record to the Booking Service and
// classifies the outcome. Implementations make exactly one attempt per
// record; retry policy belongs to the caller, and the orchestrator has
// none.
type Submitter interface {
	Submit(ctx context.Context, rec booking.Record, target Target) batch.SubmitResult
}
