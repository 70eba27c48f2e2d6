// Package batchid issues the identifier that tags every log line and row
// outcome of one batch run. The identifier is generated once per batch and
// travels through context rather than process-global state, so concurrent
// batches never share an ID.
package batchid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh batch identifier
func New() string {
	return uuid.NewString()
}

// WithContext returns a context carrying the batch identifier
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the batch identifier, or "" if none was set
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// RowTag builds the per-row log tag, e.g. "b7f3...-R4"
func RowTag(id string, rowNumber int) string {
	return fmt.Sprintf("%s-R%d", id, rowNumber)
}
