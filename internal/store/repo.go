package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Kind      string    // exact kind match ("" = any)
	SessionID string    // exact session match ("" = any)
	Newest    bool      // newest first instead of oldest first
}

// Event is one journal entry. Detail is free-form and stored as JSON.
type Event struct {
	Sequence  int64
	SessionID string
	Kind      string
	Detail    map[string]any
	Timestamp time.Time
}

// EventRepo provides append and query access to the session journal.
type EventRepo interface {
	// Append stores e, assigning its sequence and, when zero, its
	// timestamp.
	Append(ctx context.Context, e *Event) error

	// Query returns events matching opts.
	Query(ctx context.Context, opts QueryOpts) ([]Event, error)

	// Count returns the number of events of kind, or of all kinds when
	// kind is empty.
	Count(ctx context.Context, kind string) (int, error)
}
