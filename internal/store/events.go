package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// tsLayout has a fixed width so stored timestamps compare as strings.
const tsLayout = "2006-01-02T15:04:05.000000000Z"

type eventRepo struct {
	db *sql.DB
}

// Append lets SQLite assign the sequence; AUTOINCREMENT never reuses one.
func (r *eventRepo) Append(ctx context.Context, e *Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	detail := []byte("{}")
	if len(e.Detail) > 0 {
		var err error
		detail, err = json.Marshal(e.Detail)
		if err != nil {
			return fmt.Errorf("marshal %s detail: %w", e.Kind, err)
		}
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO events (session_id, kind, detail, timestamp) VALUES (?, ?, ?, ?) RETURNING sequence`,
		e.SessionID, e.Kind, string(detail), e.Timestamp.UTC().Format(tsLayout),
	).Scan(&e.Sequence)
	if err != nil {
		return fmt.Errorf("save %s event: %w", e.Kind, err)
	}
	return nil
}

func (r *eventRepo) Query(ctx context.Context, opts QueryOpts) ([]Event, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC().Format(tsLayout))
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC().Format(tsLayout))
	}
	if opts.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, opts.Kind)
	}
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}

	q := "SELECT sequence, session_id, kind, detail, timestamp FROM events"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	if opts.Newest {
		q += " ORDER BY sequence DESC"
	} else {
		q += " ORDER BY sequence ASC"
	}
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e      Event
			detail string
			ts     string
		)
		if err := rows.Scan(&e.Sequence, &e.SessionID, &e.Kind, &detail, &ts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(detail), &e.Detail); err != nil {
			return nil, fmt.Errorf("decode event %d detail: %w", e.Sequence, err)
		}
		e.Timestamp, err = time.Parse(tsLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("decode event %d timestamp: %w", e.Sequence, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) Count(ctx context.Context, kind string) (int, error) {
	q := "SELECT COUNT(*) FROM events"
	var args []any
	if kind != "" {
		q += " WHERE kind = ?"
		args = append(args, kind)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}
