package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/careaid/internal/store"
)

// Journal event kinds.
const (
	EventStart        = "session_start"
	EventNavigate     = "navigate"
	EventSearchAdd    = "search_add"
	EventSearchRemove = "search_remove"
	EventQuizSubmit   = "quiz_submit"
	EventSlider       = "slider_change"
	EventChoice       = "choice"
	EventText         = "text"
	EventSummary      = "summary"
	EventDisplayMode  = "display_mode"
	EventPrint        = "print"
)

// Journal returns the event repository, which may be nil.
func (s *Session) Journal() store.EventRepo { return s.journal }

// record appends an event. Journal failures are logged and never returned
// to the caller.
func (s *Session) record(kind string, detail map[string]any) {
	s.log.Debug("event", zap.String("kind", kind), zap.Any("detail", detail))
	if s.journal == nil {
		return
	}
	e := &store.Event{
		SessionID: s.id,
		Kind:      kind,
		Detail:    detail,
		Timestamp: s.now(),
	}
	if err := s.journal.Append(context.Background(), e); err != nil {
		s.log.Warn("journal append failed", zap.String("kind", kind), zap.Error(err))
	}
}
