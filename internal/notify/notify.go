// Package notify is the outbound notification boundary. Delivery (email, SMS,
// push) lives in an external system; the core only emits events and never
// blocks on or retries them from a transaction path.
package notify

import (
	"context"

	"clash-arena/internal/model"

	"github.com/rs/zerolog"
)

type Event struct {
	UserID   int64
	Type     string
	Title    string
	Message  string
	Priority model.NotificationPriority
	Metadata map[string]string
}

// Sink receives notification events fire-and-forget.
type Sink interface {
	Notify(ctx context.Context, event Event)
}

// LogSink writes events to the structured log. It stands in for the real
// delivery pipeline in development and tests.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, event Event) {
	evt := s.logger.Info().
		Int64("user_id", event.UserID).
		Str("type", event.Type).
		Str("title", event.Title).
		Str("priority", string(event.Priority))
	for k, v := range event.Metadata {
		evt = evt.Str(k, v)
	}
	evt.Msg(event.Message)
}
