package service

import (
	"context"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/metrics"
	"github.com/vmelnikv/noteshare/models"
)

const defaultEventBufferSize = 64

// eventNotifier is the concrete implementation of [Notifier]. Events flow
// through a buffered channel to a single dispatch goroutine, which logs each
// one and updates the domain counters.
//
// Delivery is best effort: when the buffer is full the event is dropped and
// counted, and the emitting operation is never blocked or failed.
type eventNotifier struct {
	events  chan models.NoteEvent
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewEventNotifier constructs a [Notifier] with the configured buffer size.
// Run must be started for events to be dispatched.
func NewEventNotifier(cfg config.Notifier, m *metrics.Metrics, logger *logger.Logger) *eventNotifier {
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultEventBufferSize
	}

	return &eventNotifier{
		events:  make(chan models.NoteEvent, size),
		metrics: m,
		logger:  logger,
	}
}

// Emit queues an event for dispatch without blocking. A full buffer drops the
// event.
func (n *eventNotifier) Emit(event models.NoteEvent) {
	select {
	case n.events <- event:
	default:
		n.metrics.IncrementEventsDropped()
		n.logger.Warn().
			Str("kind", string(event.Kind)).
			Int64("note_id", event.NoteID).
			Msg("event buffer full, dropping event")
	}
}

// Run dispatches queued events until ctx is cancelled, then drains whatever
// is left in the buffer before returning.
func (n *eventNotifier) Run(ctx context.Context) {
	for {
		select {
		case event := <-n.events:
			n.dispatch(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-n.events:
					n.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (n *eventNotifier) dispatch(event models.NoteEvent) {
	switch event.Kind {
	case models.EventNoteCreated:
		n.metrics.IncrementNotesCreated()
		n.logger.Info().
			Int64("note_id", event.NoteID).
			Int64("owner_id", event.OwnerID).
			Time("occurred_at", event.OccurredAt).
			Msg("note created")
	case models.EventNoteShared:
		n.metrics.IncrementNotesShared()
		n.logger.Info().
			Int64("note_id", event.NoteID).
			Int64("owner_id", event.OwnerID).
			Int64("recipient_id", event.RecipientID).
			Time("occurred_at", event.OccurredAt).
			Msg("note shared")
	default:
		n.logger.Warn().Str("kind", string(event.Kind)).Msg("unknown event kind")
	}
}
