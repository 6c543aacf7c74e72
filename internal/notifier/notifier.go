package notifier

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
)

// Event describes one completed state mutation. Events are advisory: they
// are emitted after the transaction commits and are not part of the
// consistency contract.
type Event struct {
	EventID   string         `json:"event_id"`
	Operation string         `json:"operation"`
	LoanID    uint64         `json:"loan_id,omitempty"`
	Actor     string         `json:"actor"`
	Status    loan.Status    `json:"status,omitempty"`
	At        time.Time      `json:"at"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// New builds an event stamped with a fresh id and the current time.
func New(operation string, loanID uint64, actor string, status loan.Status, fields map[string]any) Event {
	return Event{
		EventID:   uuid.NewString(),
		Operation: operation,
		LoanID:    loanID,
		Actor:     actor,
		Status:    status,
		At:        time.Now().UTC(),
		Fields:    fields,
	}
}

// Notifier delivers events to downstream observers. Delivery failure must
// never fail the operation that produced the event.
type Notifier interface {
	Emit(ctx context.Context, e Event)
}

// LogNotifier writes events to the process log.
type LogNotifier struct{}

func (LogNotifier) Emit(_ context.Context, e Event) {
	log.Printf("event %s op=%s loan=%d actor=%s status=%s", e.EventID, e.Operation, e.LoanID, e.Actor, e.Status)
}

// Noop discards events; handy in tests.
type Noop struct{}

func (Noop) Emit(context.Context, Event) {}
