package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventKind はコミットされた操作の種類です。
type EventKind string

const (
	EventCompanyInitialized EventKind = "company_initialized"
	EventEmployeeAdded      EventKind = "employee_added"
	EventPayrollDeposited   EventKind = "payroll_deposited"
	EventEmployeeClockedIn  EventKind = "employee_clocked_in"
	EventEmployeeClockedOut EventKind = "employee_clocked_out"
	EventEarningsWithdrawn  EventKind = "earnings_withdrawn"
)

// Event は台帳に追記される操作記録です。操作と同じトランザクション内で記録されます。
type Event struct {
	ID         uuid.UUID
	Kind       EventKind
	Company    Address
	Actor      Address
	Account    Address
	Amount     uint64
	Balance    uint64
	Hours      uint64
	SessionID  uint64
	Note       string
	OccurredAt time.Time
}

// NewEvent は ID を採番した Event を生成します。
func NewEvent(kind EventKind, occurredAt time.Time) Event {
	return Event{ID: uuid.New(), Kind: kind, OccurredAt: occurredAt}
}

// EventRecorder は Event を永続化します。
type EventRecorder interface {
	Record(ctx context.Context, event Event) error
}

type discardEvents struct{}

func (discardEvents) Record(context.Context, Event) error { return nil }

// DiscardEvents は Event を破棄する EventRecorder を返します。
func DiscardEvents() EventRecorder {
	return discardEvents{}
}
