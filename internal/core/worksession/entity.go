package worksession

import "github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"

// State は社員ごとの打刻状態です。
type State string

const (
	StateNotClockedIn State = "not_clocked_in"
	StateClockedIn    State = "clocked_in"
)

// WorkSession は 1 回の出勤から退勤までの記録です。
// ClockOutTime が 0 の間は未確定で、退勤時に一度だけ確定します。
type WorkSession struct {
	Address         ledger.Address
	EmployeeAccount ledger.Address
	Employee        ledger.Address
	SessionID       uint64
	ClockInTime     int64
	ClockOutTime    int64
	HoursWorked     uint64
	AmountEarned    uint64
}

// IsOpen は退勤前かどうかを返します。
func (w *WorkSession) IsOpen() bool {
	return w.ClockOutTime == 0
}

// Clone はコピーを返します。
func (w *WorkSession) Clone() *WorkSession {
	if w == nil {
		return nil
	}
	clone := *w
	return &clone
}
