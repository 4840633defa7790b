package employee

import "github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"

// Account は会社に紐づく社員アカウントです。
// アドレスは ("employee", Company, Employee) から導出されます。
type Account struct {
	Address          ledger.Address
	Company          ledger.Address
	Employee         ledger.Address
	HourlyRate       uint64
	IsClockedIn      bool
	TotalEarned      uint64
	TotalWithdrawn   uint64
	TotalHoursWorked uint64
	LastClockIn      int64
	ActiveSessionID  uint64
	SessionCount     uint64
	CreatedAt        int64
}

// Available は引き出し可能な金額 (TotalEarned - TotalWithdrawn) を返します。
func (a *Account) Available() (uint64, error) {
	if a.TotalWithdrawn > a.TotalEarned {
		return 0, ledger.NewConsistencyFault("account %s withdrew %d of %d earned", a.Address, a.TotalWithdrawn, a.TotalEarned)
	}
	return a.TotalEarned - a.TotalWithdrawn, nil
}

// Clone はコピーを返します。
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
