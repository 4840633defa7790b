package company

import "github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"

// MaxNameLength は会社名の最大バイト数です。
const MaxNameLength = 32

// Company は会社アカウントです。アドレスは ("company", Owner) から導出されます。
type Company struct {
	Address        ledger.Address
	Owner          ledger.Address
	Name           string
	EmployeeCount  uint32
	TotalDeposited uint64
	CreatedAt      int64
}

// Clone はコピーを返します。
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
