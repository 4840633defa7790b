package employee

import (
	"context"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Repository は社員アカウント永続化の抽象です。
type Repository interface {
	// Create はアドレスが使用済みなら ErrEmployeeExists を返します。
	Create(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, account *Account) (*Account, error)
	FindByAddress(ctx context.Context, addr ledger.Address) (*Account, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Account, string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	Company ledger.Address
	Limit   int
	Offset  int
}
