package company

import (
	"context"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Repository は会社アカウントの永続化を行うインターフェースです。
type Repository interface {
	// Create はアドレスが使用済みなら ErrCompanyExists を返します。
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, company *Company) (*Company, error)
	FindByAddress(ctx context.Context, addr ledger.Address) (*Company, error)
}
