package worksession

import (
	"context"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Repository は勤務セッション永続化の抽象です。
type Repository interface {
	// Create はアドレスが使用済みなら ErrSessionExists を返します。
	Create(ctx context.Context, session *WorkSession) (*WorkSession, error)
	Update(ctx context.Context, session *WorkSession) (*WorkSession, error)
	FindByAddress(ctx context.Context, addr ledger.Address) (*WorkSession, error)
}
