package postgres

import (
	"context"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
)

// EventRepository は ledger_events テーブルへ操作記録を追記します。
type EventRepository struct {
	pool pgdb.Queryer
}

// NewEventRepository は EventRepository を生成します。
func NewEventRepository(pool pgdb.Queryer) *EventRepository {
	return &EventRepository{pool: pool}
}

// Record は Event を追記します。
func (r *EventRepository) Record(ctx context.Context, e ledger.Event) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO ledger_events (
            id, kind, company, actor, account, amount, balance, hours, session_id, note, occurred_at
        )
        VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9::numeric, $10, $11)
    `,
		e.ID, string(e.Kind), e.Company.Bytes(), e.Actor.Bytes(), e.Account.Bytes(),
		encodeU64(e.Amount), encodeU64(e.Balance), encodeU64(e.Hours), encodeU64(e.SessionID),
		e.Note, e.OccurredAt,
	)
	return err
}
