package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
)

// HoldingsRepository は holdings テーブルで支払い媒体側の残高を管理します。
// 行が存在しないアドレスの残高は 0 です。
type HoldingsRepository struct {
	pool pgdb.Queryer
}

// NewHoldingsRepository は HoldingsRepository を生成します。
func NewHoldingsRepository(pool pgdb.Queryer) *HoldingsRepository {
	return &HoldingsRepository{pool: pool}
}

// Balance は addr の残高を返します。
func (r *HoldingsRepository) Balance(ctx context.Context, addr ledger.Address) (uint64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var raw string
	err := exec.QueryRow(ctx, `
        SELECT balance::text
          FROM holdings
         WHERE address = $1
    `, addr.Bytes()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return decodeU64("holdings.balance", raw)
}

// Transfer は from から to へ amount を移します。同一トランザクション内で呼び出してください。
func (r *HoldingsRepository) Transfer(ctx context.Context, from, to ledger.Address, amount uint64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE holdings
           SET balance = balance - $2::numeric
         WHERE address = $1
           AND balance >= $2::numeric
    `, from.Bytes(), encodeU64(amount))
	if err != nil {
		return translateHoldingsPgError(err)
	}
	if tag.RowsAffected() == 0 {
		if amount == 0 {
			return nil
		}
		return fmt.Errorf("holdings of %s: %w", from, ledger.ErrInsufficientFunds)
	}

	return r.Credit(ctx, to, amount)
}

// Credit は addr の残高を amount 増やします。
func (r *HoldingsRepository) Credit(ctx context.Context, addr ledger.Address, amount uint64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO holdings (address, balance)
        VALUES ($1, $2::numeric)
        ON CONFLICT (address) DO UPDATE
           SET balance = holdings.balance + EXCLUDED.balance
    `, addr.Bytes(), encodeU64(amount)); err != nil {
		return translateHoldingsPgError(err)
	}
	return nil
}

func translateHoldingsPgError(err error) error {
	if pgErrorCode(err) == checkViolationCode {
		return errors.Join(ledger.ErrArithmeticOverflow, err)
	}
	return err
}
