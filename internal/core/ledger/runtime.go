package ledger

import (
	"context"
	"time"
)

// Clock は台帳時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock はシステム時刻を台帳時刻として返す Clock です。
func SystemClock() Clock {
	return realClock{}
}

// TransactionManager はトランザクション制御の抽象化です。
// WithinReadWrite に渡した関数がエラーを返した場合、その中で行った変更はすべて破棄されます。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

// NoopTransactionManager は関数をそのまま実行する TransactionManager を返します。
func NoopTransactionManager() TransactionManager {
	return noopTransactionManager{}
}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Holdings は支払い媒体側で管理される残高です。会社のエスクローは会社アドレスの残高を指します。
type Holdings interface {
	Balance(ctx context.Context, addr Address) (uint64, error)
	// Transfer は from の残高が不足していれば ErrInsufficientFunds を返します。
	Transfer(ctx context.Context, from, to Address, amount uint64) error
}

// Faucet は開発・検証用に残高を発行します。
type Faucet interface {
	Credit(ctx context.Context, addr Address, amount uint64) error
}
