// Package memory はプロセス内メモリに台帳を保持するストア実装です。
// 開発用サーバーとシナリオテストで利用します。
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
)

type txMarker struct{}

type state struct {
	companies map[ledger.Address]*company.Company
	accounts  map[ledger.Address]*employee.Account
	order     []ledger.Address
	sessions  map[ledger.Address]*worksession.WorkSession
	holdings  map[ledger.Address]uint64
	events    []ledger.Event
}

func newState() state {
	return state{
		companies: make(map[ledger.Address]*company.Company),
		accounts:  make(map[ledger.Address]*employee.Account),
		sessions:  make(map[ledger.Address]*worksession.WorkSession),
		holdings:  make(map[ledger.Address]uint64),
	}
}

func (s state) snapshot() state {
	out := state{
		companies: make(map[ledger.Address]*company.Company, len(s.companies)),
		accounts:  make(map[ledger.Address]*employee.Account, len(s.accounts)),
		order:     append([]ledger.Address(nil), s.order...),
		sessions:  make(map[ledger.Address]*worksession.WorkSession, len(s.sessions)),
		holdings:  make(map[ledger.Address]uint64, len(s.holdings)),
		events:    s.events[:len(s.events):len(s.events)],
	}
	for k, v := range s.companies {
		out.companies[k] = v.Clone()
	}
	for k, v := range s.accounts {
		out.accounts[k] = v.Clone()
	}
	for k, v := range s.sessions {
		out.sessions[k] = v.Clone()
	}
	for k, v := range s.holdings {
		out.holdings[k] = v
	}
	return out
}

// Store は全アカウントを 1 つのミューテックスで保護します。
// 書き込みトランザクションは直列に実行され、失敗した場合は開始時点の状態に戻ります。
type Store struct {
	mu    sync.Mutex
	state state
}

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{state: newState()}
}

// WithinReadOnly は fn をストアのロック下で実行します。
func (s *Store) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return s.within(ctx, false, fn)
}

// WithinReadWrite は fn をストアのロック下で実行し、エラー時は変更を破棄します。
func (s *Store) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return s.within(ctx, true, fn)
}

func (s *Store) within(ctx context.Context, writable bool, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var saved state
	if writable {
		saved = s.state.snapshot()
	}

	if err := fn(context.WithValue(ctx, txMarker{}, s)); err != nil {
		if writable {
			s.state = saved
		}
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txMarker{}).(*Store)
	return ok
}

// access はトランザクション外から呼ばれた場合のみロックを取得します。
func (s *Store) access(ctx context.Context, fn func(*state) error) error {
	if inTx(ctx) {
		return fn(&s.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// Companies は会社リポジトリを返します。
func (s *Store) Companies() *CompanyRepository {
	return &CompanyRepository{store: s}
}

// Employees は社員アカウントリポジトリを返します。
func (s *Store) Employees() *EmployeeRepository {
	return &EmployeeRepository{store: s}
}

// WorkSessions は勤務セッションリポジトリを返します。
func (s *Store) WorkSessions() *WorkSessionRepository {
	return &WorkSessionRepository{store: s}
}

// Holdings は残高台帳を返します。
func (s *Store) Holdings() *HoldingsLedger {
	return &HoldingsLedger{store: s}
}

// Events はイベントジャーナルを返します。
func (s *Store) Events() *EventJournal {
	return &EventJournal{store: s}
}
