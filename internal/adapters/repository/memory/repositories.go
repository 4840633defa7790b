package memory

import (
	"context"
	"strconv"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
)

// CompanyRepository は company.Repository のメモリ実装です。
type CompanyRepository struct {
	store *Store
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	var created *company.Company
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.companies[c.Address]; ok {
			return company.ErrCompanyExists
		}
		st.companies[c.Address] = c.Clone()
		created = c.Clone()
		return nil
	})
	return created, err
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	var updated *company.Company
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.companies[c.Address]; !ok {
			return company.ErrCompanyNotFound
		}
		st.companies[c.Address] = c.Clone()
		updated = c.Clone()
		return nil
	})
	return updated, err
}

func (r *CompanyRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*company.Company, error) {
	var found *company.Company
	err := r.store.access(ctx, func(st *state) error {
		c, ok := st.companies[addr]
		if !ok {
			return company.ErrCompanyNotFound
		}
		found = c.Clone()
		return nil
	})
	return found, err
}

// EmployeeRepository は employee.Repository のメモリ実装です。一覧は登録順です。
type EmployeeRepository struct {
	store *Store
}

func (r *EmployeeRepository) Create(ctx context.Context, account *employee.Account) (*employee.Account, error) {
	var created *employee.Account
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.accounts[account.Address]; ok {
			return employee.ErrEmployeeExists
		}
		st.accounts[account.Address] = account.Clone()
		st.order = append(st.order, account.Address)
		created = account.Clone()
		return nil
	})
	return created, err
}

func (r *EmployeeRepository) Update(ctx context.Context, account *employee.Account) (*employee.Account, error) {
	var updated *employee.Account
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.accounts[account.Address]; !ok {
			return employee.ErrEmployeeNotFound
		}
		st.accounts[account.Address] = account.Clone()
		updated = account.Clone()
		return nil
	})
	return updated, err
}

func (r *EmployeeRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*employee.Account, error) {
	var found *employee.Account
	err := r.store.access(ctx, func(st *state) error {
		account, ok := st.accounts[addr]
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		found = account.Clone()
		return nil
	})
	return found, err
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Account, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	var (
		page      []*employee.Account
		nextToken string
	)
	err := r.store.access(ctx, func(st *state) error {
		skipped := 0
		for _, addr := range st.order {
			account := st.accounts[addr]
			if account.Company != filter.Company {
				continue
			}
			if skipped < filter.Offset {
				skipped++
				continue
			}
			if len(page) == filter.Limit {
				nextToken = strconv.Itoa(filter.Offset + filter.Limit)
				break
			}
			page = append(page, account.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	if page == nil {
		page = []*employee.Account{}
	}
	return page, nextToken, nil
}

// WorkSessionRepository は worksession.Repository のメモリ実装です。
type WorkSessionRepository struct {
	store *Store
}

func (r *WorkSessionRepository) Create(ctx context.Context, session *worksession.WorkSession) (*worksession.WorkSession, error) {
	var created *worksession.WorkSession
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.sessions[session.Address]; ok {
			return worksession.ErrSessionExists
		}
		st.sessions[session.Address] = session.Clone()
		created = session.Clone()
		return nil
	})
	return created, err
}

func (r *WorkSessionRepository) Update(ctx context.Context, session *worksession.WorkSession) (*worksession.WorkSession, error) {
	var updated *worksession.WorkSession
	err := r.store.access(ctx, func(st *state) error {
		if _, ok := st.sessions[session.Address]; !ok {
			return worksession.ErrSessionNotFound
		}
		st.sessions[session.Address] = session.Clone()
		updated = session.Clone()
		return nil
	})
	return updated, err
}

func (r *WorkSessionRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*worksession.WorkSession, error) {
	var found *worksession.WorkSession
	err := r.store.access(ctx, func(st *state) error {
		session, ok := st.sessions[addr]
		if !ok {
			return worksession.ErrSessionNotFound
		}
		found = session.Clone()
		return nil
	})
	return found, err
}

// HoldingsLedger は ledger.Holdings と ledger.Faucet のメモリ実装です。
type HoldingsLedger struct {
	store *Store
}

func (h *HoldingsLedger) Balance(ctx context.Context, addr ledger.Address) (uint64, error) {
	var balance uint64
	err := h.store.access(ctx, func(st *state) error {
		balance = st.holdings[addr]
		return nil
	})
	return balance, err
}

func (h *HoldingsLedger) Transfer(ctx context.Context, from, to ledger.Address, amount uint64) error {
	return h.store.access(ctx, func(st *state) error {
		remaining, err := ledger.CheckedSub(st.holdings[from], amount)
		if err != nil {
			return ledger.ErrInsufficientFunds
		}
		if from == to {
			return nil
		}
		credited, err := ledger.CheckedAdd(st.holdings[to], amount)
		if err != nil {
			return err
		}
		st.holdings[from] = remaining
		st.holdings[to] = credited
		return nil
	})
}

func (h *HoldingsLedger) Credit(ctx context.Context, addr ledger.Address, amount uint64) error {
	return h.store.access(ctx, func(st *state) error {
		credited, err := ledger.CheckedAdd(st.holdings[addr], amount)
		if err != nil {
			return err
		}
		st.holdings[addr] = credited
		return nil
	})
}

// EventJournal は ledger.EventRecorder のメモリ実装です。
type EventJournal struct {
	store *Store
}

func (j *EventJournal) Record(ctx context.Context, event ledger.Event) error {
	return j.store.access(ctx, func(st *state) error {
		st.events = append(st.events, event)
		return nil
	})
}

// List は記録済みのイベントを古い順に返します。
func (j *EventJournal) List(ctx context.Context) ([]ledger.Event, error) {
	var events []ledger.Event
	err := j.store.access(ctx, func(st *state) error {
		events = append([]ledger.Event(nil), st.events...)
		return nil
	})
	return events, err
}
