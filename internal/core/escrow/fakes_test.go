package escrow

import (
	"context"
	"time"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeCompanyRepo struct {
	companies map[ledger.Address]*company.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *company.Company) (*company.Company, error) {
	if _, ok := r.companies[c.Address]; ok {
		return nil, company.ErrCompanyExists
	}
	r.companies[c.Address] = c.Clone()
	return c.Clone(), nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *company.Company) (*company.Company, error) {
	if _, ok := r.companies[c.Address]; !ok {
		return nil, company.ErrCompanyNotFound
	}
	r.companies[c.Address] = c.Clone()
	return c.Clone(), nil
}

func (r *fakeCompanyRepo) FindByAddress(_ context.Context, addr ledger.Address) (*company.Company, error) {
	c, ok := r.companies[addr]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	return c.Clone(), nil
}

type fakeEmployeeRepo struct {
	accounts map[ledger.Address]*employee.Account
}

func (r *fakeEmployeeRepo) Create(_ context.Context, account *employee.Account) (*employee.Account, error) {
	if _, ok := r.accounts[account.Address]; ok {
		return nil, employee.ErrEmployeeExists
	}
	r.accounts[account.Address] = account.Clone()
	return account.Clone(), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, account *employee.Account) (*employee.Account, error) {
	if _, ok := r.accounts[account.Address]; !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	r.accounts[account.Address] = account.Clone()
	return account.Clone(), nil
}

func (r *fakeEmployeeRepo) FindByAddress(_ context.Context, addr ledger.Address) (*employee.Account, error) {
	account, ok := r.accounts[addr]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return account.Clone(), nil
}

func (r *fakeEmployeeRepo) List(context.Context, employee.ListEmployeesFilter) ([]*employee.Account, string, error) {
	return nil, "", nil
}

type fakeHoldings struct {
	balances map[ledger.Address]uint64
}

func (h *fakeHoldings) Balance(_ context.Context, addr ledger.Address) (uint64, error) {
	return h.balances[addr], nil
}

func (h *fakeHoldings) Transfer(_ context.Context, from, to ledger.Address, amount uint64) error {
	if h.balances[from] < amount {
		return ledger.ErrInsufficientFunds
	}
	credited, err := ledger.CheckedAdd(h.balances[to], amount)
	if err != nil {
		return err
	}
	h.balances[from] -= amount
	h.balances[to] = credited
	return nil
}

func (h *fakeHoldings) Credit(_ context.Context, addr ledger.Address, amount uint64) error {
	credited, err := ledger.CheckedAdd(h.balances[addr], amount)
	if err != nil {
		return err
	}
	h.balances[addr] = credited
	return nil
}

type recordedEvents struct {
	events []ledger.Event
}

func (r *recordedEvents) Record(_ context.Context, event ledger.Event) error {
	r.events = append(r.events, event)
	return nil
}

func identity(b byte) ledger.Address {
	var a ledger.Address
	for i := range a {
		a[i] = b
	}
	return a
}

type fixture struct {
	svc       *Service
	companies *fakeCompanyRepo
	employees *fakeEmployeeRepo
	holdings  *fakeHoldings
	events    *recordedEvents
	owner     ledger.Address
	worker    ledger.Address
	company   ledger.Address
	account   ledger.Address
}

// newFixture は賃金 earned を計上済みの社員を 1 人持つ会社を用意します。
func newFixture(earned uint64, opts ...Option) *fixture {
	deriver := ledger.NewDeriver(ledger.Address{})
	owner := identity(1)
	worker := identity(2)

	companyAddr, err := deriver.CompanyAddress(owner)
	if err != nil {
		panic(err)
	}
	accountAddr, err := deriver.EmployeeAddress(companyAddr, worker)
	if err != nil {
		panic(err)
	}

	companies := &fakeCompanyRepo{companies: map[ledger.Address]*company.Company{
		companyAddr: {Address: companyAddr, Owner: owner, Name: "Acme", EmployeeCount: 1},
	}}
	employees := &fakeEmployeeRepo{accounts: map[ledger.Address]*employee.Account{
		accountAddr: {Address: accountAddr, Company: companyAddr, Employee: worker, HourlyRate: 1000, TotalEarned: earned},
	}}
	holdings := &fakeHoldings{balances: map[ledger.Address]uint64{owner: 10_000}}
	events := &recordedEvents{}

	svc := NewService(companies, employees, holdings, deriver, &stubClock{now: time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)}, nil, events, opts...)
	return &fixture{
		svc:       svc,
		companies: companies,
		employees: employees,
		holdings:  holdings,
		events:    events,
		owner:     owner,
		worker:    worker,
		company:   companyAddr,
		account:   accountAddr,
	}
}
