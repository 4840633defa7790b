package worksession

import (
	"context"
	"time"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func (s *stubClock) advance(d time.Duration) {
	s.now = s.now.Add(d)
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

type fakeRepo struct {
	sessions map[ledger.Address]*WorkSession
}

func (r *fakeRepo) Create(_ context.Context, session *WorkSession) (*WorkSession, error) {
	if _, ok := r.sessions[session.Address]; ok {
		return nil, ErrSessionExists
	}
	r.sessions[session.Address] = session.Clone()
	return session.Clone(), nil
}

func (r *fakeRepo) Update(_ context.Context, session *WorkSession) (*WorkSession, error) {
	if _, ok := r.sessions[session.Address]; !ok {
		return nil, ErrSessionNotFound
	}
	r.sessions[session.Address] = session.Clone()
	return session.Clone(), nil
}

func (r *fakeRepo) FindByAddress(_ context.Context, addr ledger.Address) (*WorkSession, error) {
	session, ok := r.sessions[addr]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
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
	repo      *fakeRepo
	employees *fakeEmployeeRepo
	clock     *stubClock
	events    *recordedEvents
	deriver   ledger.Deriver
	worker    ledger.Address
	account   *employee.Account
}

func newFixture(hourlyRate uint64) *fixture {
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

	account := &employee.Account{
		Address:    accountAddr,
		Company:    companyAddr,
		Employee:   worker,
		HourlyRate: hourlyRate,
	}
	employees := &fakeEmployeeRepo{accounts: map[ledger.Address]*employee.Account{accountAddr: account.Clone()}}
	repo := &fakeRepo{sessions: make(map[ledger.Address]*WorkSession)}
	clock := &stubClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	events := &recordedEvents{}

	svc := NewService(repo, employees, deriver, clock, nil, events)
	return &fixture{
		svc:       svc,
		repo:      repo,
		employees: employees,
		clock:     clock,
		events:    events,
		deriver:   deriver,
		worker:    worker,
		account:   account,
	}
}

func (f *fixture) stored() *employee.Account {
	return f.employees.accounts[f.account.Address]
}
