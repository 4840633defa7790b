package employee

import (
	"context"
	"strconv"
	"time"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
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

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[ledger.Address]*company.Company)}
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

type fakeRepo struct {
	accounts map[ledger.Address]*Account
	order    []ledger.Address
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[ledger.Address]*Account)}
}

func (r *fakeRepo) Create(_ context.Context, account *Account) (*Account, error) {
	if _, ok := r.accounts[account.Address]; ok {
		return nil, ErrEmployeeExists
	}
	r.accounts[account.Address] = account.Clone()
	r.order = append(r.order, account.Address)
	return account.Clone(), nil
}

func (r *fakeRepo) Update(_ context.Context, account *Account) (*Account, error) {
	if _, ok := r.accounts[account.Address]; !ok {
		return nil, ErrEmployeeNotFound
	}
	r.accounts[account.Address] = account.Clone()
	return account.Clone(), nil
}

func (r *fakeRepo) FindByAddress(_ context.Context, addr ledger.Address) (*Account, error) {
	account, ok := r.accounts[addr]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return account.Clone(), nil
}

func (r *fakeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Account, string, error) {
	var filtered []*Account
	for _, addr := range r.order {
		account := r.accounts[addr]
		if account.Company != filter.Company {
			continue
		}
		filtered = append(filtered, account.Clone())
	}

	if filter.Offset > len(filtered) {
		return []*Account{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	var nextToken string
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return filtered[filter.Offset:end], nextToken, nil
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
	companies *fakeCompanyRepo
	deriver   ledger.Deriver
	owner     ledger.Address
	company   *company.Company
}

func newFixture() *fixture {
	deriver := ledger.NewDeriver(ledger.Address{})
	companies := newFakeCompanyRepo()
	repo := newFakeRepo()
	owner := identity(1)

	addr, err := deriver.CompanyAddress(owner)
	if err != nil {
		panic(err)
	}
	comp := &company.Company{Address: addr, Owner: owner, Name: "Acme"}
	companies.companies[addr] = comp.Clone()

	svc := NewService(repo, companies, deriver, &stubClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}, nil, nil)
	return &fixture{svc: svc, repo: repo, companies: companies, deriver: deriver, owner: owner, company: comp}
}
