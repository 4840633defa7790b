package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func identity(b byte) ledger.Address {
	var a ledger.Address
	for i := range a {
		a[i] = b
	}
	return a
}

type payroll struct {
	store     *memory.Store
	clock     *stubClock
	companies *company.Service
	employees *employee.Service
	sessions  *worksession.Service
	escrow    *escrow.Service
}

func newPayroll() *payroll {
	store := memory.NewStore()
	clock := &stubClock{now: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
	deriver := ledger.NewDeriver(ledger.Address{})
	events := store.Events()

	return &payroll{
		store:     store,
		clock:     clock,
		companies: company.NewService(store.Companies(), deriver, clock, store, events),
		employees: employee.NewService(store.Employees(), store.Companies(), deriver, clock, store, events),
		sessions:  worksession.NewService(store.WorkSessions(), store.Employees(), deriver, clock, store, events),
		escrow:    escrow.NewService(store.Companies(), store.Employees(), store.Holdings(), deriver, clock, store, events, escrow.WithFaucet(store.Holdings())),
	}
}

// onboard は会社を登録し、時給 rate の社員を 1 人追加します。
func (p *payroll) onboard(t *testing.T, owner, worker ledger.Address, rate uint64) (*company.Company, *employee.Account) {
	t.Helper()

	ctx := context.Background()
	comp, err := p.companies.InitializeCompany(ctx, company.InitializeCompanyInput{Signer: owner, Name: "Acme"})
	if err != nil {
		t.Fatalf("InitializeCompany returned error: %v", err)
	}
	account, err := p.employees.AddEmployee(ctx, employee.AddEmployeeInput{
		Signer:     owner,
		Company:    comp.Address,
		Employee:   worker,
		HourlyRate: rate,
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	return comp, account
}

func (p *payroll) account(t *testing.T, addr ledger.Address) *employee.Account {
	t.Helper()

	account, err := p.store.Employees().FindByAddress(context.Background(), addr)
	if err != nil {
		t.Fatalf("FindByAddress returned error: %v", err)
	}
	return account
}

func TestScenario_ZeroHourlyRate(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	owner := identity(1)

	comp, err := p.companies.InitializeCompany(ctx, company.InitializeCompanyInput{Signer: owner, Name: "Acme"})
	if err != nil {
		t.Fatalf("InitializeCompany returned error: %v", err)
	}

	_, err = p.employees.AddEmployee(ctx, employee.AddEmployeeInput{Signer: owner, Company: comp.Address, Employee: identity(2)})
	if !errors.Is(err, employee.ErrInvalidHourlyRate) {
		t.Fatalf("expected ErrInvalidHourlyRate, got %v", err)
	}

	stored, err := p.companies.GetCompany(ctx, company.GetCompanyInput{Address: comp.Address})
	if err != nil {
		t.Fatalf("GetCompany returned error: %v", err)
	}
	if stored.EmployeeCount != 0 {
		t.Fatalf("expected employee count 0, got %d", stored.EmployeeCount)
	}
}

func TestScenario_InitializeCompany(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	owner := identity(1)

	if _, err := p.companies.InitializeCompany(ctx, company.InitializeCompanyInput{Signer: owner, Name: ""}); !errors.Is(err, company.ErrInvalidCompanyName) {
		t.Fatalf("expected ErrInvalidCompanyName, got %v", err)
	}

	comp, err := p.companies.InitializeCompany(ctx, company.InitializeCompanyInput{Signer: owner, Name: "Acme"})
	if err != nil {
		t.Fatalf("InitializeCompany returned error: %v", err)
	}
	if comp.EmployeeCount != 0 || comp.TotalDeposited != 0 {
		t.Fatalf("unexpected fresh company: %+v", comp)
	}

	events, err := p.store.Events().List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != ledger.EventCompanyInitialized {
		t.Fatalf("expected a single company event, got %+v", events)
	}
}

func TestScenario_DoubleClockIn(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	worker := identity(2)
	_, account := p.onboard(t, identity(1), worker, 1000)

	if _, err := p.sessions.ClockIn(ctx, worksession.ClockInInput{Signer: worker, EmployeeAccount: account.Address, SessionID: 1}); err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	for _, sessionID := range []uint64{1, 2} {
		_, err := p.sessions.ClockIn(ctx, worksession.ClockInInput{Signer: worker, EmployeeAccount: account.Address, SessionID: sessionID})
		if !errors.Is(err, worksession.ErrAlreadyClockedIn) {
			t.Fatalf("session %d: expected ErrAlreadyClockedIn, got %v", sessionID, err)
		}
	}

	stored := p.account(t, account.Address)
	if !stored.IsClockedIn || stored.ActiveSessionID != 1 || stored.SessionCount != 1 {
		t.Fatalf("unexpected account after double clock in: %+v", stored)
	}
	if _, err := p.sessions.GetWorkSession(ctx, worksession.GetWorkSessionInput{EmployeeAccount: account.Address, SessionID: 2}); !errors.Is(err, worksession.ErrSessionNotFound) {
		t.Fatalf("second session must not exist, got %v", err)
	}
}

func TestScenario_ClockOutWithoutClockIn(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	worker := identity(2)
	_, account := p.onboard(t, identity(1), worker, 1000)

	_, err := p.sessions.ClockOut(context.Background(), worksession.ClockOutInput{Signer: worker, EmployeeAccount: account.Address})
	if !errors.Is(err, worksession.ErrNotClockedIn) {
		t.Fatalf("expected ErrNotClockedIn, got %v", err)
	}
}

func TestScenario_ShiftAccruesEarnings(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	worker := identity(2)
	_, account := p.onboard(t, identity(1), worker, 1250)

	if _, err := p.sessions.ClockIn(ctx, worksession.ClockInInput{Signer: worker, EmployeeAccount: account.Address, SessionID: 1}); err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	p.clock.now = p.clock.now.Add(90 * time.Minute)

	session, err := p.sessions.ClockOut(ctx, worksession.ClockOutInput{Signer: worker, EmployeeAccount: account.Address})
	if err != nil {
		t.Fatalf("ClockOut returned error: %v", err)
	}
	if session.HoursWorked == 0 {
		t.Fatalf("expected hours worked")
	}
	if session.AmountEarned != session.HoursWorked*1250/100 {
		t.Fatalf("expected %d earned, got %d", session.HoursWorked*1250/100, session.AmountEarned)
	}

	stored := p.account(t, account.Address)
	if stored.TotalEarned != session.AmountEarned {
		t.Fatalf("expected total earned %d, got %d", session.AmountEarned, stored.TotalEarned)
	}
	if stored.IsClockedIn {
		t.Fatalf("account must be clocked out")
	}
}

func TestScenario_WithdrawWages(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	owner := identity(1)
	worker := identity(2)
	comp, account := p.onboard(t, owner, worker, 1000)

	if _, err := p.sessions.ClockIn(ctx, worksession.ClockInInput{Signer: worker, EmployeeAccount: account.Address, SessionID: 1}); err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	p.clock.now = p.clock.now.Add(3 * time.Hour)
	session, err := p.sessions.ClockOut(ctx, worksession.ClockOutInput{Signer: worker, EmployeeAccount: account.Address})
	if err != nil {
		t.Fatalf("ClockOut returned error: %v", err)
	}
	earned := session.AmountEarned

	withdraw := func(amount uint64) error {
		_, err := p.escrow.WithdrawWages(ctx, escrow.WithdrawWagesInput{
			Signer:          worker,
			Company:         comp.Address,
			EmployeeAccount: account.Address,
			Amount:          amount,
		})
		return err
	}

	if err := withdraw(earned + 1); !errors.Is(err, escrow.ErrInsufficientEarnings) {
		t.Fatalf("expected ErrInsufficientEarnings, got %v", err)
	}
	if err := withdraw(earned); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if _, err := p.escrow.FundHoldings(ctx, escrow.FundHoldingsInput{Address: owner, Amount: earned}); err != nil {
		t.Fatalf("FundHoldings returned error: %v", err)
	}
	if _, err := p.escrow.DepositPayroll(ctx, escrow.DepositPayrollInput{Signer: owner, Company: comp.Address, Amount: earned}); err != nil {
		t.Fatalf("DepositPayroll returned error: %v", err)
	}

	if err := withdraw(earned); err != nil {
		t.Fatalf("WithdrawWages returned error: %v", err)
	}

	stored := p.account(t, account.Address)
	if stored.TotalWithdrawn != earned {
		t.Fatalf("expected total withdrawn %d, got %d", earned, stored.TotalWithdrawn)
	}
	balance, err := p.store.Holdings().Balance(ctx, worker)
	if err != nil {
		t.Fatalf("Balance returned error: %v", err)
	}
	if balance != earned {
		t.Fatalf("expected worker holdings %d, got %d", earned, balance)
	}
	escrowBalance, err := p.escrow.EscrowBalance(ctx, escrow.EscrowBalanceInput{Company: comp.Address})
	if err != nil {
		t.Fatalf("EscrowBalance returned error: %v", err)
	}
	if escrowBalance != 0 {
		t.Fatalf("expected empty escrow, got %d", escrowBalance)
	}
}

func TestScenario_EmployeeCountMatchesAccounts(t *testing.T) {
	t.Parallel()

	p := newPayroll()
	ctx := context.Background()
	owner := identity(1)
	comp, _ := p.onboard(t, owner, identity(2), 1000)

	for i := byte(3); i < 8; i++ {
		if _, err := p.employees.AddEmployee(ctx, employee.AddEmployeeInput{Signer: owner, Company: comp.Address, Employee: identity(i), HourlyRate: 500}); err != nil {
			t.Fatalf("AddEmployee returned error: %v", err)
		}
	}
	if _, err := p.employees.AddEmployee(ctx, employee.AddEmployeeInput{Signer: owner, Company: comp.Address, Employee: identity(3), HourlyRate: 500}); !errors.Is(err, ledger.ErrAccountInUse) {
		t.Fatalf("expected ErrAccountInUse, got %v", err)
	}

	listed, err := p.employees.ListEmployees(ctx, employee.ListEmployeesInput{Company: comp.Address, PageSize: 100})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	stored, err := p.companies.GetCompany(ctx, company.GetCompanyInput{Address: comp.Address})
	if err != nil {
		t.Fatalf("GetCompany returned error: %v", err)
	}
	if int(stored.EmployeeCount) != len(listed.Employees) || len(listed.Employees) != 6 {
		t.Fatalf("employee count %d does not match %d accounts", stored.EmployeeCount, len(listed.Employees))
	}
}

func TestStore_RollsBackFailedTransaction(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	ctx := context.Background()
	owner := identity(1)

	if err := store.Holdings().Credit(ctx, owner, 100); err != nil {
		t.Fatalf("Credit returned error: %v", err)
	}

	boom := errors.New("boom")
	err := store.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := store.Holdings().Transfer(txCtx, owner, identity(2), 60); err != nil {
			return err
		}
		if _, err := store.Companies().Create(txCtx, &company.Company{Address: identity(3), Owner: owner, Name: "Acme"}); err != nil {
			return err
		}
		if err := store.Events().Record(txCtx, ledger.NewEvent(ledger.EventCompanyInitialized, time.Now())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	balance, _ := store.Holdings().Balance(ctx, owner)
	if balance != 100 {
		t.Fatalf("expected balance restored to 100, got %d", balance)
	}
	if _, err := store.Companies().FindByAddress(ctx, identity(3)); !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected company to be rolled back, got %v", err)
	}
	events, _ := store.Events().List(ctx)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestHoldingsLedger_TransferInsufficient(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	ctx := context.Background()

	err := store.Holdings().Transfer(ctx, identity(1), identity(2), 1)
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
