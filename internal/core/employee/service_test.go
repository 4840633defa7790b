package employee

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

func TestService_AddEmployee_Success(t *testing.T) {
	t.Parallel()

	f := newFixture()
	worker := identity(2)

	created, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
		Signer:     f.owner,
		Company:    f.company.Address,
		Employee:   worker,
		HourlyRate: 1500,
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	expected, err := f.deriver.EmployeeAddress(f.company.Address, worker)
	if err != nil {
		t.Fatalf("EmployeeAddress returned error: %v", err)
	}
	if created.Address != expected {
		t.Fatalf("expected derived address %s, got %s", expected, created.Address)
	}
	if created.IsClockedIn || created.TotalEarned != 0 || created.TotalWithdrawn != 0 {
		t.Fatalf("expected fresh account, got %+v", created)
	}

	comp := f.companies.companies[f.company.Address]
	if comp.EmployeeCount != 1 {
		t.Fatalf("expected employee count 1, got %d", comp.EmployeeCount)
	}
}

func TestService_AddEmployee_ZeroRate(t *testing.T) {
	t.Parallel()

	f := newFixture()

	_, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
		Signer:   f.owner,
		Company:  f.company.Address,
		Employee: identity(2),
	})
	if !errors.Is(err, ErrInvalidHourlyRate) {
		t.Fatalf("expected ErrInvalidHourlyRate, got %v", err)
	}
	if f.companies.companies[f.company.Address].EmployeeCount != 0 {
		t.Fatalf("employee count must not change on failure")
	}
}

func TestService_AddEmployee_MaxRateAccepted(t *testing.T) {
	t.Parallel()

	f := newFixture()

	created, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
		Signer:     f.owner,
		Company:    f.company.Address,
		Employee:   identity(2),
		HourlyRate: math.MaxUint64,
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if created.HourlyRate != math.MaxUint64 {
		t.Fatalf("expected max rate, got %d", created.HourlyRate)
	}
}

func TestService_AddEmployee_NotOwner(t *testing.T) {
	t.Parallel()

	f := newFixture()

	_, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
		Signer:     identity(9),
		Company:    f.company.Address,
		Employee:   identity(2),
		HourlyRate: 10,
	})
	if !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_AddEmployee_Duplicate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	in := AddEmployeeInput{Signer: f.owner, Company: f.company.Address, Employee: identity(2), HourlyRate: 10}

	if _, err := f.svc.AddEmployee(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.AddEmployee(context.Background(), in); !errors.Is(err, ledger.ErrAccountInUse) {
		t.Fatalf("expected ErrAccountInUse, got %v", err)
	}
	if got := f.companies.companies[f.company.Address].EmployeeCount; got != 1 {
		t.Fatalf("expected employee count 1, got %d", got)
	}
}

func TestService_AddEmployee_CountOverflow(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.companies.companies[f.company.Address].EmployeeCount = math.MaxUint32

	_, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
		Signer:     f.owner,
		Company:    f.company.Address,
		Employee:   identity(2),
		HourlyRate: 10,
	})
	if !errors.Is(err, ledger.ErrArithmeticOverflow) {
		t.Fatalf("expected ErrArithmeticOverflow, got %v", err)
	}
	if len(f.repo.accounts) != 0 {
		t.Fatalf("no account may be created on overflow")
	}
}

func TestService_ListEmployees_Pagination(t *testing.T) {
	t.Parallel()

	f := newFixture()
	for i := 0; i < 3; i++ {
		if _, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{
			Signer:     f.owner,
			Company:    f.company.Address,
			Employee:   identity(byte(10 + i)),
			HourlyRate: uint64(100 + i),
		}); err != nil {
			t.Fatalf("AddEmployee error: %v", err)
		}
	}

	result, err := f.svc.ListEmployees(context.Background(), ListEmployeesInput{Company: f.company.Address, PageSize: 2})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(result.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(result.Employees))
	}
	if result.NextPageToken != "2" {
		t.Fatalf("expected next token 2, got %s", result.NextPageToken)
	}

	rest, err := f.svc.ListEmployees(context.Background(), ListEmployeesInput{Company: f.company.Address, PageToken: result.NextPageToken})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(rest.Employees) != 1 || rest.NextPageToken != "" {
		t.Fatalf("unexpected second page: %d employees, token %q", len(rest.Employees), rest.NextPageToken)
	}
}

func TestService_ListEmployees_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture()

	if _, err := f.svc.ListEmployees(context.Background(), ListEmployeesInput{Company: f.company.Address, PageSize: maxListPageSize + 1}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := f.svc.ListEmployees(context.Background(), ListEmployeesInput{Company: f.company.Address, PageToken: "abc"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
	if _, err := f.svc.ListEmployees(context.Background(), ListEmployeesInput{Company: identity(77)}); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestService_AvailableBalance(t *testing.T) {
	t.Parallel()

	f := newFixture()
	worker := identity(2)
	created, err := f.svc.AddEmployee(context.Background(), AddEmployeeInput{Signer: f.owner, Company: f.company.Address, Employee: worker, HourlyRate: 10})
	if err != nil {
		t.Fatalf("AddEmployee error: %v", err)
	}

	stored := f.repo.accounts[created.Address]
	stored.TotalEarned = 900
	stored.TotalWithdrawn = 250

	available, err := f.svc.AvailableBalance(context.Background(), AvailableBalanceInput{Signer: worker, Account: created.Address})
	if err != nil {
		t.Fatalf("AvailableBalance returned error: %v", err)
	}
	if available != 650 {
		t.Fatalf("expected 650, got %d", available)
	}

	if _, err := f.svc.AvailableBalance(context.Background(), AvailableBalanceInput{Signer: f.owner, Account: created.Address}); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected owner to be rejected, got %v", err)
	}
}

func TestAccount_AvailableDetectsBrokenInvariant(t *testing.T) {
	t.Parallel()

	account := &Account{TotalEarned: 1, TotalWithdrawn: 2}
	if _, err := account.Available(); !errors.Is(err, ledger.ErrConsistencyFault) {
		t.Fatalf("expected consistency fault, got %v", err)
	}
}
