package authz

import (
	"errors"
	"testing"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

func addr(b byte) ledger.Address {
	var a ledger.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	owner := addr(1)
	if err := RequireOwner(owner, owner); err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}
	if err := RequireOwner(addr(2), owner); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := RequireOwner(ledger.Address{}, ledger.Address{}); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected zero signer to be rejected, got %v", err)
	}
}

func TestRequireEmployee(t *testing.T) {
	t.Parallel()

	worker := addr(3)
	if err := RequireEmployee(worker, worker); err != nil {
		t.Fatalf("expected employee to pass, got %v", err)
	}
	if err := RequireEmployee(addr(4), worker); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGuard_AuthorizeOwner(t *testing.T) {
	t.Parallel()

	deriver := ledger.NewDeriver(ledger.Address{})
	guard := NewGuard(deriver)
	owner := addr(1)

	company, err := deriver.CompanyAddress(owner)
	if err != nil {
		t.Fatalf("CompanyAddress returned error: %v", err)
	}

	if err := guard.AuthorizeOwner(owner, company, owner); err != nil {
		t.Fatalf("AuthorizeOwner returned error: %v", err)
	}

	other, err := deriver.CompanyAddress(addr(9))
	if err != nil {
		t.Fatalf("CompanyAddress returned error: %v", err)
	}
	if err := guard.AuthorizeOwner(owner, other, owner); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected substituted company to be rejected, got %v", err)
	}
}

func TestGuard_AuthorizeEmployee_RejectsSubstitution(t *testing.T) {
	t.Parallel()

	deriver := ledger.NewDeriver(ledger.Address{})
	guard := NewGuard(deriver)
	companyA, _ := deriver.CompanyAddress(addr(1))
	companyB, _ := deriver.CompanyAddress(addr(2))
	worker := addr(5)

	accountA, err := deriver.EmployeeAddress(companyA, worker)
	if err != nil {
		t.Fatalf("EmployeeAddress returned error: %v", err)
	}

	if err := guard.AuthorizeEmployee(worker, accountA, companyA, worker); err != nil {
		t.Fatalf("AuthorizeEmployee returned error: %v", err)
	}

	if err := guard.AuthorizeEmployee(worker, accountA, companyB, worker); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected account from another company to be rejected, got %v", err)
	}

	if err := guard.AuthorizeEmployee(addr(6), accountA, companyA, worker); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected foreign signer to be rejected, got %v", err)
	}
}

func TestGuard_VerifyWorkSessionAccount(t *testing.T) {
	t.Parallel()

	deriver := ledger.NewDeriver(ledger.Address{})
	guard := NewGuard(deriver)
	account := addr(8)

	session, err := deriver.WorkSessionAddress(account, 7)
	if err != nil {
		t.Fatalf("WorkSessionAddress returned error: %v", err)
	}

	if err := guard.VerifyWorkSessionAccount(session, account, 7); err != nil {
		t.Fatalf("VerifyWorkSessionAccount returned error: %v", err)
	}
	if err := guard.VerifyWorkSessionAccount(session, account, 8); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Fatalf("expected mismatched session id to be rejected, got %v", err)
	}
}
