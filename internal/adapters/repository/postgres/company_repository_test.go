package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func address(b byte) ledger.Address {
	var a ledger.Address
	for i := range a {
		a[i] = b
	}
	return a
}

var companyColumnNames = []string{"address", "owner", "name", "employee_count", "total_deposited", "created_at"}

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestCompanyRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	c := &company.Company{Address: address(1), Owner: address(2), Name: "Acme", CreatedAt: 1_700_000_000}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies (address, owner, name, employee_count, total_deposited, created_at)`)).
		WithArgs(c.Address.Bytes(), c.Owner.Bytes(), "Acme", int64(0), "0", int64(1_700_000_000)).
		WillReturnRows(pgxmock.NewRows(companyColumnNames).
			AddRow(c.Address.Bytes(), c.Owner.Bytes(), "Acme", int64(0), "0", int64(1_700_000_000)))

	created, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Address != c.Address || created.Owner != c.Owner || created.Name != "Acme" {
		t.Fatalf("unexpected company: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), &company.Company{Address: address(1), Owner: address(2), Name: "Acme"})
	if !errors.Is(err, ledger.ErrAccountInUse) {
		t.Fatalf("expected ErrAccountInUse, got %v", err)
	}
}

func TestCompanyRepository_Update_LargeTotals(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	c := &company.Company{Address: address(1), Owner: address(2), Name: "Acme", EmployeeCount: 4_294_967_295, TotalDeposited: 18_446_744_073_709_551_615}

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE companies`)).
		WithArgs(int64(4_294_967_295), "18446744073709551615", c.Address.Bytes()).
		WillReturnRows(pgxmock.NewRows(companyColumnNames).
			AddRow(c.Address.Bytes(), c.Owner.Bytes(), "Acme", int64(4_294_967_295), "18446744073709551615", int64(0)))

	updated, err := repo.Update(context.Background(), c)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.EmployeeCount != c.EmployeeCount || updated.TotalDeposited != c.TotalDeposited {
		t.Fatalf("unexpected totals: %+v", updated)
	}
}

func TestScanCompany_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanCompany(row)
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestScanCompany_CorruptAddress(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		*(dest[0].(*[]byte)) = []byte{1, 2, 3}
		*(dest[1].(*[]byte)) = address(2).Bytes()
		*(dest[2].(*string)) = "Acme"
		*(dest[4].(*string)) = "0"
		return nil
	}}

	_, err := scanCompany(row)
	if !errors.Is(err, ledger.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestTranslateCompanyPgError(t *testing.T) {
	t.Parallel()

	if !errors.Is(translateCompanyPgError(&pgconn.PgError{Code: uniqueViolationCode}), company.ErrCompanyExists) {
		t.Fatalf("expected unique violation to map to ErrCompanyExists")
	}

	if !errors.Is(translateCompanyPgError(&pgconn.PgError{Code: checkViolationCode}), ledger.ErrArithmeticOverflow) {
		t.Fatalf("expected check violation to map to ErrArithmeticOverflow")
	}

	otherErr := errors.New("random")
	if translateCompanyPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestCompanyRepository_FindByAddress_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies`)).
		WithArgs(address(9).Bytes()).
		WillReturnRows(pgxmock.NewRows(companyColumnNames))

	if _, err := repo.FindByAddress(context.Background(), address(9)); !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
