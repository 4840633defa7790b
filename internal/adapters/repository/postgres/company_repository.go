package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
)

// CompanyRepository は PostgreSQL を利用した会社永続化の実装です。
type CompanyRepository struct {
	pool pgdb.Queryer
}

// NewCompanyRepository は CompanyRepository を生成します。
func NewCompanyRepository(pool pgdb.Queryer) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Create は会社を新規作成します。
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO companies (address, owner, name, employee_count, total_deposited, created_at)
        VALUES ($1, $2, $3, $4, $5::numeric, $6)
        RETURNING address, owner, name, employee_count, total_deposited::text, created_at
    `, c.Address.Bytes(), c.Owner.Bytes(), c.Name, int64(c.EmployeeCount), encodeU64(c.TotalDeposited), c.CreatedAt)

	created, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return created, nil
}

// Update は社員数と入金累計を更新します。
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE companies
           SET employee_count = $1,
               total_deposited = $2::numeric
         WHERE address = $3
        RETURNING address, owner, name, employee_count, total_deposited::text, created_at
    `, int64(c.EmployeeCount), encodeU64(c.TotalDeposited), c.Address.Bytes())

	updated, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return updated, nil
}

// FindByAddress はアドレスで会社を取得します。
func (r *CompanyRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT address, owner, name, employee_count, total_deposited::text, created_at
          FROM companies
         WHERE address = $1
         LIMIT 1
    `, addr.Bytes())

	found, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return found, nil
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		address, owner []byte
		name           string
		employeeCount  int64
		totalDeposited string
		createdAt      int64
	)

	if err := row.Scan(&address, &owner, &name, &employeeCount, &totalDeposited, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}

	c := &company.Company{Name: name, EmployeeCount: uint32(employeeCount), CreatedAt: createdAt}

	var err error
	if c.Address, err = decodeAddress("companies.address", address); err != nil {
		return nil, err
	}
	if c.Owner, err = decodeAddress("companies.owner", owner); err != nil {
		return nil, err
	}
	if c.TotalDeposited, err = decodeU64("companies.total_deposited", totalDeposited); err != nil {
		return nil, err
	}
	return c, nil
}

func translateCompanyPgError(err error) error {
	switch pgErrorCode(err) {
	case uniqueViolationCode:
		return company.ErrCompanyExists
	case checkViolationCode:
		return errors.Join(ledger.ErrArithmeticOverflow, err)
	}
	return err
}
