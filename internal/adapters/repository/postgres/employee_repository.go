package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
)

const employeeColumns = `address, company, employee, hourly_rate::text, is_clocked_in,
               total_earned::text, total_withdrawn::text, total_hours_worked::text,
               last_clock_in, active_session_id::text, session_count::text, created_at`

// EmployeeRepository は PostgreSQL を利用した社員アカウント永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員アカウントを新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, a *employee.Account) (*employee.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employee_accounts (
            address, company, employee, hourly_rate, is_clocked_in,
            total_earned, total_withdrawn, total_hours_worked,
            last_clock_in, active_session_id, session_count, created_at
        )
        VALUES ($1, $2, $3, $4::numeric, $5, $6::numeric, $7::numeric, $8::numeric, $9, $10::numeric, $11::numeric, $12)
        RETURNING `+employeeColumns+`
    `,
		a.Address.Bytes(), a.Company.Bytes(), a.Employee.Bytes(), encodeU64(a.HourlyRate), a.IsClockedIn,
		encodeU64(a.TotalEarned), encodeU64(a.TotalWithdrawn), encodeU64(a.TotalHoursWorked),
		a.LastClockIn, encodeU64(a.ActiveSessionID), encodeU64(a.SessionCount), a.CreatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は打刻状態と累計を更新します。
func (r *EmployeeRepository) Update(ctx context.Context, a *employee.Account) (*employee.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employee_accounts
           SET is_clocked_in = $1,
               total_earned = $2::numeric,
               total_withdrawn = $3::numeric,
               total_hours_worked = $4::numeric,
               last_clock_in = $5,
               active_session_id = $6::numeric,
               session_count = $7::numeric
         WHERE address = $8
        RETURNING `+employeeColumns+`
    `,
		a.IsClockedIn, encodeU64(a.TotalEarned), encodeU64(a.TotalWithdrawn), encodeU64(a.TotalHoursWorked),
		a.LastClockIn, encodeU64(a.ActiveSessionID), encodeU64(a.SessionCount), a.Address.Bytes(),
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// FindByAddress はアドレスで社員アカウントを取得します。
func (r *EmployeeRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*employee.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employee_accounts
         WHERE address = $1
         LIMIT 1
    `, addr.Bytes())

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は会社に所属する社員アカウントを登録順に取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Account, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employee_accounts
         WHERE company = $1
         ORDER BY seq ASC
         LIMIT $2
        OFFSET $3
    `, filter.Company.Bytes(), filter.Limit+1, filter.Offset)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	defer rows.Close()

	var accounts []*employee.Account
	for rows.Next() {
		found, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translateEmployeePgError(err)
		}
		accounts = append(accounts, found)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	var nextToken string
	if len(accounts) > filter.Limit {
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
		accounts = accounts[:filter.Limit]
	}

	return accounts, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Account, error) {
	var (
		address, companyAddr, employeeAddr []byte
		hourlyRate                         string
		isClockedIn                        bool
		totalEarned, totalWithdrawn        string
		totalHours                         string
		lastClockIn                        int64
		activeSessionID, sessionCount      string
		createdAt                          int64
	)

	if err := row.Scan(
		&address, &companyAddr, &employeeAddr, &hourlyRate, &isClockedIn,
		&totalEarned, &totalWithdrawn, &totalHours,
		&lastClockIn, &activeSessionID, &sessionCount, &createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	a := &employee.Account{IsClockedIn: isClockedIn, LastClockIn: lastClockIn, CreatedAt: createdAt}

	var err error
	if a.Address, err = decodeAddress("employee_accounts.address", address); err != nil {
		return nil, err
	}
	if a.Company, err = decodeAddress("employee_accounts.company", companyAddr); err != nil {
		return nil, err
	}
	if a.Employee, err = decodeAddress("employee_accounts.employee", employeeAddr); err != nil {
		return nil, err
	}

	numerics := []struct {
		column string
		raw    string
		dst    *uint64
	}{
		{"hourly_rate", hourlyRate, &a.HourlyRate},
		{"total_earned", totalEarned, &a.TotalEarned},
		{"total_withdrawn", totalWithdrawn, &a.TotalWithdrawn},
		{"total_hours_worked", totalHours, &a.TotalHoursWorked},
		{"active_session_id", activeSessionID, &a.ActiveSessionID},
		{"session_count", sessionCount, &a.SessionCount},
	}
	for _, n := range numerics {
		if *n.dst, err = decodeU64("employee_accounts."+n.column, n.raw); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func translateEmployeePgError(err error) error {
	switch pgErrorCode(err) {
	case uniqueViolationCode:
		return employee.ErrEmployeeExists
	case foreignKeyViolationCode:
		return errors.Join(ledger.ErrAccountNotFound, err)
	case checkViolationCode:
		return ledger.NewConsistencyFault("employee account constraint violated: %v", err)
	}
	return err
}
