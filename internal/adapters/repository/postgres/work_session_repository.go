package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
)

const workSessionColumns = `address, employee_account, employee, session_id::text,
               clock_in_time, clock_out_time, hours_worked::text, amount_earned::text`

// WorkSessionRepository は PostgreSQL を利用した勤務セッション永続化の実装です。
type WorkSessionRepository struct {
	pool pgdb.Queryer
}

// NewWorkSessionRepository は WorkSessionRepository を生成します。
func NewWorkSessionRepository(pool pgdb.Queryer) *WorkSessionRepository {
	return &WorkSessionRepository{pool: pool}
}

// Create は勤務セッションを新規作成します。
func (r *WorkSessionRepository) Create(ctx context.Context, s *worksession.WorkSession) (*worksession.WorkSession, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO work_sessions (
            address, employee_account, employee, session_id,
            clock_in_time, clock_out_time, hours_worked, amount_earned
        )
        VALUES ($1, $2, $3, $4::numeric, $5, $6, $7::numeric, $8::numeric)
        RETURNING `+workSessionColumns+`
    `,
		s.Address.Bytes(), s.EmployeeAccount.Bytes(), s.Employee.Bytes(), encodeU64(s.SessionID),
		s.ClockInTime, s.ClockOutTime, encodeU64(s.HoursWorked), encodeU64(s.AmountEarned),
	)

	created, err := scanWorkSession(row)
	if err != nil {
		return nil, translateWorkSessionPgError(err)
	}
	return created, nil
}

// Update は未確定のセッションを確定させます。確定済みのセッションは更新されません。
func (r *WorkSessionRepository) Update(ctx context.Context, s *worksession.WorkSession) (*worksession.WorkSession, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE work_sessions
           SET clock_out_time = $1,
               hours_worked = $2::numeric,
               amount_earned = $3::numeric
         WHERE address = $4
           AND clock_out_time = 0
        RETURNING `+workSessionColumns+`
    `, s.ClockOutTime, encodeU64(s.HoursWorked), encodeU64(s.AmountEarned), s.Address.Bytes())

	updated, err := scanWorkSession(row)
	if err != nil {
		return nil, translateWorkSessionPgError(err)
	}
	return updated, nil
}

// FindByAddress はアドレスで勤務セッションを取得します。
func (r *WorkSessionRepository) FindByAddress(ctx context.Context, addr ledger.Address) (*worksession.WorkSession, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+workSessionColumns+`
          FROM work_sessions
         WHERE address = $1
         LIMIT 1
    `, addr.Bytes())

	found, err := scanWorkSession(row)
	if err != nil {
		return nil, translateWorkSessionPgError(err)
	}
	return found, nil
}

func scanWorkSession(row pgx.Row) (*worksession.WorkSession, error) {
	var (
		address, account, worker  []byte
		sessionID                 string
		clockIn, clockOut         int64
		hoursWorked, amountEarned string
	)

	if err := row.Scan(&address, &account, &worker, &sessionID, &clockIn, &clockOut, &hoursWorked, &amountEarned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worksession.ErrSessionNotFound
		}
		return nil, err
	}

	s := &worksession.WorkSession{ClockInTime: clockIn, ClockOutTime: clockOut}

	var err error
	if s.Address, err = decodeAddress("work_sessions.address", address); err != nil {
		return nil, err
	}
	if s.EmployeeAccount, err = decodeAddress("work_sessions.employee_account", account); err != nil {
		return nil, err
	}
	if s.Employee, err = decodeAddress("work_sessions.employee", worker); err != nil {
		return nil, err
	}
	if s.SessionID, err = decodeU64("work_sessions.session_id", sessionID); err != nil {
		return nil, err
	}
	if s.HoursWorked, err = decodeU64("work_sessions.hours_worked", hoursWorked); err != nil {
		return nil, err
	}
	if s.AmountEarned, err = decodeU64("work_sessions.amount_earned", amountEarned); err != nil {
		return nil, err
	}
	return s, nil
}

func translateWorkSessionPgError(err error) error {
	switch pgErrorCode(err) {
	case uniqueViolationCode:
		return worksession.ErrSessionExists
	case foreignKeyViolationCode:
		return errors.Join(ledger.ErrAccountNotFound, err)
	}
	return err
}
