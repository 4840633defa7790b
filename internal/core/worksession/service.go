package worksession

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/authz"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Service は出退勤の状態遷移と賃金の計上を行います。
type Service struct {
	repo      Repository
	employees employee.Repository
	deriver   ledger.Deriver
	guard     authz.Guard
	clock     ledger.Clock
	tx        ledger.TransactionManager
	events    ledger.EventRecorder
}

// UseCase は勤務セッションユースケースの公開インターフェースです。
type UseCase interface {
	ClockIn(ctx context.Context, in ClockInInput) (*WorkSession, error)
	ClockOut(ctx context.Context, in ClockOutInput) (*WorkSession, error)
	GetWorkSession(ctx context.Context, in GetWorkSessionInput) (*WorkSession, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, employees employee.Repository, deriver ledger.Deriver, clock ledger.Clock, tx ledger.TransactionManager, events ledger.EventRecorder) *Service {
	if clock == nil {
		clock = ledger.SystemClock()
	}
	if tx == nil {
		tx = ledger.NoopTransactionManager()
	}
	if events == nil {
		events = ledger.DiscardEvents()
	}
	return &Service{
		repo:      repo,
		employees: employees,
		deriver:   deriver,
		guard:     authz.NewGuard(deriver),
		clock:     clock,
		tx:        tx,
		events:    events,
	}
}

// ClockInInput は出勤時の入力です。SessionID は社員ごとに一意でなければなりません。
type ClockInInput struct {
	Signer          ledger.Address
	EmployeeAccount ledger.Address
	SessionID       uint64
}

// ClockOutInput は退勤時の入力です。
type ClockOutInput struct {
	Signer          ledger.Address
	EmployeeAccount ledger.Address
}

// GetWorkSessionInput は勤務セッション取得時の入力です。
type GetWorkSessionInput struct {
	EmployeeAccount ledger.Address
	SessionID       uint64
}

// StateOf は社員アカウントの打刻状態を返します。
func StateOf(account *employee.Account) State {
	if account.IsClockedIn {
		return StateClockedIn
	}
	return StateNotClockedIn
}

// ClockIn は勤務セッションを開始し、社員を出勤状態にします。
func (s *Service) ClockIn(ctx context.Context, in ClockInInput) (*WorkSession, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}

	var opened *WorkSession
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		account, err := s.employees.FindByAddress(txCtx, in.EmployeeAccount)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeEmployee(in.Signer, account.Address, account.Company, account.Employee); err != nil {
			return err
		}
		if StateOf(account) == StateClockedIn {
			return ErrAlreadyClockedIn
		}

		addr, err := s.deriver.WorkSessionAddress(account.Address, in.SessionID)
		if err != nil {
			return err
		}

		sessionCount, err := ledger.CheckedAdd(account.SessionCount, 1)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &WorkSession{
			Address:         addr,
			EmployeeAccount: account.Address,
			Employee:        account.Employee,
			SessionID:       in.SessionID,
			ClockInTime:     now.Unix(),
		})
		if err != nil {
			return err
		}

		account.IsClockedIn = true
		account.LastClockIn = result.ClockInTime
		account.ActiveSessionID = in.SessionID
		account.SessionCount = sessionCount
		if _, err := s.employees.Update(txCtx, account); err != nil {
			return err
		}

		event := ledger.NewEvent(ledger.EventEmployeeClockedIn, now)
		event.Company = account.Company
		event.Actor = account.Employee
		event.Account = result.Address
		event.SessionID = result.SessionID
		if err := s.events.Record(txCtx, event); err != nil {
			return err
		}

		opened = result
		return nil
	}); err != nil {
		return nil, err
	}

	return opened, nil
}

// ClockOut は出勤中の勤務セッションを確定し、賃金を社員アカウントに計上します。
// 計算がすべて成功するまで状態は変更しません。
func (s *Service) ClockOut(ctx context.Context, in ClockOutInput) (*WorkSession, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}

	var closed *WorkSession
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		account, err := s.employees.FindByAddress(txCtx, in.EmployeeAccount)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeEmployee(in.Signer, account.Address, account.Company, account.Employee); err != nil {
			return err
		}
		if StateOf(account) != StateClockedIn {
			return ErrNotClockedIn
		}

		session, err := s.openSession(txCtx, account)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		earnings, err := ComputeEarnings(session.ClockInTime, now.Unix(), account.HourlyRate)
		if err != nil {
			return err
		}

		totalEarned, err := ledger.CheckedAdd(account.TotalEarned, earnings.AmountEarned)
		if err != nil {
			return err
		}
		totalHours, err := ledger.CheckedAdd(account.TotalHoursWorked, earnings.HoursWorked)
		if err != nil {
			return err
		}

		session.ClockOutTime = now.Unix()
		session.HoursWorked = earnings.HoursWorked
		session.AmountEarned = earnings.AmountEarned
		result, err := s.repo.Update(txCtx, session)
		if err != nil {
			return err
		}

		account.IsClockedIn = false
		account.TotalEarned = totalEarned
		account.TotalHoursWorked = totalHours
		if _, err := s.employees.Update(txCtx, account); err != nil {
			return err
		}

		event := ledger.NewEvent(ledger.EventEmployeeClockedOut, now)
		event.Company = account.Company
		event.Actor = account.Employee
		event.Account = result.Address
		event.SessionID = result.SessionID
		event.Hours = result.HoursWorked
		event.Amount = result.AmountEarned
		event.Balance = totalEarned
		if err := s.events.Record(txCtx, event); err != nil {
			return err
		}

		closed = result
		return nil
	}); err != nil {
		return nil, err
	}

	return closed, nil
}

// GetWorkSession は社員アカウントと sessionID から勤務セッションを取得します。
func (s *Service) GetWorkSession(ctx context.Context, in GetWorkSessionInput) (*WorkSession, error) {
	addr, err := s.deriver.WorkSessionAddress(in.EmployeeAccount, in.SessionID)
	if err != nil {
		return nil, err
	}

	var found *WorkSession
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByAddress(txCtx, addr)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

func (s *Service) openSession(ctx context.Context, account *employee.Account) (*WorkSession, error) {
	addr, err := s.deriver.WorkSessionAddress(account.Address, account.ActiveSessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.FindByAddress(ctx, addr)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ledger.NewConsistencyFault("account %s is clocked in without session %d", account.Address, account.ActiveSessionID)
	}
	if err != nil {
		return nil, err
	}
	if !session.IsOpen() {
		return nil, ledger.NewConsistencyFault("session %s of clocked in account %s is already closed", session.Address, account.Address)
	}
	return session, nil
}
