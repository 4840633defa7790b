package employee

import (
	"context"
	"strconv"
	"strings"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/authz"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は社員アカウントに関するユースケースをまとめます。
type Service struct {
	repo      Repository
	companies company.Repository
	deriver   ledger.Deriver
	guard     authz.Guard
	clock     ledger.Clock
	tx        ledger.TransactionManager
	events    ledger.EventRecorder
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (*Account, error)
	GetEmployeeAccount(ctx context.Context, in GetEmployeeAccountInput) (*Account, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	AvailableBalance(ctx context.Context, in AvailableBalanceInput) (uint64, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, companies company.Repository, deriver ledger.Deriver, clock ledger.Clock, tx ledger.TransactionManager, events ledger.EventRecorder) *Service {
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
		companies: companies,
		deriver:   deriver,
		guard:     authz.NewGuard(deriver),
		clock:     clock,
		tx:        tx,
		events:    events,
	}
}

// AddEmployeeInput は社員追加時の入力です。Signer は会社オーナーでなければなりません。
type AddEmployeeInput struct {
	Signer     ledger.Address
	Company    ledger.Address
	Employee   ledger.Address
	HourlyRate uint64
}

// GetEmployeeAccountInput は社員アカウント取得時の入力です。
type GetEmployeeAccountInput struct {
	Address ledger.Address
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	Company   ledger.Address
	PageSize  int
	PageToken string
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Account
	NextPageToken string
}

// AvailableBalanceInput は引き出し可能額の照会入力です。Signer は社員本人でなければなりません。
type AvailableBalanceInput struct {
	Signer  ledger.Address
	Account ledger.Address
}

// AddEmployee は会社に社員アカウントを追加し、会社の社員数を加算します。
func (s *Service) AddEmployee(ctx context.Context, in AddEmployeeInput) (*Account, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}
	if in.Employee.IsZero() {
		return nil, ErrInvalidEmployee
	}

	var created *Account
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		comp, err := s.companies.FindByAddress(txCtx, in.Company)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeOwner(in.Signer, comp.Address, comp.Owner); err != nil {
			return err
		}
		if in.HourlyRate == 0 {
			return ErrInvalidHourlyRate
		}

		addr, err := s.deriver.EmployeeAddress(comp.Address, in.Employee)
		if err != nil {
			return err
		}

		count, err := ledger.CheckedAdd32(comp.EmployeeCount, 1)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Account{
			Address:    addr,
			Company:    comp.Address,
			Employee:   in.Employee,
			HourlyRate: in.HourlyRate,
			CreatedAt:  now.Unix(),
		})
		if err != nil {
			return err
		}

		comp.EmployeeCount = count
		if _, err := s.companies.Update(txCtx, comp); err != nil {
			return err
		}

		event := ledger.NewEvent(ledger.EventEmployeeAdded, now)
		event.Company = comp.Address
		event.Actor = in.Employee
		event.Account = result.Address
		event.Amount = result.HourlyRate
		if err := s.events.Record(txCtx, event); err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetEmployeeAccount はアドレスで社員アカウントを取得します。
func (s *Service) GetEmployeeAccount(ctx context.Context, in GetEmployeeAccountInput) (*Account, error) {
	if in.Address.IsZero() {
		return nil, ErrEmployeeNotFound
	}

	var found *Account
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByAddress(txCtx, in.Address)
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

// ListEmployees は会社に所属する社員アカウントの一覧を取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	if in.Company.IsZero() {
		return nil, company.ErrCompanyNotFound
	}

	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		accounts  []*Account
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.companies.FindByAddress(txCtx, in.Company); err != nil {
			return err
		}
		result, token, err := s.repo.List(txCtx, ListEmployeesFilter{
			Company: in.Company,
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			return err
		}
		accounts = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: accounts, NextPageToken: nextToken}, nil
}

// AvailableBalance は社員本人の引き出し可能額を返します。
func (s *Service) AvailableBalance(ctx context.Context, in AvailableBalanceInput) (uint64, error) {
	var available uint64
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		account, err := s.repo.FindByAddress(txCtx, in.Account)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeEmployee(in.Signer, account.Address, account.Company, account.Employee); err != nil {
			return err
		}
		result, err := account.Available()
		if err != nil {
			return err
		}
		available = result
		return nil
	}); err != nil {
		return 0, err
	}

	return available, nil
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
