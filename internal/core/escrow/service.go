package escrow

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/authz"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Service は会社エスクローへの入金と社員への賃金払い出しを扱います。
// エスクローの残高は会社アドレスの Holdings 残高です。
type Service struct {
	companies company.Repository
	employees employee.Repository
	holdings  ledger.Holdings
	faucet    ledger.Faucet
	guard     authz.Guard
	clock     ledger.Clock
	tx        ledger.TransactionManager
	events    ledger.EventRecorder
}

// UseCase はエスクローユースケースの公開インターフェースです。
type UseCase interface {
	DepositPayroll(ctx context.Context, in DepositPayrollInput) (*DepositReceipt, error)
	WithdrawWages(ctx context.Context, in WithdrawWagesInput) (*WithdrawReceipt, error)
	EscrowBalance(ctx context.Context, in EscrowBalanceInput) (uint64, error)
	FundHoldings(ctx context.Context, in FundHoldingsInput) (uint64, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithFaucet は FundHoldings で使う Faucet を設定します。未設定の場合 FundHoldings は ErrFundingDisabled を返します。
func WithFaucet(faucet ledger.Faucet) Option {
	return func(s *Service) {
		s.faucet = faucet
	}
}

// NewService は Service を生成します。
func NewService(companies company.Repository, employees employee.Repository, holdings ledger.Holdings, deriver ledger.Deriver, clock ledger.Clock, tx ledger.TransactionManager, events ledger.EventRecorder, opts ...Option) *Service {
	if clock == nil {
		clock = ledger.SystemClock()
	}
	if tx == nil {
		tx = ledger.NoopTransactionManager()
	}
	if events == nil {
		events = ledger.DiscardEvents()
	}
	s := &Service{
		companies: companies,
		employees: employees,
		holdings:  holdings,
		guard:     authz.NewGuard(deriver),
		clock:     clock,
		tx:        tx,
		events:    events,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DepositPayrollInput は入金時の入力です。
type DepositPayrollInput struct {
	Signer  ledger.Address
	Company ledger.Address
	Amount  uint64
}

// DepositReceipt は入金後の会社と、エスクロー残高です。
type DepositReceipt struct {
	Company       *company.Company
	EscrowBalance uint64
}

// WithdrawWagesInput は払い出し時の入力です。
type WithdrawWagesInput struct {
	Signer          ledger.Address
	Company         ledger.Address
	EmployeeAccount ledger.Address
	Amount          uint64
}

// WithdrawReceipt は払い出し後の社員アカウントと、エスクロー残高です。
type WithdrawReceipt struct {
	Account       *employee.Account
	EscrowBalance uint64
}

// EscrowBalanceInput はエスクロー残高取得時の入力です。
type EscrowBalanceInput struct {
	Company ledger.Address
}

// FundHoldingsInput は残高発行時の入力です。
type FundHoldingsInput struct {
	Address ledger.Address
	Amount  uint64
}

// DepositPayroll はオーナーの残高から会社エスクローへ amount を移します。
// amount が 0 の場合は資金移動を行わず、イベントのみ記録します。
func (s *Service) DepositPayroll(ctx context.Context, in DepositPayrollInput) (*DepositReceipt, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}

	var receipt *DepositReceipt
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		comp, err := s.companies.FindByAddress(txCtx, in.Company)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeOwner(in.Signer, comp.Address, comp.Owner); err != nil {
			return err
		}

		total, err := ledger.CheckedAdd(comp.TotalDeposited, in.Amount)
		if err != nil {
			return err
		}

		if in.Amount > 0 {
			if err := s.holdings.Transfer(txCtx, in.Signer, comp.Address, in.Amount); err != nil {
				return fmt.Errorf("deposit payroll: %w", err)
			}
		}

		comp.TotalDeposited = total
		updated, err := s.companies.Update(txCtx, comp)
		if err != nil {
			return err
		}

		balance, err := s.holdings.Balance(txCtx, comp.Address)
		if err != nil {
			return err
		}

		event := ledger.NewEvent(ledger.EventPayrollDeposited, s.clock.Now())
		event.Company = comp.Address
		event.Actor = in.Signer
		event.Account = comp.Address
		event.Amount = in.Amount
		event.Balance = balance
		if err := s.events.Record(txCtx, event); err != nil {
			return err
		}

		receipt = &DepositReceipt{Company: updated, EscrowBalance: balance}
		return nil
	}); err != nil {
		return nil, err
	}

	return receipt, nil
}

// WithdrawWages は会社エスクローから社員の残高へ amount を払い出します。
func (s *Service) WithdrawWages(ctx context.Context, in WithdrawWagesInput) (*WithdrawReceipt, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}
	if in.Amount == 0 {
		return nil, ErrInvalidWithdrawAmount
	}

	var receipt *WithdrawReceipt
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		comp, err := s.companies.FindByAddress(txCtx, in.Company)
		if err != nil {
			return err
		}
		if err := s.guard.VerifyCompanyAccount(comp.Address, comp.Owner); err != nil {
			return err
		}

		account, err := s.employees.FindByAddress(txCtx, in.EmployeeAccount)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeEmployee(in.Signer, account.Address, comp.Address, account.Employee); err != nil {
			return err
		}

		available, err := account.Available()
		if err != nil {
			return err
		}
		if in.Amount > available {
			return fmt.Errorf("requested %d of %d available: %w", in.Amount, available, ErrInsufficientEarnings)
		}

		escrowBalance, err := s.holdings.Balance(txCtx, comp.Address)
		if err != nil {
			return err
		}
		if escrowBalance < in.Amount {
			return fmt.Errorf("escrow holds %d, requested %d: %w", escrowBalance, in.Amount, ledger.ErrInsufficientFunds)
		}

		totalWithdrawn, err := ledger.CheckedAdd(account.TotalWithdrawn, in.Amount)
		if err != nil {
			return err
		}

		if err := s.holdings.Transfer(txCtx, comp.Address, account.Employee, in.Amount); err != nil {
			return fmt.Errorf("withdraw wages: %w", err)
		}

		account.TotalWithdrawn = totalWithdrawn
		updated, err := s.employees.Update(txCtx, account)
		if err != nil {
			return err
		}

		remaining := escrowBalance - in.Amount
		event := ledger.NewEvent(ledger.EventEarningsWithdrawn, s.clock.Now())
		event.Company = comp.Address
		event.Actor = in.Signer
		event.Account = account.Address
		event.Amount = in.Amount
		event.Balance = remaining
		if err := s.events.Record(txCtx, event); err != nil {
			return err
		}

		receipt = &WithdrawReceipt{Account: updated, EscrowBalance: remaining}
		return nil
	}); err != nil {
		return nil, err
	}

	return receipt, nil
}

// EscrowBalance は会社エスクローの残高を返します。
func (s *Service) EscrowBalance(ctx context.Context, in EscrowBalanceInput) (uint64, error) {
	var balance uint64
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		comp, err := s.companies.FindByAddress(txCtx, in.Company)
		if err != nil {
			return err
		}
		result, err := s.holdings.Balance(txCtx, comp.Address)
		if err != nil {
			return err
		}
		balance = result
		return nil
	}); err != nil {
		return 0, err
	}
	return balance, nil
}

// FundHoldings は開発・検証用に address の残高を amount 増やし、増加後の残高を返します。
func (s *Service) FundHoldings(ctx context.Context, in FundHoldingsInput) (uint64, error) {
	if s.faucet == nil {
		return 0, ErrFundingDisabled
	}
	if in.Address.IsZero() {
		return 0, ledger.ErrInvalidAddress
	}
	if in.Amount == 0 {
		return 0, ErrInvalidFundingAmount
	}

	var balance uint64
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.faucet.Credit(txCtx, in.Address, in.Amount); err != nil {
			return err
		}
		result, err := s.holdings.Balance(txCtx, in.Address)
		if err != nil {
			return err
		}
		balance = result
		return nil
	}); err != nil {
		return 0, err
	}
	return balance, nil
}
