package company

import (
	"context"
	"strings"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/authz"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Service は会社に関するユースケースをまとめます。
type Service struct {
	repo    Repository
	deriver ledger.Deriver
	clock   ledger.Clock
	tx      ledger.TransactionManager
	events  ledger.EventRecorder
}

// UseCase は会社ユースケースの公開インターフェースです。
type UseCase interface {
	InitializeCompany(ctx context.Context, in InitializeCompanyInput) (*Company, error)
	GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error)
}

// NewService は Service を生成します。clock, tx, events が nil の場合は既定の実装を使います。
func NewService(repo Repository, deriver ledger.Deriver, clock ledger.Clock, tx ledger.TransactionManager, events ledger.EventRecorder) *Service {
	if clock == nil {
		clock = ledger.SystemClock()
	}
	if tx == nil {
		tx = ledger.NoopTransactionManager()
	}
	if events == nil {
		events = ledger.DiscardEvents()
	}
	return &Service{repo: repo, deriver: deriver, clock: clock, tx: tx, events: events}
}

// InitializeCompanyInput は会社登録時の入力です。署名者がオーナーになります。
type InitializeCompanyInput struct {
	Signer ledger.Address
	Name   string
}

// GetCompanyInput は会社取得時の入力です。
type GetCompanyInput struct {
	Address ledger.Address
}

// InitializeCompany は署名者をオーナーとする会社アカウントを作成します。
func (s *Service) InitializeCompany(ctx context.Context, in InitializeCompanyInput) (*Company, error) {
	if err := authz.RequireSigner(in.Signer); err != nil {
		return nil, err
	}

	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	addr, err := s.deriver.CompanyAddress(in.Signer)
	if err != nil {
		return nil, err
	}

	var created *Company
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Company{
			Address:   addr,
			Owner:     in.Signer,
			Name:      name,
			CreatedAt: now.Unix(),
		})
		if err != nil {
			return err
		}

		event := ledger.NewEvent(ledger.EventCompanyInitialized, now)
		event.Company = result.Address
		event.Actor = result.Owner
		event.Account = result.Address
		event.Note = result.Name
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

// GetCompany はアドレスで会社を取得します。
func (s *Service) GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error) {
	if in.Address.IsZero() {
		return nil, ErrCompanyNotFound
	}

	var found *Company
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

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidCompanyName
	}
	if len(trimmed) > MaxNameLength {
		return "", ErrCompanyNameTooLong
	}
	return trimmed, nil
}
