package company

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

var (
	// ErrInvalidCompanyName は会社名が空の場合に返却されます。
	ErrInvalidCompanyName = errors.New("company: invalid company name")
	// ErrCompanyNameTooLong は会社名が MaxNameLength を超える場合に返却されます。
	ErrCompanyNameTooLong = fmt.Errorf("%w: longer than %d bytes", ErrInvalidCompanyName, MaxNameLength)
	// ErrCompanyNotFound は会社アカウントが存在しない場合に返却されます。
	ErrCompanyNotFound = fmt.Errorf("company: %w", ledger.ErrAccountNotFound)
	// ErrCompanyExists は同じオーナーの会社が既に存在する場合に返却されます。
	ErrCompanyExists = fmt.Errorf("company: %w", ledger.ErrAccountInUse)
)
