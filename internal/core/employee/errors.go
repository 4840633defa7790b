package employee

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

var (
	ErrInvalidHourlyRate = errors.New("employee: invalid hourly rate")
	ErrInvalidEmployee   = errors.New("employee: invalid employee identity")
	ErrInvalidPageSize   = errors.New("employee: invalid page size")
	ErrInvalidPageToken  = errors.New("employee: invalid page token")
	ErrEmployeeNotFound  = fmt.Errorf("employee: %w", ledger.ErrAccountNotFound)
	ErrEmployeeExists    = fmt.Errorf("employee: %w", ledger.ErrAccountInUse)
)
