package worksession

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

var (
	// ErrAlreadyClockedIn は出勤中に再度出勤しようとした場合に返却されます。
	ErrAlreadyClockedIn = errors.New("worksession: already clocked in")
	// ErrNotClockedIn は出勤していない状態で退勤しようとした場合に返却されます。
	ErrNotClockedIn = errors.New("worksession: not clocked in")
	// ErrSessionNotFound は勤務セッションが存在しない場合に返却されます。
	ErrSessionNotFound = fmt.Errorf("worksession: %w", ledger.ErrAccountNotFound)
	// ErrSessionExists は同じ sessionID のセッションが既に存在する場合に返却されます。
	ErrSessionExists = fmt.Errorf("worksession: %w", ledger.ErrAccountInUse)
)
