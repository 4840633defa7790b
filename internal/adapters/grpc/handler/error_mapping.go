package handler

import (
	"errors"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
	pgdb "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain は ErrorInfo.Domain に設定する値です。
const ErrorDomain = "payroll.v1"

// ErrorInfo.Reason に設定する機械可読な理由です。
const (
	ReasonInvalidArgument      = "INVALID_ARGUMENT"
	ReasonInvalidAddress       = "INVALID_ADDRESS"
	ReasonInvalidCompanyName   = "INVALID_COMPANY_NAME"
	ReasonInvalidHourlyRate    = "INVALID_HOURLY_RATE"
	ReasonInvalidAmount        = "INVALID_AMOUNT"
	ReasonUnauthorized         = "UNAUTHORIZED"
	ReasonAccountNotFound      = "ACCOUNT_NOT_FOUND"
	ReasonAccountInUse         = "ACCOUNT_IN_USE"
	ReasonAlreadyClockedIn     = "ALREADY_CLOCKED_IN"
	ReasonNotClockedIn         = "NOT_CLOCKED_IN"
	ReasonInsufficientEarnings = "INSUFFICIENT_EARNINGS"
	ReasonInsufficientFunds    = "INSUFFICIENT_FUNDS"
	ReasonFundingDisabled      = "FUNDING_DISABLED"
	ReasonArithmeticOverflow   = "ARITHMETIC_OVERFLOW"
	ReasonConsistencyFault     = "CONSISTENCY_FAULT"
	ReasonTransactionAborted   = "TRANSACTION_ABORTED"
	ReasonInternal             = "INTERNAL"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	code, reason := classify(err)
	return statusWithReason(code, reason, err.Error())
}

func classify(err error) (codes.Code, string) {
	switch {
	case errors.Is(err, ledger.ErrConsistencyFault):
		return codes.DataLoss, ReasonConsistencyFault
	case errors.Is(err, pgdb.ErrSerializationFailure):
		return codes.Aborted, ReasonTransactionAborted
	case errors.Is(err, ledger.ErrInvalidAddress):
		return codes.InvalidArgument, ReasonInvalidAddress
	case errors.Is(err, company.ErrInvalidCompanyName):
		return codes.InvalidArgument, ReasonInvalidCompanyName
	case errors.Is(err, employee.ErrInvalidHourlyRate):
		return codes.InvalidArgument, ReasonInvalidHourlyRate
	case errors.Is(err, escrow.ErrInvalidWithdrawAmount),
		errors.Is(err, escrow.ErrInvalidFundingAmount):
		return codes.InvalidArgument, ReasonInvalidAmount
	case errors.Is(err, employee.ErrInvalidEmployee),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidPageToken):
		return codes.InvalidArgument, ReasonInvalidArgument
	case errors.Is(err, ledger.ErrUnauthorized):
		return codes.PermissionDenied, ReasonUnauthorized
	case errors.Is(err, ledger.ErrAccountNotFound):
		return codes.NotFound, ReasonAccountNotFound
	case errors.Is(err, ledger.ErrAccountInUse):
		return codes.AlreadyExists, ReasonAccountInUse
	case errors.Is(err, worksession.ErrAlreadyClockedIn):
		return codes.FailedPrecondition, ReasonAlreadyClockedIn
	case errors.Is(err, worksession.ErrNotClockedIn):
		return codes.FailedPrecondition, ReasonNotClockedIn
	case errors.Is(err, escrow.ErrInsufficientEarnings):
		return codes.FailedPrecondition, ReasonInsufficientEarnings
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return codes.FailedPrecondition, ReasonInsufficientFunds
	case errors.Is(err, escrow.ErrFundingDisabled):
		return codes.FailedPrecondition, ReasonFundingDisabled
	case errors.Is(err, ledger.ErrArithmeticOverflow):
		return codes.OutOfRange, ReasonArithmeticOverflow
	default:
		return codes.Internal, ReasonInternal
	}
}

// statusWithReason は ErrorInfo を添付した status error を返します。
// 詳細の添付に失敗した場合は詳細なしの status を返します。
func statusWithReason(code codes.Code, reason, message string) error {
	st := status.New(code, message)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: ErrorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ReasonOf は status error に添付された ErrorInfo.Reason を返します。
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

func invalidArgument(message string) error {
	return statusWithReason(codes.InvalidArgument, ReasonInvalidArgument, message)
}
