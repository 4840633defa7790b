package handler

import (
	"context"
	"testing"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"google.golang.org/grpc/codes"
)

type stubEscrowUseCase struct {
	depositInput escrow.DepositPayrollInput
	depositErr   error
	depositOut   *escrow.DepositReceipt

	withdrawInput escrow.WithdrawWagesInput
	withdrawErr   error
	withdrawOut   *escrow.WithdrawReceipt

	balanceInput escrow.EscrowBalanceInput
	balanceErr   error
	balanceOut   uint64

	fundInput escrow.FundHoldingsInput
	fundErr   error
	fundOut   uint64
}

func (s *stubEscrowUseCase) DepositPayroll(ctx context.Context, in escrow.DepositPayrollInput) (*escrow.DepositReceipt, error) {
	s.depositInput = in
	return s.depositOut, s.depositErr
}

func (s *stubEscrowUseCase) WithdrawWages(ctx context.Context, in escrow.WithdrawWagesInput) (*escrow.WithdrawReceipt, error) {
	s.withdrawInput = in
	return s.withdrawOut, s.withdrawErr
}

func (s *stubEscrowUseCase) EscrowBalance(ctx context.Context, in escrow.EscrowBalanceInput) (uint64, error) {
	s.balanceInput = in
	return s.balanceOut, s.balanceErr
}

func (s *stubEscrowUseCase) FundHoldings(ctx context.Context, in escrow.FundHoldingsInput) (uint64, error) {
	s.fundInput = in
	return s.fundOut, s.fundErr
}

func TestEscrowGrpcHandler_DepositPayroll(t *testing.T) {
	t.Parallel()

	stub := &stubEscrowUseCase{depositOut: &escrow.DepositReceipt{
		Company:       &company.Company{Address: address(9), Owner: address(1), TotalDeposited: 5_000},
		EscrowBalance: 5_000,
	}}
	handler := NewEscrowGrpcHandler(stub)

	resp, err := handler.DepositPayroll(signedBy(1), &payrollpb.DepositPayrollRequest{Company: address(9).String(), Amount: 5_000})
	if err != nil {
		t.Fatalf("DepositPayroll returned error: %v", err)
	}

	want := escrow.DepositPayrollInput{Signer: address(1), Company: address(9), Amount: 5_000}
	if stub.depositInput != want {
		t.Fatalf("unexpected input: %+v", stub.depositInput)
	}
	if resp.EscrowBalance != 5_000 || resp.Company.TotalDeposited != 5_000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEscrowGrpcHandler_DepositPayroll_InsufficientFunds(t *testing.T) {
	t.Parallel()

	handler := NewEscrowGrpcHandler(&stubEscrowUseCase{depositErr: ledger.ErrInsufficientFunds})

	_, err := handler.DepositPayroll(signedBy(1), &payrollpb.DepositPayrollRequest{Company: address(9).String(), Amount: 1})
	assertStatus(t, err, codes.FailedPrecondition, ReasonInsufficientFunds)
}

func TestEscrowGrpcHandler_WithdrawWages(t *testing.T) {
	t.Parallel()

	stub := &stubEscrowUseCase{withdrawOut: &escrow.WithdrawReceipt{
		Account:       &employee.Account{Address: address(7), TotalEarned: 2_000, TotalWithdrawn: 500},
		EscrowBalance: 4_500,
	}}
	handler := NewEscrowGrpcHandler(stub)

	resp, err := handler.WithdrawWages(signedBy(2), &payrollpb.WithdrawWagesRequest{
		Company:         address(9).String(),
		EmployeeAccount: address(7).String(),
		Amount:          500,
	})
	if err != nil {
		t.Fatalf("WithdrawWages returned error: %v", err)
	}

	want := escrow.WithdrawWagesInput{Signer: address(2), Company: address(9), EmployeeAccount: address(7), Amount: 500}
	if stub.withdrawInput != want {
		t.Fatalf("unexpected input: %+v", stub.withdrawInput)
	}
	if resp.Account.TotalWithdrawn != 500 || resp.EscrowBalance != 4_500 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEscrowGrpcHandler_WithdrawWages_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{name: "zero amount", err: escrow.ErrInvalidWithdrawAmount, code: codes.InvalidArgument, reason: ReasonInvalidAmount},
		{name: "insufficient earnings", err: escrow.ErrInsufficientEarnings, code: codes.FailedPrecondition, reason: ReasonInsufficientEarnings},
		{name: "insufficient escrow", err: ledger.ErrInsufficientFunds, code: codes.FailedPrecondition, reason: ReasonInsufficientFunds},
		{name: "forged account", err: ledger.ErrUnauthorized, code: codes.PermissionDenied, reason: ReasonUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := NewEscrowGrpcHandler(&stubEscrowUseCase{withdrawErr: tt.err})
			_, err := handler.WithdrawWages(signedBy(2), &payrollpb.WithdrawWagesRequest{
				Company:         address(9).String(),
				EmployeeAccount: address(7).String(),
				Amount:          1,
			})
			assertStatus(t, err, tt.code, tt.reason)
		})
	}
}

func TestEscrowGrpcHandler_GetEscrowBalance(t *testing.T) {
	t.Parallel()

	stub := &stubEscrowUseCase{balanceOut: 1_234}
	handler := NewEscrowGrpcHandler(stub)

	resp, err := handler.GetEscrowBalance(context.Background(), &payrollpb.GetEscrowBalanceRequest{Company: address(9).String()})
	if err != nil {
		t.Fatalf("GetEscrowBalance returned error: %v", err)
	}
	if stub.balanceInput.Company != address(9) || resp.Balance != 1_234 {
		t.Fatalf("unexpected result: input=%+v resp=%+v", stub.balanceInput, resp)
	}
}

func TestEscrowGrpcHandler_FundHoldings(t *testing.T) {
	t.Parallel()

	stub := &stubEscrowUseCase{fundOut: 10_000}
	handler := NewEscrowGrpcHandler(stub)

	resp, err := handler.FundHoldings(context.Background(), &payrollpb.FundHoldingsRequest{Address: address(1).String(), Amount: 10_000})
	if err != nil {
		t.Fatalf("FundHoldings returned error: %v", err)
	}
	if stub.fundInput.Address != address(1) || resp.Balance != 10_000 {
		t.Fatalf("unexpected result: input=%+v resp=%+v", stub.fundInput, resp)
	}

	disabled := NewEscrowGrpcHandler(&stubEscrowUseCase{fundErr: escrow.ErrFundingDisabled})
	_, err = disabled.FundHoldings(context.Background(), &payrollpb.FundHoldingsRequest{Address: address(1).String(), Amount: 1})
	assertStatus(t, err, codes.FailedPrecondition, ReasonFundingDisabled)
}
