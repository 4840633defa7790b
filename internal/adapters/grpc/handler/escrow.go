package handler

import (
	"context"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
)

// EscrowGrpcHandler は EscrowService の gRPC 実装です。
type EscrowGrpcHandler struct {
	svc escrow.UseCase
	payrollpb.UnimplementedEscrowServiceServer
}

// NewEscrowGrpcHandler は EscrowGrpcHandler を生成します。
func NewEscrowGrpcHandler(svc escrow.UseCase) *EscrowGrpcHandler {
	return &EscrowGrpcHandler{svc: svc}
}

// DepositPayroll はオーナーの残高を会社エスクローへ入金します。
func (h *EscrowGrpcHandler) DepositPayroll(ctx context.Context, req *payrollpb.DepositPayrollRequest) (*payrollpb.DepositPayrollResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	companyAddr, err := parseAddress("company", req.GetCompany())
	if err != nil {
		return nil, err
	}

	receipt, err := h.svc.DepositPayroll(ctx, escrow.DepositPayrollInput{
		Signer:  signerOf(ctx),
		Company: companyAddr,
		Amount:  req.GetAmount(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.DepositPayrollResponse{
		Company:       toMessageCompany(receipt.Company),
		EscrowBalance: receipt.EscrowBalance,
	}, nil
}

// WithdrawWages は会社エスクローから社員へ稼ぎを払い出します。
func (h *EscrowGrpcHandler) WithdrawWages(ctx context.Context, req *payrollpb.WithdrawWagesRequest) (*payrollpb.WithdrawWagesResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	companyAddr, err := parseAddress("company", req.GetCompany())
	if err != nil {
		return nil, err
	}
	account, err := parseAddress("employee_account", req.GetEmployeeAccount())
	if err != nil {
		return nil, err
	}

	receipt, err := h.svc.WithdrawWages(ctx, escrow.WithdrawWagesInput{
		Signer:          signerOf(ctx),
		Company:         companyAddr,
		EmployeeAccount: account,
		Amount:          req.GetAmount(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.WithdrawWagesResponse{
		Account:       toMessageAccount(receipt.Account),
		EscrowBalance: receipt.EscrowBalance,
	}, nil
}

// GetEscrowBalance は会社エスクローの残高を返します。
func (h *EscrowGrpcHandler) GetEscrowBalance(ctx context.Context, req *payrollpb.GetEscrowBalanceRequest) (*payrollpb.GetEscrowBalanceResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	companyAddr, err := parseAddress("company", req.GetCompany())
	if err != nil {
		return nil, err
	}

	balance, err := h.svc.EscrowBalance(ctx, escrow.EscrowBalanceInput{Company: companyAddr})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.GetEscrowBalanceResponse{Balance: balance}, nil
}

// FundHoldings は開発用に address の残高を発行します。
func (h *EscrowGrpcHandler) FundHoldings(ctx context.Context, req *payrollpb.FundHoldingsRequest) (*payrollpb.FundHoldingsResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	addr, err := parseAddress("address", req.GetAddress())
	if err != nil {
		return nil, err
	}

	balance, err := h.svc.FundHoldings(ctx, escrow.FundHoldingsInput{Address: addr, Amount: req.GetAmount()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.FundHoldingsResponse{Balance: balance}, nil
}
