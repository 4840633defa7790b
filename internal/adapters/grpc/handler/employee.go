package handler

import (
	"context"
	"math/big"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/shopspring/decimal"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	payrollpb.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// AddEmployee は会社に社員を追加します。
func (h *EmployeeGrpcHandler) AddEmployee(ctx context.Context, req *payrollpb.AddEmployeeRequest) (*payrollpb.AddEmployeeResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	companyAddr, err := parseAddress("company", req.GetCompany())
	if err != nil {
		return nil, err
	}
	employeeAddr, err := parseAddress("employee", req.GetEmployee())
	if err != nil {
		return nil, err
	}

	created, err := h.svc.AddEmployee(ctx, employee.AddEmployeeInput{
		Signer:     signerOf(ctx),
		Company:    companyAddr,
		Employee:   employeeAddr,
		HourlyRate: req.GetHourlyRate(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.AddEmployeeResponse{Account: toMessageAccount(created)}, nil
}

// GetEmployeeAccount は社員アカウントを取得します。
func (h *EmployeeGrpcHandler) GetEmployeeAccount(ctx context.Context, req *payrollpb.GetEmployeeAccountRequest) (*payrollpb.GetEmployeeAccountResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	addr, err := parseAddress("address", req.GetAddress())
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetEmployeeAccount(ctx, employee.GetEmployeeAccountInput{Address: addr})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.GetEmployeeAccountResponse{Account: toMessageAccount(found)}, nil
}

// ListEmployees は会社の社員アカウント一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *payrollpb.ListEmployeesRequest) (*payrollpb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	companyAddr, err := parseAddress("company", req.GetCompany())
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		Company:   companyAddr,
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	accounts := make([]*payrollpb.EmployeeAccount, 0, len(result.Employees))
	for _, a := range result.Employees {
		accounts = append(accounts, toMessageAccount(a))
	}

	return &payrollpb.ListEmployeesResponse{
		Employees:     accounts,
		NextPageToken: result.NextPageToken,
	}, nil
}

// GetAvailableBalance は社員本人の引き出し可能額を返します。
func (h *EmployeeGrpcHandler) GetAvailableBalance(ctx context.Context, req *payrollpb.GetAvailableBalanceRequest) (*payrollpb.GetAvailableBalanceResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	account, err := parseAddress("account", req.GetAccount())
	if err != nil {
		return nil, err
	}

	available, err := h.svc.AvailableBalance(ctx, employee.AvailableBalanceInput{
		Signer:  signerOf(ctx),
		Account: account,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.GetAvailableBalanceResponse{Available: available}, nil
}

func toMessageAccount(a *employee.Account) *payrollpb.EmployeeAccount {
	if a == nil {
		return nil
	}

	return &payrollpb.EmployeeAccount{
		Address:          a.Address.String(),
		Company:          a.Company.String(),
		Employee:         a.Employee.String(),
		HourlyRate:       a.HourlyRate,
		IsClockedIn:      a.IsClockedIn,
		TotalEarned:      a.TotalEarned,
		TotalWithdrawn:   a.TotalWithdrawn,
		TotalHoursWorked: a.TotalHoursWorked,
		Hours:            formatCentihours(a.TotalHoursWorked),
		LastClockIn:      unixTimestamp(a.LastClockIn),
		ActiveSessionId:  a.ActiveSessionID,
		SessionCount:     a.SessionCount,
		CreatedAt:        unixTimestamp(a.CreatedAt),
	}
}

// formatCentihours は 1/100 時間単位の値を "12.34" 形式で表します。
func formatCentihours(centihours uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(centihours), -2).StringFixed(2)
}
