package handler

import (
	"context"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
)

// WorkSessionGrpcHandler は WorkSessionService の gRPC 実装です。
type WorkSessionGrpcHandler struct {
	svc worksession.UseCase
	payrollpb.UnimplementedWorkSessionServiceServer
}

// NewWorkSessionGrpcHandler は WorkSessionGrpcHandler を生成します。
func NewWorkSessionGrpcHandler(svc worksession.UseCase) *WorkSessionGrpcHandler {
	return &WorkSessionGrpcHandler{svc: svc}
}

// ClockIn は勤務セッションを開始します。
func (h *WorkSessionGrpcHandler) ClockIn(ctx context.Context, req *payrollpb.ClockInRequest) (*payrollpb.ClockInResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	account, err := parseAddress("employee_account", req.GetEmployeeAccount())
	if err != nil {
		return nil, err
	}

	session, err := h.svc.ClockIn(ctx, worksession.ClockInInput{
		Signer:          signerOf(ctx),
		EmployeeAccount: account,
		SessionID:       req.GetSessionId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.ClockInResponse{Session: toMessageSession(session)}, nil
}

// ClockOut は勤務セッションを確定し、稼ぎを加算します。
func (h *WorkSessionGrpcHandler) ClockOut(ctx context.Context, req *payrollpb.ClockOutRequest) (*payrollpb.ClockOutResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	account, err := parseAddress("employee_account", req.GetEmployeeAccount())
	if err != nil {
		return nil, err
	}

	session, err := h.svc.ClockOut(ctx, worksession.ClockOutInput{
		Signer:          signerOf(ctx),
		EmployeeAccount: account,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.ClockOutResponse{Session: toMessageSession(session)}, nil
}

// GetWorkSession は勤務セッションを取得します。
func (h *WorkSessionGrpcHandler) GetWorkSession(ctx context.Context, req *payrollpb.GetWorkSessionRequest) (*payrollpb.GetWorkSessionResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	account, err := parseAddress("employee_account", req.GetEmployeeAccount())
	if err != nil {
		return nil, err
	}

	session, err := h.svc.GetWorkSession(ctx, worksession.GetWorkSessionInput{
		EmployeeAccount: account,
		SessionID:       req.GetSessionId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.GetWorkSessionResponse{Session: toMessageSession(session)}, nil
}

func toMessageSession(s *worksession.WorkSession) *payrollpb.WorkSession {
	if s == nil {
		return nil
	}

	return &payrollpb.WorkSession{
		Address:         s.Address.String(),
		EmployeeAccount: s.EmployeeAccount.String(),
		Employee:        s.Employee.String(),
		SessionId:       s.SessionID,
		ClockInTime:     unixTimestamp(s.ClockInTime),
		ClockOutTime:    unixTimestamp(s.ClockOutTime),
		HoursWorked:     s.HoursWorked,
		Hours:           formatCentihours(s.HoursWorked),
		AmountEarned:    s.AmountEarned,
	}
}
