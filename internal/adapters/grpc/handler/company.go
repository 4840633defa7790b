package handler

import (
	"context"
	"fmt"
	"time"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/signing"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CompanyGrpcHandler は CompanyService の gRPC 実装です。
type CompanyGrpcHandler struct {
	svc company.UseCase
	payrollpb.UnimplementedCompanyServiceServer
}

// NewCompanyGrpcHandler は CompanyGrpcHandler を生成します。
func NewCompanyGrpcHandler(svc company.UseCase) *CompanyGrpcHandler {
	return &CompanyGrpcHandler{svc: svc}
}

// InitializeCompany は署名者をオーナーとする会社を登録します。
func (h *CompanyGrpcHandler) InitializeCompany(ctx context.Context, req *payrollpb.InitializeCompanyRequest) (*payrollpb.InitializeCompanyResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	created, err := h.svc.InitializeCompany(ctx, company.InitializeCompanyInput{
		Signer: signerOf(ctx),
		Name:   req.GetName(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.InitializeCompanyResponse{Company: toMessageCompany(created)}, nil
}

// GetCompany は会社を取得します。
func (h *CompanyGrpcHandler) GetCompany(ctx context.Context, req *payrollpb.GetCompanyRequest) (*payrollpb.GetCompanyResponse, error) {
	if req == nil {
		return nil, invalidArgument("request is required")
	}

	addr, err := parseAddress("address", req.GetAddress())
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetCompany(ctx, company.GetCompanyInput{Address: addr})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.GetCompanyResponse{Company: toMessageCompany(found)}, nil
}

func toMessageCompany(c *company.Company) *payrollpb.Company {
	if c == nil {
		return nil
	}

	return &payrollpb.Company{
		Address:        c.Address.String(),
		Owner:          c.Owner.String(),
		Name:           c.Name,
		EmployeeCount:  c.EmployeeCount,
		TotalDeposited: c.TotalDeposited,
		CreatedAt:      unixTimestamp(c.CreatedAt),
	}
}

// signerOf は検証済みの署名者を返します。署名なしのリクエストではゼロ値となり、ユースケース側で拒否されます。
func signerOf(ctx context.Context) ledger.Address {
	signer, _ := signing.SignerFromContext(ctx)
	return signer
}

// unixTimestamp は台帳時刻 (UNIX 秒) を Timestamp に変換します。0 は未設定として nil になります。
func unixTimestamp(sec int64) *timestamppb.Timestamp {
	if sec == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(sec, 0))
}

func parseAddress(field, raw string) (ledger.Address, error) {
	addr, err := ledger.ParseAddress(raw)
	if err != nil {
		return ledger.Address{}, toStatusError(fmt.Errorf("%s: %w", field, err))
	}
	return addr, nil
}
