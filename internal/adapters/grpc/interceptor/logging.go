package interceptor

import (
	"context"
	"log"
	"time"

	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/signing"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logging は RPC ごとに 1 行のログを出力します。
// 署名者は signing の検証後に分かるため、署名インターセプタより内側に置きます。
func Logging(logger *log.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = log.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		signer := "-"
		if addr, ok := signing.SignerFromContext(ctx); ok {
			signer = addr.String()
		}
		code := status.Code(err)
		if code == codes.OK {
			logger.Printf("grpc %s signer=%s code=%s duration=%s", info.FullMethod, signer, code, time.Since(start))
		} else {
			logger.Printf("grpc %s signer=%s code=%s duration=%s error=%q", info.FullMethod, signer, code, time.Since(start), status.Convert(err).Message())
		}
		return resp, err
	}
}
