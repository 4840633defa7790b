package signing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ErrorInfo.Reason の値です。
const (
	ReasonInvalidSignature  = "INVALID_SIGNATURE"
	ReasonRequestExpired    = "REQUEST_EXPIRED"
	ReasonRequestReplayed   = "REQUEST_REPLAYED"
	ReasonReplayUnavailable = "REPLAY_GUARD_UNAVAILABLE"
)

const errorDomain = "payroll.v1"

// UnaryServerInterceptor は署名を検証し、署名者を ctx に格納します。
// 署名メタデータのないリクエストはそのまま通し、権限の判定はユースケースに任せます。
// 署名時刻が maxSkew (0 なら DefaultMaxSkew) を超えてずれたリクエストは拒否します。
// guard が nil の場合、request id の再送検知は行われず、許容範囲内の再送を防げません。
func UnaryServerInterceptor(guard ReplayGuard, maxSkew time.Duration) grpc.UnaryServerInterceptor {
	return unaryServerInterceptor(guard, maxSkew, time.Now)
}

func unaryServerInterceptor(guard ReplayGuard, maxSkew time.Duration, now func() time.Time) grpc.UnaryServerInterceptor {
	if maxSkew <= 0 {
		maxSkew = DefaultMaxSkew
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		rawSigner := firstValue(md, MetadataSigner)
		if rawSigner == "" {
			return handler(ctx, req)
		}

		signer, err := ledger.ParseAddress(rawSigner)
		if err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonInvalidSignature, err.Error())
		}
		requestID := firstValue(md, MetadataRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonInvalidSignature, "request id must be a uuid")
		}
		issuedAt, err := ParseTimestamp(firstValue(md, MetadataTimestamp))
		if err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonInvalidSignature, err.Error())
		}
		signature, err := DecodeSignature(firstValue(md, MetadataSignature))
		if err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonInvalidSignature, err.Error())
		}
		body, err := MarshalBody(req)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if err := Verify(signer, info.FullMethod, requestID, issuedAt, body, signature); err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonInvalidSignature, err.Error())
		}
		if err := CheckFreshness(issuedAt, now(), maxSkew); err != nil {
			return nil, rejected(codes.Unauthenticated, ReasonRequestExpired, err.Error())
		}

		if guard != nil {
			claimed, err := guard.Claim(ctx, requestID)
			if err != nil {
				return nil, rejected(codes.Unavailable, ReasonReplayUnavailable, err.Error())
			}
			if !claimed {
				return nil, rejected(codes.AlreadyExists, ReasonRequestReplayed, "request "+requestID+" was already processed")
			}
		}

		return handler(WithSigner(ctx, signer), req)
	}
}

// UnaryClientInterceptor は送信するリクエストに signer で署名します。
func UnaryClientInterceptor(signer *Signer) grpc.UnaryClientInterceptor {
	return unaryClientInterceptor(signer, time.Now)
}

func unaryClientInterceptor(signer *Signer, now func() time.Time) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		body, err := MarshalBody(req)
		if err != nil {
			return err
		}
		requestID := uuid.NewString()
		issuedAt := now().Unix()
		signature := signer.Sign(method, requestID, issuedAt, body)
		ctx = metadata.AppendToOutgoingContext(ctx,
			MetadataSigner, signer.Address().String(),
			MetadataRequestID, requestID,
			MetadataTimestamp, FormatTimestamp(issuedAt),
			MetadataSignature, EncodeSignature(signature),
		)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func firstValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func rejected(code codes.Code, reason, message string) error {
	st := status.New(code, message)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: errorDomain})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
