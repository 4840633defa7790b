package handler

import (
	"context"
	"testing"

	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/signing"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func address(b byte) ledger.Address {
	var a ledger.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func signedBy(b byte) context.Context {
	return signing.WithSigner(context.Background(), address(b))
}

func assertStatus(t *testing.T, err error, code codes.Code, reason string) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
	if reason != "" && ReasonOf(err) != reason {
		t.Fatalf("expected reason %s, got %q", reason, ReasonOf(err))
	}
}
