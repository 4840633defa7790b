package signing

import (
	"context"
	"errors"
	"testing"
	"time"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

const testIssuedAt int64 = 1_700_000_000

func newTestSigner(t *testing.T, b byte) *Signer {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = b
	}
	signer, err := NewSignerFromSeed(seed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed returned error: %v", err)
	}
	return signer
}

func TestSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, 1)
	body, err := MarshalBody(&payrollpb.InitializeCompanyRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("MarshalBody returned error: %v", err)
	}
	sig := signer.Sign("/payroll.v1.CompanyService/InitializeCompany", "req-1", testIssuedAt, body)

	if err := Verify(signer.Address(), "/payroll.v1.CompanyService/InitializeCompany", "req-1", testIssuedAt, body, sig); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, 1)
	other := newTestSigner(t, 2)
	const method = "/payroll.v1.EscrowService/WithdrawWages"
	body, err := MarshalBody(&payrollpb.WithdrawWagesRequest{Amount: 10})
	if err != nil {
		t.Fatalf("MarshalBody returned error: %v", err)
	}
	tampered, err := MarshalBody(&payrollpb.WithdrawWagesRequest{Amount: 11})
	if err != nil {
		t.Fatalf("MarshalBody returned error: %v", err)
	}
	sig := signer.Sign(method, "req-1", testIssuedAt, body)

	tests := []struct {
		name      string
		signer    ledger.Address
		method    string
		requestID string
		issuedAt  int64
		body      []byte
		sig       []byte
		want      error
	}{
		{name: "tampered body", signer: signer.Address(), method: method, requestID: "req-1", issuedAt: testIssuedAt, body: tampered, sig: sig, want: ErrInvalidSignature},
		{name: "other method", signer: signer.Address(), method: "/payroll.v1.EscrowService/DepositPayroll", requestID: "req-1", issuedAt: testIssuedAt, body: body, sig: sig, want: ErrInvalidSignature},
		{name: "other request id", signer: signer.Address(), method: method, requestID: "req-2", issuedAt: testIssuedAt, body: body, sig: sig, want: ErrInvalidSignature},
		{name: "restamped", signer: signer.Address(), method: method, requestID: "req-1", issuedAt: testIssuedAt + 60, body: body, sig: sig, want: ErrInvalidSignature},
		{name: "other signer", signer: other.Address(), method: method, requestID: "req-1", issuedAt: testIssuedAt, body: body, sig: sig, want: ErrInvalidSignature},
		{name: "short signature", signer: signer.Address(), method: method, requestID: "req-1", issuedAt: testIssuedAt, body: body, sig: sig[:10], want: ErrInvalidSignature},
		{name: "zero signer", method: method, requestID: "req-1", issuedAt: testIssuedAt, body: body, sig: sig, want: ErrMalformedMetadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Verify(tt.signer, tt.method, tt.requestID, tt.issuedAt, tt.body, tt.sig)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSignatureEncoding(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, 3)
	sig := signer.Sign("m", "r", testIssuedAt, nil)

	decoded, err := DecodeSignature(EncodeSignature(sig))
	if err != nil {
		t.Fatalf("DecodeSignature returned error: %v", err)
	}
	if string(decoded) != string(sig) {
		t.Fatalf("signature changed after encoding")
	}

	if _, err := DecodeSignature(""); !errors.Is(err, ErrMalformedMetadata) {
		t.Fatalf("expected ErrMalformedMetadata, got %v", err)
	}
	if _, err := DecodeSignature("0OIl"); !errors.Is(err, ErrMalformedMetadata) {
		t.Fatalf("expected ErrMalformedMetadata for non-base58 input, got %v", err)
	}
}

func TestMarshalBody(t *testing.T) {
	t.Parallel()

	first, err := MarshalBody(&payrollpb.AddEmployeeRequest{Company: "c", Employee: "e", HourlyRate: 1_000})
	if err != nil {
		t.Fatalf("MarshalBody returned error: %v", err)
	}
	second, err := MarshalBody(&payrollpb.AddEmployeeRequest{HourlyRate: 1_000, Employee: "e", Company: "c"})
	if err != nil {
		t.Fatalf("MarshalBody returned error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected identical bytes for equal messages")
	}

	if _, err := MarshalBody("not a message"); err == nil {
		t.Fatalf("expected error for non-protobuf request")
	}
}

func TestCheckFreshness(t *testing.T) {
	t.Parallel()

	now := time.Unix(testIssuedAt, 0)
	tests := []struct {
		name     string
		issuedAt int64
		wantErr  bool
	}{
		{name: "same second", issuedAt: testIssuedAt},
		{name: "at past limit", issuedAt: testIssuedAt - 300},
		{name: "at future limit", issuedAt: testIssuedAt + 300},
		{name: "too old", issuedAt: testIssuedAt - 301, wantErr: true},
		{name: "too far ahead", issuedAt: testIssuedAt + 301, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckFreshness(tt.issuedAt, now, 5*time.Minute)
			if tt.wantErr != errors.Is(err, ErrStaleRequest) {
				t.Fatalf("unexpected result: %v", err)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	got, err := ParseTimestamp(FormatTimestamp(testIssuedAt))
	if err != nil || got != testIssuedAt {
		t.Fatalf("unexpected timestamp: %d, %v", got, err)
	}
	for _, raw := range []string{"", "yesterday"} {
		if _, err := ParseTimestamp(raw); !errors.Is(err, ErrMalformedMetadata) {
			t.Fatalf("expected ErrMalformedMetadata for %q, got %v", raw, err)
		}
	}
}

func TestNewSigner_InvalidKey(t *testing.T) {
	t.Parallel()

	if _, err := NewSigner(make([]byte, 10)); err == nil {
		t.Fatalf("expected error for short private key")
	}
	if _, err := NewSignerFromSeed(make([]byte, 10)); err == nil {
		t.Fatalf("expected error for short seed")
	}
}

func TestSignerFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := SignerFromContext(context.Background()); ok {
		t.Fatalf("expected no signer in empty context")
	}

	signer := newTestSigner(t, 4).Address()
	got, ok := SignerFromContext(WithSigner(context.Background(), signer))
	if !ok || got != signer {
		t.Fatalf("unexpected signer: %v %v", got, ok)
	}
}
