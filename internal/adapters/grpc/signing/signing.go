// Package signing は gRPC リクエストの ed25519 署名と、署名者の受け渡しを扱います。
//
// クライアントは method, request id, 署名時刻 (UNIX 秒), リクエスト本文 (決定的な protobuf 表現) を
// 改行で連結したものに署名し、署名者の公開鍵と署名を base58 でメタデータに載せて送ります。
// サーバーは署名時刻が許容範囲外のリクエストを拒否するため、再送検知は許容範囲の 2 倍の期間だけ
// request id を覚えていれば十分です。
package signing

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mr-tron/base58"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"google.golang.org/protobuf/proto"
)

// メタデータのキーです。
const (
	MetadataSigner    = "x-payroll-signer"
	MetadataRequestID = "x-payroll-request-id"
	MetadataTimestamp = "x-payroll-timestamp"
	MetadataSignature = "x-payroll-signature"
)

// DefaultMaxSkew は署名時刻と受信時刻の差の既定の許容値です。
const DefaultMaxSkew = 5 * time.Minute

var (
	// ErrInvalidSignature は署名が検証できない場合に返却されます。
	ErrInvalidSignature = errors.New("signing: invalid signature")
	// ErrMalformedMetadata は署名関連のメタデータが欠けている、または形式が不正な場合に返却されます。
	ErrMalformedMetadata = errors.New("signing: malformed signing metadata")
	// ErrStaleRequest は署名時刻が許容範囲から外れている場合に返却されます。
	ErrStaleRequest = errors.New("signing: request timestamp outside allowed skew")
)

// Payload は署名対象のバイト列を組み立てます。
func Payload(method, requestID string, issuedAt int64, body []byte) []byte {
	payload := make([]byte, 0, len(method)+len(requestID)+len(body)+24)
	payload = append(payload, method...)
	payload = append(payload, '\n')
	payload = append(payload, requestID...)
	payload = append(payload, '\n')
	payload = strconv.AppendInt(payload, issuedAt, 10)
	payload = append(payload, '\n')
	payload = append(payload, body...)
	return payload
}

// MarshalBody はリクエストを署名対象の決定的な protobuf バイト列に変換します。
func MarshalBody(req any) ([]byte, error) {
	msg, ok := req.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("signing: %T is not a protobuf message", req)
	}
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("signing: marshal %T: %w", req, err)
	}
	return b, nil
}

// FormatTimestamp は署名時刻をメタデータ用の文字列にします。
func FormatTimestamp(issuedAt int64) string {
	return strconv.FormatInt(issuedAt, 10)
}

// ParseTimestamp はメタデータの署名時刻を読み取ります。
func ParseTimestamp(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty timestamp: %w", ErrMalformedMetadata)
	}
	issuedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp: %w", ErrMalformedMetadata)
	}
	return issuedAt, nil
}

// CheckFreshness は署名時刻が now から maxSkew 以内にあるかを確認します。
func CheckFreshness(issuedAt int64, now time.Time, maxSkew time.Duration) error {
	skew := now.Sub(time.Unix(issuedAt, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > maxSkew {
		return fmt.Errorf("issued %s away from server time: %w", skew.Truncate(time.Second), ErrStaleRequest)
	}
	return nil
}

// Signer はクライアント側の署名鍵です。
type Signer struct {
	key ed25519.PrivateKey
}

// NewSigner は ed25519 の秘密鍵から Signer を生成します。
func NewSigner(key ed25519.PrivateKey) (*Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("signing: private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}
	return &Signer{key: key}, nil
}

// NewSignerFromSeed は 32 バイトのシードから Signer を生成します。
func NewSignerFromSeed(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Address は署名者の公開鍵をアドレスとして返します。
func (s *Signer) Address() ledger.Address {
	var addr ledger.Address
	copy(addr[:], s.key.Public().(ed25519.PublicKey))
	return addr
}

// Sign は Payload に署名します。
func (s *Signer) Sign(method, requestID string, issuedAt int64, body []byte) []byte {
	return ed25519.Sign(s.key, Payload(method, requestID, issuedAt, body))
}

// Verify は signer の公開鍵で署名を検証します。
func Verify(signer ledger.Address, method, requestID string, issuedAt int64, body, signature []byte) error {
	if signer.IsZero() {
		return fmt.Errorf("empty signer: %w", ErrMalformedMetadata)
	}
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("signature is %d bytes: %w", len(signature), ErrInvalidSignature)
	}
	if !ed25519.Verify(ed25519.PublicKey(signer[:]), Payload(method, requestID, issuedAt, body), signature) {
		return ErrInvalidSignature
	}
	return nil
}

// EncodeSignature は署名を base58 で表現します。
func EncodeSignature(signature []byte) string {
	return base58.Encode(signature)
}

// DecodeSignature は base58 の署名を復元します。
func DecodeSignature(raw string) ([]byte, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty signature: %w", ErrMalformedMetadata)
	}
	b, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode signature: %w", ErrMalformedMetadata)
	}
	return b, nil
}

type signerKey struct{}

// WithSigner は検証済みの署名者を ctx に格納します。
func WithSigner(ctx context.Context, signer ledger.Address) context.Context {
	return context.WithValue(ctx, signerKey{}, signer)
}

// SignerFromContext は検証済みの署名者を返します。署名なしのリクエストではゼロ値と false を返します。
func SignerFromContext(ctx context.Context) (ledger.Address, bool) {
	signer, ok := ctx.Value(signerKey{}).(ledger.Address)
	return signer, ok
}
