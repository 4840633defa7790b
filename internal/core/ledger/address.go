package ledger

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLength はアドレスのバイト長です。
const AddressLength = 32

// Address は署名者の公開鍵、またはプログラム派生アドレスを表します。
type Address [AddressLength]byte

// ParseAddress は base58 文字列から Address を復元します。
func ParseAddress(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("empty address: %w", ErrInvalidAddress)
	}
	b, err := base58.Decode(raw)
	if err != nil {
		return Address{}, fmt.Errorf("decode %q: %w", raw, ErrInvalidAddress)
	}
	return AddressFromBytes(b)
}

// MustParseAddress は ParseAddress と同じですが、失敗時に panic します。
func MustParseAddress(raw string) Address {
	addr, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return addr
}

// AddressFromBytes は 32 バイトのスライスから Address を生成します。
func AddressFromBytes(b []byte) (Address, error) {
	var addr Address
	if len(b) != AddressLength {
		return addr, fmt.Errorf("got %d bytes: %w", len(b), ErrInvalidAddress)
	}
	copy(addr[:], b)
	return addr, nil
}

// String は base58 表現を返します。
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes はアドレスのコピーを返します。
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// IsZero はアドレスが未設定かどうかを返します。
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText は encoding.TextMarshaler を実装します。
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText は encoding.TextUnmarshaler を実装します。
func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
