package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized は署名者が操作に必要な権限を持たない場合に返却されます。
	ErrUnauthorized = errors.New("ledger: unauthorized")
	// ErrArithmeticOverflow は金額やカウンタの計算が桁あふれした場合に返却されます。
	ErrArithmeticOverflow = errors.New("ledger: arithmetic overflow")
	// ErrInsufficientFunds は送金元の残高が不足している場合に返却されます。
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	// ErrAccountInUse は導出したアドレスに既にアカウントが存在する場合に返却されます。
	ErrAccountInUse = errors.New("ledger: account already in use")
	// ErrAccountNotFound はアカウントが存在しない場合に返却されます。
	ErrAccountNotFound = errors.New("ledger: account not found")
	// ErrInvalidAddress はアドレスの形式が不正な場合に返却されます。
	ErrInvalidAddress = errors.New("ledger: invalid address")
	// ErrConsistencyFault は実行環境の異常によって状態の整合性が保てない場合に返却されます。
	ErrConsistencyFault = errors.New("ledger: consistency fault")
)

// ConsistencyFault は呼び出し元の誤りではなく、時計の逆行などの環境異常を表します。
type ConsistencyFault struct {
	Reason string
}

// NewConsistencyFault は ConsistencyFault を生成します。
func NewConsistencyFault(format string, args ...any) *ConsistencyFault {
	return &ConsistencyFault{Reason: fmt.Sprintf(format, args...)}
}

func (f *ConsistencyFault) Error() string {
	return "ledger: consistency fault: " + f.Reason
}

// Is は errors.Is(err, ErrConsistencyFault) を成立させます。
func (f *ConsistencyFault) Is(target error) bool {
	return target == ErrConsistencyFault
}

// IsConsistencyFault は err が環境異常に由来するかどうかを返します。
func IsConsistencyFault(err error) bool {
	var fault *ConsistencyFault
	return errors.As(err, &fault)
}
