package ledger

import (
	"fmt"
	"math"
	"math/bits"
)

// CheckedAdd は桁あふれを検出する加算です。
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrArithmeticOverflow)
	}
	return sum, nil
}

// CheckedAdd32 は uint32 カウンタ用の桁あふれを検出する加算です。
func CheckedAdd32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrArithmeticOverflow)
	}
	return a + b, nil
}

// CheckedSub は負になる減算を ErrArithmeticOverflow として扱います。
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrArithmeticOverflow)
	}
	return diff, nil
}

// MulDiv は a*b/d を 128 ビットの中間値で計算し、商を切り捨てで返します。
// 商が uint64 に収まらない場合は ErrArithmeticOverflow を返します。
func MulDiv(a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, fmt.Errorf("division by zero: %w", ErrArithmeticOverflow)
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, fmt.Errorf("%d * %d / %d: %w", a, b, d, ErrArithmeticOverflow)
	}
	quo, _ := bits.Div64(hi, lo, d)
	return quo, nil
}
