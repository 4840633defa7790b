package worksession

import "github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"

const (
	secondsPerHour = 3600
	// CentihoursPerHour は HoursWorked の固定小数点スケール (小数 2 桁) です。
	CentihoursPerHour = 100
)

// Earnings は退勤時に確定する勤務時間と賃金です。
type Earnings struct {
	ElapsedSeconds uint64
	HoursWorked    uint64
	AmountEarned   uint64
}

// ComputeEarnings は経過時間を 1/100 時間単位に切り捨て、時給を掛けて賃金を求めます。
// 乗算は 128 ビットの中間値で行い、結果が uint64 に収まらなければ ErrArithmeticOverflow を返します。
// clockOut が clockIn より前なら ConsistencyFault を返します。
func ComputeEarnings(clockIn, clockOut int64, hourlyRate uint64) (Earnings, error) {
	if clockOut < clockIn {
		return Earnings{}, ledger.NewConsistencyFault("clock out at %d precedes clock in at %d", clockOut, clockIn)
	}
	elapsed := uint64(clockOut) - uint64(clockIn)

	hours, err := ledger.MulDiv(elapsed, CentihoursPerHour, secondsPerHour)
	if err != nil {
		return Earnings{}, err
	}

	amount, err := ledger.MulDiv(hours, hourlyRate, CentihoursPerHour)
	if err != nil {
		return Earnings{}, err
	}

	return Earnings{ElapsedSeconds: elapsed, HoursWorked: hours, AmountEarned: amount}, nil
}
