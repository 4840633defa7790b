package escrow

import "errors"

var (
	// ErrInsufficientEarnings は引き出し額が未引き出しの稼ぎを超える場合に返却されます。
	ErrInsufficientEarnings = errors.New("escrow: insufficient earnings")
	// ErrInvalidWithdrawAmount は引き出し額が 0 の場合に返却されます。
	ErrInvalidWithdrawAmount = errors.New("escrow: withdraw amount must be positive")
	// ErrInvalidFundingAmount は残高発行額が 0 の場合に返却されます。
	ErrInvalidFundingAmount = errors.New("escrow: funding amount must be positive")
	// ErrFundingDisabled は残高発行が無効な構成で FundHoldings が呼ばれた場合に返却されます。
	ErrFundingDisabled = errors.New("escrow: holdings funding is disabled")
)
