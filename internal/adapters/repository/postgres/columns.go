package postgres

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// uint64 の列は NUMERIC(20,0) に保存し、書き込みは 10 進文字列、読み出しは ::text で受け取ります。
func encodeU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func decodeU64(column, raw string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("postgres: decode %s %q: %w", column, raw, err)
	}
	return v, nil
}

func decodeAddress(column string, raw []byte) (ledger.Address, error) {
	addr, err := ledger.AddressFromBytes(raw)
	if err != nil {
		return ledger.Address{}, fmt.Errorf("postgres: decode %s: %w", column, err)
	}
	return addr, nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
