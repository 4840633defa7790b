package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ogurasousui/codex-payroll-ledger/internal/platform/config"
)

// applicationName は pg_stat_activity に表示される接続名です。
const applicationName = "payroll-ledger"

// ledgerRuntimeParams は全接続に設定するセッション変数です。
// 台帳の時刻は UNIX 秒で保持するため、timezone は表示用に UTC へ固定します。
// 明示的なトランザクションの外で実行される文も、書き込みトランザクションと同じ SERIALIZABLE で扱います。
var ledgerRuntimeParams = map[string]string{
	"application_name":              applicationName,
	"default_transaction_isolation": "serializable",
	"timezone":                      "UTC",
}

// BuildPoolConfig は database 設定から台帳用の pgxpool.Config を構築します。
func BuildPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	for key, value := range ledgerRuntimeParams {
		poolCfg.ConnConfig.RuntimeParams[key] = value
	}

	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = min(int32(cfg.MaxIdleConns), poolCfg.MaxConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.ConnMaxIdleTime
	}

	return poolCfg, nil
}

// NewPool は台帳用の pgxpool.Pool を生成し、疎通と分離レベルを確認します。
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := BuildPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}

	var isolation string
	if err := pool.QueryRow(ctx, "SHOW default_transaction_isolation").Scan(&isolation); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping %s/%s: %w", cfg.Host, cfg.Name, err)
	}
	if isolation != "serializable" {
		pool.Close()
		return nil, fmt.Errorf("postgres: default_transaction_isolation is %q, want serializable", isolation)
	}

	return pool, nil
}
