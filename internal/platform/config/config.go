package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// StorageMemory はプロセス内メモリに台帳を保持します。
	StorageMemory = "memory"
	// StoragePostgres は PostgreSQL に台帳を保持します。
	StoragePostgres = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Replay    ReplayConfig    `yaml:"replay"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr" env:"PAYROLL_SERVER_LISTEN_ADDR"`
	MetricsAddr string `yaml:"metrics_addr" env:"PAYROLL_SERVER_METRICS_ADDR"`
	Reflection  bool   `yaml:"reflection" env:"PAYROLL_SERVER_REFLECTION"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host" env:"PAYROLL_DATABASE_HOST"`
	Port               int           `yaml:"port" env:"PAYROLL_DATABASE_PORT"`
	User               string        `yaml:"user" env:"PAYROLL_DATABASE_USER"`
	Password           string        `yaml:"password" env:"PAYROLL_DATABASE_PASSWORD"`
	Name               string        `yaml:"name" env:"PAYROLL_DATABASE_NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"PAYROLL_DATABASE_SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns" env:"PAYROLL_DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns       int           `yaml:"max_idle_conns" env:"PAYROLL_DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime" env:"PAYROLL_DATABASE_CONN_MAX_LIFETIME"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time" env:"PAYROLL_DATABASE_CONN_MAX_IDLE_TIME"`
}

// StorageConfig は台帳の保存先を選択します。
type StorageConfig struct {
	Driver string `yaml:"driver" env:"PAYROLL_STORAGE_DRIVER"`
}

// LedgerConfig は台帳のアドレス導出と開発用機能に関する設定です。
type LedgerConfig struct {
	// ProgramID は base58 表記のプログラム ID です。空の場合は既定値を使います。
	ProgramID string `yaml:"program_id" env:"PAYROLL_LEDGER_PROGRAM_ID"`
	// AllowFunding は FundHoldings を有効にします。memory ストアでのみ指定できます。
	AllowFunding bool `yaml:"allow_funding" env:"PAYROLL_LEDGER_ALLOW_FUNDING"`
}

// ReplayConfig は署名付きリクエストの鮮度確認と再送検知 (Redis) に関する設定です。
// 署名時刻の確認は常に行われ、Enabled のときは request id も TTL の間記録します。
type ReplayConfig struct {
	Enabled    bool          `yaml:"enabled" env:"PAYROLL_REPLAY_ENABLED"`
	Addr       string        `yaml:"addr" env:"PAYROLL_REPLAY_ADDR"`
	Password   string        `yaml:"password" env:"PAYROLL_REPLAY_PASSWORD"`
	DB         int           `yaml:"db" env:"PAYROLL_REPLAY_DB"`
	TTL        time.Duration `yaml:"-"`
	TTLRaw     string        `yaml:"ttl" env:"PAYROLL_REPLAY_TTL"`
	MaxSkew    time.Duration `yaml:"-"`
	MaxSkewRaw string        `yaml:"max_skew" env:"PAYROLL_REPLAY_MAX_SKEW"`
}

// TelemetryConfig は OpenTelemetry のトレース送信に関する設定です。
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" env:"PAYROLL_TELEMETRY_ENABLED"`
	Endpoint    string  `yaml:"endpoint" env:"PAYROLL_TELEMETRY_ENDPOINT"`
	Insecure    bool    `yaml:"insecure" env:"PAYROLL_TELEMETRY_INSECURE"`
	ServiceName string  `yaml:"service_name" env:"PAYROLL_TELEMETRY_SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" env:"PAYROLL_TELEMETRY_SAMPLE_RATIO"`
}

// Load は指定されたパスから設定ファイルを読み込み、PAYROLL_* 環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	switch c.Storage.Driver {
	case "":
		c.Storage.Driver = StorageMemory
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("config: storage.driver must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage.Driver)
	}

	if c.Storage.Driver == StoragePostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	if c.Ledger.AllowFunding && c.Storage.Driver != StorageMemory {
		return fmt.Errorf("config: ledger.allow_funding requires storage.driver %q, got %q", StorageMemory, c.Storage.Driver)
	}

	if err := c.Replay.validateAndNormalize(); err != nil {
		return err
	}

	c.Telemetry.normalize()
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (r *ReplayConfig) validateAndNormalize() error {
	skew, err := parseDurationAllowEmpty(r.MaxSkewRaw)
	if err != nil {
		return fmt.Errorf("config: replay.max_skew: %w", err)
	}
	if skew < 0 {
		return fmt.Errorf("config: replay.max_skew must not be negative")
	}
	if skew == 0 {
		skew = 5 * time.Minute
	}
	r.MaxSkew = skew

	if !r.Enabled {
		return nil
	}
	if r.Addr == "" {
		return fmt.Errorf("config: replay.addr must be set when replay.enabled is true")
	}

	ttl, err := parseDurationAllowEmpty(r.TTLRaw)
	if err != nil {
		return fmt.Errorf("config: replay.ttl: %w", err)
	}
	if ttl == 0 {
		ttl = 2 * r.MaxSkew
	}
	// 記録が消えた request id は、署名時刻が許容範囲内である限り再送できてしまう
	if ttl < 2*r.MaxSkew {
		return fmt.Errorf("config: replay.ttl (%s) must be at least twice replay.max_skew (%s)", ttl, r.MaxSkew)
	}
	r.TTL = ttl
	return nil
}

func (t *TelemetryConfig) normalize() {
	if t.ServiceName == "" {
		t.ServiceName = "payroll-ledger"
	}
	if t.SampleRatio <= 0 || t.SampleRatio > 1 {
		t.SampleRatio = 1
	}
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
