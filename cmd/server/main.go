package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/signing"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
	"github.com/ogurasousui/codex-payroll-ledger/internal/platform/config"
	pg "github.com/ogurasousui/codex-payroll-ledger/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-payroll-ledger/internal/platform/server"
	"github.com/ogurasousui/codex-payroll-ledger/internal/platform/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// backend は選択されたストレージの実装をまとめたものです。faucet は memory ストアでのみ設定されます。
type backend struct {
	companies company.Repository
	employees employee.Repository
	sessions  worksession.Repository
	holdings  ledger.Holdings
	faucet    ledger.Faucet
	tx        ledger.TransactionManager
	events    ledger.EventRecorder
	close     func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	var programID ledger.Address
	if cfg.Ledger.ProgramID != "" {
		programID, err = ledger.ParseAddress(cfg.Ledger.ProgramID)
		if err != nil {
			log.Fatalf("invalid ledger.program_id: %v", err)
		}
	}
	deriver := ledger.NewDeriver(programID)

	store, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer store.close()

	var escrowOpts []escrow.Option
	if cfg.Ledger.AllowFunding {
		if store.faucet == nil {
			log.Fatalf("holdings funding is not supported by storage %q", cfg.Storage.Driver)
		}
		log.Printf("holdings funding is enabled")
		escrowOpts = append(escrowOpts, escrow.WithFaucet(store.faucet))
	}

	var replayGuard signing.ReplayGuard
	if cfg.Replay.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Replay.Addr,
			Password: cfg.Replay.Password,
			DB:       cfg.Replay.DB,
		})
		defer func() { _ = client.Close() }()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to replay store: %v", err)
		}
		replayGuard = signing.NewRedisReplayGuard(client, cfg.Replay.TTL)
	} else {
		log.Printf("replay guard is disabled: signed requests can be replayed within %s of signing", cfg.Replay.MaxSkew)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	clock := ledger.SystemClock()
	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Companies:    company.NewService(store.companies, deriver, clock, store.tx, store.events),
		Employees:    employee.NewService(store.employees, store.companies, deriver, clock, store.tx, store.events),
		WorkSessions: worksession.NewService(store.sessions, store.employees, deriver, clock, store.tx, store.events),
		Escrow:       escrow.NewService(store.companies, store.employees, store.holdings, deriver, clock, store.tx, store.events, escrowOpts...),
	}, server.Options{
		Reflection:   cfg.Server.Reflection,
		ReplayGuard:  replayGuard,
		MaxClockSkew: cfg.Replay.MaxSkew,
		Registry:     registry,
		MetricsAddr:  cfg.Server.MetricsAddr,
	})

	log.Printf("gRPC server listening on %s (storage=%s, program=%s)", cfg.Server.ListenAddr, cfg.Storage.Driver, deriver.ProgramID())

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		return &backend{
			companies: store.Companies(),
			employees: store.Employees(),
			sessions:  store.WorkSessions(),
			holdings:  store.Holdings(),
			faucet:    store.Holdings(),
			tx:        store,
			events:    store.Events(),
			close:     func() {},
		}, nil
	case config.StoragePostgres:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &backend{
			companies: postgres.NewCompanyRepository(pool),
			employees: postgres.NewEmployeeRepository(pool),
			sessions:  postgres.NewWorkSessionRepository(pool),
			holdings:  postgres.NewHoldingsRepository(pool),
			tx:        pg.NewTransactionManager(pool),
			events:    postgres.NewEventRepository(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
