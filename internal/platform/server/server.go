package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	payrollpb "github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/codex-payroll-ledger/internal/adapters/grpc/signing"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/company"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/escrow"
	"github.com/ogurasousui/codex-payroll-ledger/internal/core/worksession"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const metricsShutdownTimeout = 5 * time.Second

// Services はサーバーに登録するユースケースです。
type Services struct {
	Companies    company.UseCase
	Employees    employee.UseCase
	WorkSessions worksession.UseCase
	Escrow       escrow.UseCase
}

// Options はサーバーの任意設定です。
type Options struct {
	// Reflection が true の場合は gRPC reflection を登録します。
	Reflection bool
	// ReplayGuard が nil の場合は request id の再送検知を行いません。
	ReplayGuard signing.ReplayGuard
	// MaxClockSkew は署名時刻の許容差です。0 の場合は signing.DefaultMaxSkew を使います。
	MaxClockSkew time.Duration
	// Registry が nil の場合はメトリクスを記録しません。
	Registry *prometheus.Registry
	// MetricsAddr が空でなく Registry が設定されている場合、/metrics を公開します。
	MetricsAddr string
	Logger      *log.Logger
}

// Server は gRPC サーバーと、メトリクス用 HTTP サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr    string
	grpcServer    *grpc.Server
	health        *health.Server
	metricsServer *http.Server
	logger        *log.Logger
}

// New は給与台帳の 4 サービスを登録した gRPC サーバーを構築します。
func New(listenAddr string, svcs Services, opts Options, grpcOpts ...grpc.ServerOption) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var chain []grpc.UnaryServerInterceptor
	if opts.Registry != nil {
		chain = append(chain, interceptor.NewMetrics(opts.Registry).UnaryServerInterceptor())
	}
	chain = append(chain,
		signing.UnaryServerInterceptor(opts.ReplayGuard, opts.MaxClockSkew),
		interceptor.Logging(logger),
	)

	serverOpts := append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(chain...),
	}, grpcOpts...)
	srv := grpc.NewServer(serverOpts...)

	payrollpb.RegisterCompanyServiceServer(srv, handler.NewCompanyGrpcHandler(svcs.Companies))
	payrollpb.RegisterEmployeeServiceServer(srv, handler.NewEmployeeGrpcHandler(svcs.Employees))
	payrollpb.RegisterWorkSessionServiceServer(srv, handler.NewWorkSessionGrpcHandler(svcs.WorkSessions))
	payrollpb.RegisterEscrowServiceServer(srv, handler.NewEscrowGrpcHandler(svcs.Escrow))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		payrollpb.CompanyService_ServiceDesc.ServiceName,
		payrollpb.EmployeeService_ServiceDesc.ServiceName,
		payrollpb.WorkSessionService_ServiceDesc.ServiceName,
		payrollpb.EscrowService_ServiceDesc.ServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if opts.Reflection {
		reflection.Register(srv)
	}

	s := &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthServer,
		logger:     logger,
	}
	if opts.Registry != nil && opts.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
		s.metricsServer = &http.Server{
			Addr:              opts.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return s
}

// Run は listenAddr で待ち受け、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis で gRPC を提供します。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	if s.metricsServer != nil {
		go func() {
			s.logger.Printf("metrics listening on %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.GracefulStop()
		return normalizeServeErr(<-serveErr)
	case err := <-serveErr:
		s.stopMetrics()
		return normalizeServeErr(err)
	}
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	s.stopMetrics()
}

func (s *Server) stopMetrics() {
	if s.metricsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := s.metricsServer.Shutdown(ctx); err != nil {
		s.logger.Printf("metrics server shutdown: %v", err)
	}
}

func normalizeServeErr(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}
