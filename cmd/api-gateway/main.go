package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/metrics"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/postgres"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/datastore"
	"github.com/goodnatureofminers/stacks-indexer/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr              string        `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr          string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"read API addr" default:":8001"`
	PostgresDSN       string        `long:"postgres-dsn" env:"API_GATEWAY_POSTGRES_DSN" description:"PostgreSQL DSN" required:"true"`
	ReconnectInterval time.Duration `long:"reconnect-interval" env:"API_GATEWAY_RECONNECT_INTERVAL" description:"delay between store connection attempts" default:"2s"`
	HealthInterval    time.Duration `long:"health-interval" env:"API_GATEWAY_HEALTH_INTERVAL" description:"store health probe interval" default:"10s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := postgres.Connect(ctx, logger, config.PostgresDSN, metrics.NewPostgresRepository(), config.ReconnectInterval)
	if err != nil {
		logger.Fatal("Connect store", zap.Error(err))
	}
	store := datastore.New(repo, chain.NewEngine(logger, metrics.NewChainTip()), nil, logger)
	defer func() {
		_ = store.Close()
	}()

	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	go probeStore(ctx, logger, store, healthServer, config.HealthInterval)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()
	mux.Handle("/", transport.NewReadAPI(store, logger))
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// probeStore marks the service NOT_SERVING while the store cannot answer
// a chain tip query.
func probeStore(ctx context.Context, logger *zap.Logger, store *datastore.Store, hs *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status := healthpb.HealthCheckResponse_SERVING
		if _, _, err := store.CurrentBlock(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("store health probe failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus("", status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
