package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/dbmigrate"
	"github.com/goodnatureofminers/stacks-indexer/internal/metrics"
	btcrpc "github.com/goodnatureofminers/stacks-indexer/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/bns"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/corenode"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/normalizer"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/notify"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/clickhouse"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/memory"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/postgres"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/burnchain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/datastore"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/ingester"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/mirror"
	"github.com/goodnatureofminers/stacks-indexer/internal/transport"
	"github.com/goodnatureofminers/stacks-indexer/pkg/batcher"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}

	bus := notify.NewBus(logger)
	store := datastore.New(backend, chain.NewEngine(logger, metrics.NewChainTip()), bus, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}()

	params, err := decoder.BurnchainParams(cfg.Network.Burnchain())
	if err != nil {
		return err
	}
	dec, err := decoder.New(params)
	if err != nil {
		return fmt.Errorf("init decoder: %w", err)
	}

	names, closeNames, err := newNameProcessor(ctx, cfg, store, logger)
	if err != nil {
		return err
	}
	defer closeNames()

	verifier, closeVerifier, err := newVerifier(cfg, logger)
	if err != nil {
		return err
	}
	defer closeVerifier()

	queue := ingester.New(
		dec,
		normalizer.New(logger, names),
		store,
		verifier,
		metrics.NewIngester(),
		logger,
		cfg.QueueSize,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queue.Run(gctx)
	})
	g.Go(func() error {
		return serve(gctx, logger, "event", cfg.EventAddr, cfg.ShutdownWait,
			transport.NewEventServer(queue, cfg.BodyLimit, logger))
	})
	if cfg.APIAddr != "" {
		g.Go(func() error {
			return serve(gctx, logger, "read api", cfg.APIAddr, cfg.ShutdownWait,
				transport.NewReadAPI(store, logger).Handler())
		})
	}
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			return serve(gctx, logger, "metrics", cfg.MetricsAddr, cfg.ShutdownWait, mux)
		})
	}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		svc := mirror.New(bus, repo, metrics.NewMirror(), batcher.Config{
			FlushSize:     cfg.ClickhouseFlushSize,
			FlushInterval: cfg.ClickhouseFlushInterval,
		}, logger)
		g.Go(func() error {
			return svc.Run(gctx)
		})
	}

	logger.Info("stacks indexer started",
		zap.String("network", string(cfg.Network)),
		zap.String("store", cfg.Store),
		zap.String("event_addr", cfg.EventAddr),
	)
	return g.Wait()
}

func openBackend(ctx context.Context, cfg config, logger *zap.Logger) (repository.Backend, error) {
	if cfg.Store == storeMemory {
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.New(), nil
	}

	repo, err := postgres.Connect(ctx, logger, cfg.PostgresDSN, metrics.NewPostgresRepository(), cfg.ReconnectInterval)
	if err != nil {
		return nil, err
	}
	if cfg.SkipMigrations {
		return repo, nil
	}

	applied, err := dbmigrate.Up(ctx, cfg.MigrationsDir, cfg.PostgresDSN)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("apply postgres migrations: %w", err)
	}
	logger.Info("postgres schema ready", zap.Bool("migrated", applied))
	return repo, nil
}

func newNameProcessor(ctx context.Context, cfg config, store *datastore.Store, logger *zap.Logger) (*bns.Processor, func(), error) {
	node := corenode.New(cfg.CoreRPCURL, cfg.CoreRPCRPS, metrics.NewRPCClient("stacks_node"))
	if cfg.RedisAddr == "" {
		return bns.NewProcessor(cfg.BNSContractID, node, nil, store, cfg.BNSWorkers, logger), func() {}, nil
	}

	cache, err := bns.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL, metrics.NewZonefileCache())
	if err != nil {
		return nil, nil, fmt.Errorf("init zonefile cache: %w", err)
	}
	closer := func() {
		if err := cache.Close(); err != nil {
			logger.Error("failed to close zonefile cache", zap.Error(err))
		}
	}
	return bns.NewProcessor(cfg.BNSContractID, node, cache, store, cfg.BNSWorkers, logger), closer, nil
}

func newVerifier(cfg config, logger *zap.Logger) (ingester.BurnBlockVerifier, func(), error) {
	if cfg.BitcoindURL == "" {
		return nil, func() {}, nil
	}

	client, err := btcrpc.Dial(cfg.BitcoindURL, cfg.BitcoindUser, cfg.BitcoindPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("init bitcoind client: %w", err)
	}
	observed := btcrpc.NewObservedClient(client, metrics.NewRPCClient("bitcoind"))
	return burnchain.NewVerifier(observed, logger), observed.Shutdown, nil
}

func serve(ctx context.Context, logger *zap.Logger, name, addr string, wait time.Duration, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("server", name), zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", name, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", zap.String("server", name), zap.Error(err))
	}
	return nil
}
