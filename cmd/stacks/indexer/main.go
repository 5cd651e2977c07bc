package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/transport"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	storePostgres = "postgres"
	storeMemory   = "memory"
)

type config struct {
	Store             string        `long:"store" env:"STACKS_INDEXER_STORE" description:"storage backend" choice:"postgres" choice:"memory" default:"postgres"`
	PostgresDSN       string        `long:"postgres-dsn" env:"STACKS_INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	SkipMigrations    bool          `long:"skip-migrations" env:"STACKS_INDEXER_SKIP_MIGRATIONS" description:"do not apply migrations on startup"`
	MigrationsDir     string        `long:"migrations-dir" env:"STACKS_INDEXER_MIGRATIONS_DIR" description:"PostgreSQL migrations directory" default:"migrations/postgres"`
	ReconnectInterval time.Duration `long:"reconnect-interval" env:"STACKS_INDEXER_RECONNECT_INTERVAL" description:"delay between store connection attempts" default:"2s"`

	EventAddr    string        `long:"event-addr" env:"STACKS_INDEXER_EVENT_ADDR" description:"address for node event callbacks" default:"127.0.0.1:3700"`
	BodyLimit    int64         `long:"body-limit" env:"STACKS_INDEXER_BODY_LIMIT" description:"max event payload size in bytes" default:"26214400"`
	QueueSize    int           `long:"queue-size" env:"STACKS_INDEXER_QUEUE_SIZE" description:"messages that may wait for the ingester" default:"64"`
	APIAddr      string        `long:"api-addr" env:"STACKS_INDEXER_API_ADDR" description:"address for the read API, empty to disable"`
	MetricsAddr  string        `long:"metrics-addr" env:"STACKS_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON      bool          `long:"log-json" env:"STACKS_INDEXER_LOG_JSON" description:"use the production JSON logger"`
	ShutdownWait time.Duration `long:"shutdown-wait" env:"STACKS_INDEXER_SHUTDOWN_WAIT" description:"grace period for HTTP servers" default:"10s"`

	Network       model.Network `long:"network" env:"STACKS_INDEXER_NETWORK" description:"stacks network" choice:"mainnet" choice:"testnet" default:"mainnet"`
	CoreRPCURL    string        `long:"core-rpc-url" env:"STACKS_INDEXER_CORE_RPC_URL" description:"stacks node RPC URL" default:"http://127.0.0.1:20443"`
	CoreRPCRPS    int           `long:"core-rpc-rps" env:"STACKS_INDEXER_CORE_RPC_RPS" description:"max requests per second to the node" default:"20"`
	BNSContractID string        `long:"bns-contract-id" env:"STACKS_INDEXER_BNS_CONTRACT_ID" description:"BNS contract, defaults to the network boot contract"`
	BNSWorkers    int           `long:"bns-workers" env:"STACKS_INDEXER_BNS_WORKERS" description:"concurrent zonefile fetches" default:"4"`

	RedisAddr     string        `long:"redis-addr" env:"STACKS_INDEXER_REDIS_ADDR" description:"zonefile cache address, empty to disable"`
	RedisPassword string        `long:"redis-password" env:"STACKS_INDEXER_REDIS_PASSWORD" description:"zonefile cache password"`
	RedisDB       int           `long:"redis-db" env:"STACKS_INDEXER_REDIS_DB" description:"zonefile cache database"`
	RedisTTL      time.Duration `long:"redis-ttl" env:"STACKS_INDEXER_REDIS_TTL" description:"zonefile cache ttl" default:"24h"`

	ClickhouseDSN           string        `long:"clickhouse-dsn" env:"STACKS_INDEXER_CLICKHOUSE_DSN" description:"analytics mirror DSN, empty to disable"`
	ClickhouseFlushSize     int           `long:"clickhouse-flush-size" env:"STACKS_INDEXER_CLICKHOUSE_FLUSH_SIZE" description:"blocks per mirror batch" default:"100"`
	ClickhouseFlushInterval time.Duration `long:"clickhouse-flush-interval" env:"STACKS_INDEXER_CLICKHOUSE_FLUSH_INTERVAL" description:"max mirror batch delay" default:"2s"`

	BitcoindURL      string `long:"bitcoind-url" env:"STACKS_INDEXER_BITCOIND_URL" description:"bitcoind RPC URL for burn block checks, empty to disable"`
	BitcoindUser     string `long:"bitcoind-user" env:"STACKS_INDEXER_BITCOIND_USER" description:"bitcoind RPC username"`
	BitcoindPassword string `long:"bitcoind-password" env:"STACKS_INDEXER_BITCOIND_PASSWORD" description:"bitcoind RPC password"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("stacks indexer failed", zap.Error(err))
	}
}

func (c *config) validate() error {
	if !c.Network.Valid() {
		return errors.New("unknown network " + string(c.Network))
	}
	if c.Store == storePostgres && c.PostgresDSN == "" {
		return errors.New("postgres dsn is required for the postgres store")
	}
	if c.BNSContractID == "" {
		c.BNSContractID = c.Network.BNSContractID()
	}
	if c.BodyLimit <= 0 {
		c.BodyLimit = transport.DefaultBodyLimit
	}
	return nil
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
