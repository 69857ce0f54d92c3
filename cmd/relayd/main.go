package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/auth"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/service/archiver"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network        string        `long:"network" env:"RELAYD_NETWORK" description:"bitcoin network" default:"mainnet"`
	DBPath         string        `long:"db-path" env:"RELAYD_DB_PATH" description:"relay bolt database" default:"relay.db"`
	AdminTokenHash string        `long:"admin-token-hash" env:"RELAYD_ADMIN_TOKEN_HASH" description:"bcrypt hash of the admin token" required:"true"`
	GRPCAddr       string        `long:"grpc-addr" env:"RELAYD_GRPC_ADDR" description:"gRPC health addr" default:":8000"`
	HTTPAddr       string        `long:"http-addr" env:"RELAYD_HTTP_ADDR" description:"HTTP API addr" default:":8001"`
	HealthInterval time.Duration `long:"health-interval" env:"RELAYD_HEALTH_INTERVAL" description:"health refresh interval" default:"10s"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"RELAYD_CLICKHOUSE_DSN" description:"ClickHouse DSN; enables the event archive"`

	RelayerName  string        `long:"relayer-name" env:"RELAYD_RELAYER_NAME" description:"submitter name recorded for relayed headers" default:"relayd"`
	RPCURL       string        `long:"rpc-url" env:"RELAYD_RPC_URL" description:"Bitcoin RPC URL; enables the relayer"`
	RPCUser      string        `long:"rpc-user" env:"RELAYD_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword  string        `long:"rpc-password" env:"RELAYD_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS       int           `long:"rpc-rps" env:"RELAYD_RPC_RPS" description:"Bitcoin RPC calls per second, 0 for unlimited" default:"50"`
	ZMQAddr      string        `long:"zmq-addr" env:"RELAYD_ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint"`
	BatchSize    int           `long:"batch-size" env:"RELAYD_BATCH_SIZE" description:"headers per submission" default:"500"`
	Workers      int           `long:"workers" env:"RELAYD_WORKERS" description:"concurrent header fetches" default:"8"`
	PollInterval time.Duration `long:"poll-interval" env:"RELAYD_POLL_INTERVAL" description:"node poll interval" default:"30s"`
}

func main() {
	cfg := config{}

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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("relayd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	params, err := btc.ParamsForNetwork(btc.Network(cfg.Network))
	if err != nil {
		return err
	}
	authorizer, err := auth.NewTokenAuthorizer(cfg.AdminTokenHash)
	if err != nil {
		return fmt.Errorf("init authorizer: %w", err)
	}
	st, err := store.OpenBolt(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open relay store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("close relay store", zap.Error(err))
		}
	}()

	var (
		opts    []relay.Option
		archive transport.Archive
		arch    *archiver.Service
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()
		arch, err = archiver.NewService(repo, metrics.NewArchiver(network), network, logger, archiver.Config{})
		if err != nil {
			return err
		}
		arch.Start(ctx)
		defer arch.Stop()
		archive = repo
		opts = append(opts, relay.WithEventSink(arch))
	}

	r, err := relay.New(st, params, authorizer, metrics.NewRelay(network), logger, opts...)
	if err != nil {
		return fmt.Errorf("init relay: %w", err)
	}

	if arch != nil {
		n, err := arch.Backfill(ctx, r)
		if err != nil {
			return fmt.Errorf("backfill archive: %w", err)
		}
		logger.Info("archive backfilled", zap.Int("events", n))
	}

	if cfg.RPCURL != "" {
		stopRelayer, err := startRelayer(ctx, cfg, r, params, network, logger)
		if err != nil {
			return err
		}
		defer stopRelayer()
	}

	handler, err := transport.NewHandler(r, archive, metrics.NewHTTP(), network, logger)
	if err != nil {
		return err
	}
	stopGRPC, err := serveGRPC(ctx, cfg, r, logger)
	if err != nil {
		return err
	}
	defer stopGRPC()

	return serveHTTP(ctx, cfg.HTTPAddr, handler, logger)
}
