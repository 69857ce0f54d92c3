// Command relay-init seeds an empty relay store with a trusted header,
// taken from a bitcoin node or given as hex.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/auth"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	observedrpc "github.com/goodnatureofminers/blockrelay7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type config struct {
	Network        string `long:"network" env:"RELAY_INIT_NETWORK" description:"bitcoin network" default:"mainnet"`
	DBPath         string `long:"db-path" env:"RELAY_INIT_DB_PATH" description:"relay bolt database" default:"relay.db"`
	AdminToken     string `long:"admin-token" env:"RELAY_INIT_ADMIN_TOKEN" description:"admin token" required:"true"`
	AdminTokenHash string `long:"admin-token-hash" env:"RELAY_INIT_ADMIN_TOKEN_HASH" description:"bcrypt hash of the admin token"`
	PrintTokenHash bool   `long:"print-token-hash" description:"print the bcrypt hash of --admin-token and exit"`

	Height                uint64 `long:"height" env:"RELAY_INIT_HEIGHT" description:"height of the trusted header"`
	FinalizationParameter uint64 `long:"finalization-parameter" env:"RELAY_INIT_FINALIZATION_PARAMETER" description:"confirmations before a header is final" default:"6"`
	Relayer               string `long:"relayer" env:"RELAY_INIT_RELAYER" description:"submitter recorded for the trusted header" default:"owner"`

	GenesisHeader   string `long:"genesis-header" env:"RELAY_INIT_GENESIS_HEADER" description:"trusted header as 80-byte hex; skips the node"`
	PeriodStartHash string `long:"period-start-hash" env:"RELAY_INIT_PERIOD_START_HASH" description:"hash of the first block of the trusted header's retarget period"`

	RPCURL      string `long:"rpc-url" env:"RELAY_INIT_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"RELAY_INIT_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string `long:"rpc-password" env:"RELAY_INIT_RPC_PASSWORD" description:"Bitcoin RPC password"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PrintTokenHash {
		hash, err := auth.HashToken(cfg.AdminToken, bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("hash admin token", zap.Error(err))
		}
		fmt.Println(hash)
		return
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("relay init failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	params, err := btc.ParamsForNetwork(btc.Network(cfg.Network))
	if err != nil {
		return err
	}
	authorizer, err := auth.NewTokenAuthorizer(cfg.AdminTokenHash)
	if err != nil {
		return fmt.Errorf("init authorizer: %w", err)
	}

	p := relay.InitParams{
		Height:                cfg.Height,
		FinalizationParameter: cfg.FinalizationParameter,
		Relayer:               cfg.Relayer,
	}
	if cfg.GenesisHeader != "" {
		if p.GenesisHeader, err = hex.DecodeString(cfg.GenesisHeader); err != nil {
			return fmt.Errorf("decode genesis header: %w", err)
		}
		if p.PeriodStartHash, err = periodStartHash(cfg.PeriodStartHash, p.GenesisHeader); err != nil {
			return err
		}
	} else if err := fromNode(ctx, cfg, params, network, &p); err != nil {
		return err
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

	r, err := relay.New(st, params, authorizer, metrics.NewRelay(network), logger)
	if err != nil {
		return fmt.Errorf("init relay: %w", err)
	}
	return r.Initialize(ctx, cfg.AdminToken, p)
}

// periodStartHash decodes the display hex hash s. When s is empty the
// trusted header is assumed to open its retarget period.
func periodStartHash(s string, genesis []byte) (chainhash.Hash, error) {
	if s == "" {
		header, err := btc.ParseHeader(genesis)
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("parse genesis header: %w", err)
		}
		return btc.HeaderHash(header), nil
	}
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("decode period start hash: %w", err)
	}
	return *hash, nil
}

// fromNode reads the trusted header at p.Height and the first hash of its
// retarget period from the node.
func fromNode(ctx context.Context, cfg config, params *chaincfg.Params, network model.Network, p *relay.InitParams) error {
	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	source, err := bitcoin.NewHeaderSource(observedrpc.NewObservedClient(rpc, metrics.NewRPCClient(network)), 0, time.Minute, 16)
	if err != nil {
		return err
	}
	if err := source.CheckNetwork(ctx, params); err != nil {
		return err
	}
	header, err := source.HeaderByHeight(ctx, p.Height)
	if err != nil {
		return fmt.Errorf("header at %d: %w", p.Height, err)
	}
	epoch := btc.EpochLengthFromParams(params)
	periodStart, err := source.HashAtHeight(ctx, p.Height-p.Height%epoch)
	if err != nil {
		return fmt.Errorf("period start at %d: %w", p.Height-p.Height%epoch, err)
	}
	p.GenesisHeader = btc.SerializeHeader(header)
	p.PeriodStartHash = periodStart
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
