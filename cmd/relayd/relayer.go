package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/metrics"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	observedrpc "github.com/goodnatureofminers/blockrelay7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/service/relayer"
	"go.uber.org/zap"
)

const (
	headerCacheTTL      = 10 * time.Minute
	headerCacheCapacity = 20_000
)

// startRelayer follows the node at cfg.RPCURL in the background. The
// returned function stops it and closes the node connection.
func startRelayer(
	ctx context.Context,
	cfg config,
	r relayer.Relay,
	params *chaincfg.Params,
	network model.Network,
	logger *zap.Logger,
) (func(), error) {
	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return nil, fmt.Errorf("init btc rpc client: %w", err)
	}
	shutdownRPC := func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}

	client := observedrpc.NewObservedClient(rpc, metrics.NewRPCClient(network))
	source, err := bitcoin.NewHeaderSource(client, cfg.RPCRPS, headerCacheTTL, headerCacheCapacity)
	if err != nil {
		shutdownRPC()
		return nil, err
	}
	if err := source.CheckNetwork(ctx, params); err != nil {
		shutdownRPC()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		cancel()
		shutdownRPC()
		return nil, err
	}
	svc, err := relayer.NewService(r, source, metrics.NewRelayer(network), logger, relayer.Config{
		Relayer:      cfg.RelayerName,
		BatchSize:    cfg.BatchSize,
		Workers:      cfg.Workers,
		PollInterval: cfg.PollInterval,
	}, blockSignal)
	if err != nil {
		cancel()
		shutdownRPC()
		return nil, err
	}

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("relayer stopped", zap.Error(err))
		}
	}()

	return func() {
		cancel()
		wg.Wait()
		shutdownRPC()
	}, nil
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
