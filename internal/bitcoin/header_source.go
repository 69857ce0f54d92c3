// Package bitcoin reads block headers from a bitcoin node for the relayer.
package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/pkg/safe"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/ratelimit"
)

// ErrWrongNetwork is returned when the node follows another chain than
// the relay.
var ErrWrongNetwork = errors.New("node is on a different network")

// nodeChains maps chaincfg network names to getblockchaininfo chain names.
var nodeChains = map[string]string{
	chaincfg.MainNetParams.Name:       "main",
	chaincfg.TestNet3Params.Name:      "test",
	chaincfg.RegressionNetParams.Name: "regtest",
	chaincfg.SigNetParams.Name:        "signet",
	chaincfg.SimNetParams.Name:        "simnet",
}

// HeaderSource fetches headers by height through a rate limited node
// connection. Headers are cached by hash; height lookups always go to the
// node since they change across reorgs.
type HeaderSource struct {
	rpc     RPCClient
	limiter ratelimit.Limiter
	headers *ttlcache.Cache[chainhash.Hash, wire.BlockHeader]
}

// NewHeaderSource builds a HeaderSource issuing at most rps calls per
// second (unlimited when rps <= 0) and caching up to capacity headers.
func NewHeaderSource(rpc RPCClient, rps int, cacheTTL time.Duration, capacity uint64) (*HeaderSource, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &HeaderSource{
		rpc:     rpc,
		limiter: limiter,
		headers: ttlcache.New[chainhash.Hash, wire.BlockHeader](
			ttlcache.WithTTL[chainhash.Hash, wire.BlockHeader](cacheTTL),
			ttlcache.WithCapacity[chainhash.Hash, wire.BlockHeader](capacity),
		),
	}, nil
}

// CheckNetwork fails with ErrWrongNetwork unless the node follows params.
func (s *HeaderSource) CheckNetwork(ctx context.Context, params *chaincfg.Params) error {
	if err := s.take(ctx); err != nil {
		return err
	}
	info, err := s.rpc.GetBlockChainInfo()
	if err != nil {
		return fmt.Errorf("get blockchain info: %w", err)
	}
	want, ok := nodeChains[params.Name]
	if !ok {
		return fmt.Errorf("%w: no node chain name for %s", ErrWrongNetwork, params.Name)
	}
	if info.Chain != want {
		return fmt.Errorf("%w: node reports %q, relay expects %q", ErrWrongNetwork, info.Chain, want)
	}
	return nil
}

// BestHeight returns the height of the node's best block.
func (s *HeaderSource) BestHeight(ctx context.Context) (uint64, error) {
	if err := s.take(ctx); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// HashAtHeight returns the hash of the node's main chain block at height.
func (s *HeaderSource) HashAtHeight(ctx context.Context, height uint64) (chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := s.take(ctx); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return *hash, nil
}

// HeaderByHash returns the header with the given hash.
func (s *HeaderSource) HeaderByHash(ctx context.Context, hash chainhash.Hash) (*wire.BlockHeader, error) {
	if item := s.headers.Get(hash); item != nil {
		h := item.Value()
		return &h, nil
	}
	if err := s.take(ctx); err != nil {
		return nil, err
	}
	header, err := s.rpc.GetBlockHeader(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if got := header.BlockHash(); got != hash {
		return nil, fmt.Errorf("node returned header %s for %s", got, hash)
	}
	s.headers.Set(hash, *header, ttlcache.DefaultTTL)
	return header, nil
}

// HeaderByHeight returns the node's main chain header at height.
func (s *HeaderSource) HeaderByHeight(ctx context.Context, height uint64) (*wire.BlockHeader, error) {
	hash, err := s.HashAtHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return s.HeaderByHash(ctx, hash)
}

func (s *HeaderSource) take(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.limiter.Take()
	return ctx.Err()
}
