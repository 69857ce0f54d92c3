//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// startBlockSignal without zmq support leaves the relayer polling.
func startBlockSignal(_ context.Context, addr string, _ *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		return nil, errors.New("zmq-addr needs a binary built with -tags zmq")
	}
	return nil, nil
}
