package archiver

import "time"

const (
	defaultFlushSize     = 1000
	defaultFlushInterval = 5 * time.Second
	defaultFlushRPS      = 10
	defaultQueueSize     = 50_000
	defaultBackfillChunk = 5000
)
