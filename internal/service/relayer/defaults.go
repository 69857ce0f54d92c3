package relayer

import "time"

const (
	defaultBatchSize     = 500
	defaultMaxPerSync    = 10_000
	defaultWorkerCount   = 8
	defaultPollInterval  = 30 * time.Second
	defaultRetryInterval = 5 * time.Second
)
