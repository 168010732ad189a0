package contracts

import "context"

type AsyncWorker interface {
	// Run starts the consumer loop on the broadcast stream.
	Run(ctx context.Context) error
	// ProcessJob decodes a queued broadcast job, runs the fanout, then
	// acknowledges and deletes the stream entry.
	ProcessJob(ctx context.Context, messageID string, raw []byte) error
}
