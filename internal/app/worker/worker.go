package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/contracts"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
)

// BroadcastWorker drains queued fanout jobs so event producers return as
// soon as their durable write commits, independent of fanout size.
type BroadcastWorker struct {
	log         *slog.Logger
	queue       contracts.EventQueue
	broadcaster contracts.Broadcaster
	stream      string
	group       string
}

func NewBroadcastWorker(
	log *slog.Logger,
	queue contracts.EventQueue,
	broadcaster contracts.Broadcaster,
	stream, group string,
) contracts.AsyncWorker {
	return &BroadcastWorker{
		log:         log,
		queue:       queue,
		broadcaster: broadcaster,
		stream:      stream,
		group:       group,
	}
}

func (w *BroadcastWorker) Run(ctx context.Context) error {
	if err := w.queue.Subscribe(ctx, w.stream, w.group, w.ProcessJob); err != nil {
		w.log.ErrorContext(ctx, "worker - subscribe failed", slog.String("stream", w.stream), logger.Err(err))
		return err
	}
	w.log.InfoContext(ctx, "worker - consuming broadcast stream",
		slog.String("stream", w.stream), slog.String("group", w.group))
	return nil
}

func (w *BroadcastWorker) ProcessJob(ctx context.Context, messageID string, raw []byte) error {
	var job domain.BroadcastJob
	if err := json.Unmarshal(raw, &job); err != nil {
		w.log.Error("worker - process job - bad payload", slog.String("message_id", messageID), logger.Err(err))
		return err
	}

	// Broadcast never errors: partial failure lives in the report.
	report := w.broadcaster.Broadcast(ctx, job.Endpoint, job.Event)
	w.log.InfoContext(ctx, "worker - process job - fanout done",
		slog.String("message_id", messageID),
		logger.EventType(job.Event.Type),
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
		slog.Int("pruned", report.Pruned),
		slog.Int("failed", report.Failed),
	)

	if err := w.queue.Ack(ctx, w.stream, w.group, messageID); err != nil {
		w.log.ErrorContext(ctx, "worker - process job - ack failed", slog.String("message_id", messageID), logger.Err(err))
		return err
	}
	// Keeps the stream memory-efficient; the job is already acked, so a
	// failure here is log-only.
	if err := w.queue.Delete(ctx, w.stream, messageID); err != nil {
		w.log.ErrorContext(ctx, "worker - process job - delete failed", slog.String("message_id", messageID), logger.Err(err))
	}
	return nil
}
