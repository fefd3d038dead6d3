package worker

import (
	"context"
	"log/slog"
	"time"

	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/config"
	"droidforge/internal/usecase/commands"
)

// CallProcessor places scheduled thank-you calls once their run time passes.
type CallProcessor struct {
	commRepo commands.CommunicationRepository
	voice    commands.VoiceAgent
	interval time.Duration
	clock    clock.Clock
}

func NewCallProcessor(
	commRepo commands.CommunicationRepository,
	voice commands.VoiceAgent,
	cfg config.Config,
	clock clock.Clock,
) *CallProcessor {
	return &CallProcessor{
		commRepo: commRepo,
		voice:    voice,
		interval: cfg.Generation.PollInterval,
		clock:    clock,
	}
}

func (c *CallProcessor) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

func (c *CallProcessor) Tick(ctx context.Context) {
	calls, err := c.commRepo.ClaimDue(ctx, c.clock.Now(), claimBatchSize)
	if err != nil {
		slog.Error("failed to claim scheduled calls", "error", err.Error())
		return
	}
	for _, call := range calls {
		status := commands.CallStatusCompleted
		if err := c.voice.PlaceCall(ctx, call.PhoneNumber, call.Script); err != nil {
			slog.Warn("call placement failed", "order_id", call.OrderID, "error", err.Error())
			status = commands.CallStatusFailed
		}
		if err := c.commRepo.Finish(ctx, call.ID, status); err != nil {
			slog.Error("failed to record call outcome", "call_id", call.ID, "error", err.Error())
		}
	}
}
