package components

import (
	"context"

	"droidforge/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewGenerationPoller,
		worker.NewCallProcessor,
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, poller *worker.GenerationPoller, calls *worker.CallProcessor) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go poller.Run(ctx)
			go calls.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
