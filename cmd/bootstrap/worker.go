package bootstrap

import (
	"context"

	"tripcore/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewSettlementReconciler,
	),
	fx.Invoke(registerSettlementReconciler),
)

func registerSettlementReconciler(lc fx.Lifecycle, reconciler *worker.SettlementReconciler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reconciler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return reconciler.Stop(ctx)
		},
	})
}
