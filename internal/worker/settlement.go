// Package worker holds the background loops that run alongside the HTTP
// server. They share the usecase layer with the handlers; nothing here
// touches the database directly except through the same ports.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tripcore/internal/pkg/config"
	"tripcore/internal/usecase/commands"
)

// SettlementReconciler sweeps for booked bookings that still lack a
// settlement and re-issues the idempotent creation. The synchronous path in
// the booking orchestrator is best-effort; this loop is the at-least-once
// guarantee behind it.
type SettlementReconciler struct {
	settlementRepo commands.SettlementRepository
	settlements    commands.SettlementCommands
	interval       time.Duration
	batch          int32
	stop           chan struct{}
	done           chan struct{}
}

func NewSettlementReconciler(
	settlementRepo commands.SettlementRepository,
	settlements commands.SettlementCommands,
	cfg config.Config,
) *SettlementReconciler {
	return &SettlementReconciler{
		settlementRepo: settlementRepo,
		settlements:    settlements,
		interval:       cfg.Worker.SettlementInterval,
		batch:          int32(cfg.Worker.SettlementBatch),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
}

func (w *SettlementReconciler) Start() {
	go w.run()
}

// Stop blocks until the current sweep, if any, has finished.
func (w *SettlementReconciler) Stop(ctx context.Context) error {
	close(w.stop)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SettlementReconciler) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SettlementReconciler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	refs, err := w.settlementRepo.FindBookedWithoutSettlement(ctx, w.batch)
	if err != nil {
		slog.Error("settlement sweep query failed", "error", err)
		return
	}
	if len(refs) == 0 {
		return
	}

	var created int
	for _, ref := range refs {
		_, inserted, err := w.settlements.CreateForBooking(ctx, ref.OrganizationID, ref.BookingID, "system:reconciler")
		if err != nil {
			// The booking may have moved on since the query ran; that is
			// not a failure of the sweep.
			if errors.Is(err, commands.ErrBookingNotBooked) || errors.Is(err, commands.ErrBookingNotFound) {
				continue
			}
			slog.Warn("settlement reconciliation failed",
				"booking_id", ref.BookingID, "error", err)
			continue
		}
		if inserted {
			created++
		}
	}
	if created > 0 {
		slog.Info("settlement sweep recovered bookings", "created", created, "scanned", len(refs))
	}
}
