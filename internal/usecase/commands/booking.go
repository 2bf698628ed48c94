package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripcore/internal/domain/booking"
	"tripcore/internal/domain/eventlog"
	"tripcore/internal/domain/supplier"
	reqdto "tripcore/internal/handler/dto/request"
	"tripcore/internal/infra"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/config"
	"tripcore/internal/pkg/errs"
	"tripcore/internal/usecase/queries"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrInvalidStateTransition  = errs.New("invalid state transition")
	ErrSoldOut                 = errs.New("insufficient inventory")
	ErrSupplierRejected        = errs.New("supplier rejected booking")
	ErrSupplierUnavailable     = errs.New("supplier unavailable")
	ErrAmendNotAllowed         = errs.New("booking can no longer be amended")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateDraft(ctx context.Context, organizationID uuid.UUID, actor string, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Transition(ctx context.Context, organizationID, bookingID uuid.UUID, actor string, target booking.State) (*queries.BookingView, error)
	Amend(ctx context.Context, organizationID, bookingID uuid.UUID, actor string, req reqdto.AmendBookingRequest) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo        BookingRepository
	inventoryRepo      InventoryRepository
	eventRepo          EventRepository
	auditRepo          AuditRepository
	supplierAdapter    supplier.Adapter
	settlementCommands SettlementCommands
	bookingQueries     queries.BookingQueries
	db                 *pgxpool.Pool
	clock              clock.Clock
	cfg                config.Config
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	inventoryRepo InventoryRepository,
	eventRepo EventRepository,
	auditRepo AuditRepository,
	supplierAdapter supplier.Adapter,
	settlementCommands SettlementCommands,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:        bookingRepo,
		inventoryRepo:      inventoryRepo,
		eventRepo:          eventRepo,
		auditRepo:          auditRepo,
		supplierAdapter:    supplierAdapter,
		settlementCommands: settlementCommands,
		bookingQueries:     bookingQueries,
		db:                 db,
		clock:              clock,
		cfg:                cfg,
	}
}

func (u *bookingUseCaseImpl) CreateDraft(
	ctx context.Context,
	organizationID uuid.UUID,
	actor string,
	req reqdto.CreateBookingRequest,
) (*queries.BookingView, error) {
	b, err := req.ToDomain(organizationID, u.cfg.Booking.Currency, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.bookingRepo.Create(ctx, u.db, b); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.appendEvent(ctx, &eventlog.Entry{
		OrganizationID: organizationID,
		EntityID:       b.ID(),
		EventType:      booking.EventBookingCreated,
		Actor:          actor,
		Meta: map[string]any{
			"product_id":  b.ProductID(),
			"travel_date": b.TravelDate(),
			"pax":         b.Pax(),
			"amount":      b.Amount(),
			"currency":    b.Currency(),
		},
	})
	u.appendAudit(ctx, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         "booking.created",
		Actor:          actor,
		After: map[string]any{
			"booking_id": b.ID(),
			"state":      b.State().String(),
			"amount":     b.Amount(),
			"currency":   b.Currency(),
		},
	})

	return u.bookingQueries.GetByID(ctx, organizationID, b.ID())
}

func (u *bookingUseCaseImpl) Transition(
	ctx context.Context,
	organizationID, bookingID uuid.UUID,
	actor string,
	target booking.State,
) (*queries.BookingView, error) {
	b, err := u.bookingRepo.FindByID(ctx, u.db, organizationID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Fail before any side effect (supplier call, inventory hold) when the
	// transition is not even legal.
	if err := booking.ValidateTransition(b.State(), target); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}
	from := b.State()

	switch target {
	case booking.StateBooked:
		if err := u.confirmAndBook(ctx, b); err != nil {
			return nil, err
		}
	case booking.StateCancelRequested:
		if err := u.cancelWithRelease(ctx, b); err != nil {
			return nil, err
		}
	default:
		if err := b.ApplyTransition(target, u.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrInvalidStateTransition)
		}
		if err := u.bookingRepo.Update(ctx, u.db, b); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	meta := map[string]any{"from": from.String(), "to": target.String()}
	if target == booking.StateCancelRequested {
		meta["inventory_released"] = b.InventoryReleased()
	}
	u.appendEvent(ctx, &eventlog.Entry{
		OrganizationID: organizationID,
		EntityID:       b.ID(),
		EventType:      booking.TransitionEventType(target),
		Actor:          actor,
		Meta:           meta,
	})
	u.appendAudit(ctx, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         "booking.state_changed",
		Actor:          actor,
		Before:         map[string]any{"booking_id": b.ID(), "state": from.String()},
		After:          map[string]any{"booking_id": b.ID(), "state": target.String()},
	})

	if target == booking.StateBooked {
		// Settlement is idempotent on booking_id; a failure here is caught
		// up by the background reconciler, never surfaced to the caller.
		if _, _, err := u.settlementCommands.CreateForBooking(ctx, organizationID, b.ID(), actor); err != nil {
			slog.Warn("settlement creation deferred to reconciler",
				"booking_id", b.ID(), "error", err)
		}
	}

	return u.bookingQueries.GetByID(ctx, organizationID, b.ID())
}

// confirmAndBook runs the booked leg: supplier confirmation outside the
// transaction, then hold + state change + persist atomically.
func (u *bookingUseCaseImpl) confirmAndBook(ctx context.Context, b *booking.Booking) error {
	conf, err := u.supplierAdapter.ConfirmBooking(ctx, b)
	if err != nil {
		return errs.Mark(err, ErrSupplierUnavailable)
	}
	switch conf.Status {
	case supplier.StatusConfirmed:
	case supplier.StatusRejected, supplier.StatusNotSupported:
		return errs.Mark(errs.New(fmt.Sprintf("supplier returned %s", conf.Status)), ErrSupplierRejected)
	default:
		return errs.Mark(errs.New(fmt.Sprintf("unexpected supplier status %s", conf.Status)), ErrSupplierUnavailable)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	held, err := u.inventoryRepo.Consume(ctx, tx, b.OrganizationID(), b.ProductID(), b.TravelDate(), b.Pax())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !held {
		return ErrSoldOut
	}

	now := u.clock.Now()
	if err := b.ApplyTransition(booking.StateBooked, now); err != nil {
		return errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := b.MarkInventoryConsumed(now); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if conf.SupplierBookingID != "" {
		b.SetSupplierBookingID(conf.SupplierBookingID, now)
	}

	if err := u.bookingRepo.Update(ctx, tx, b); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// cancelWithRelease returns the inventory hold, if any, in the same
// transaction as the state change. The consumed/released flags on the
// booking make the release exactly-once.
func (u *bookingUseCaseImpl) cancelWithRelease(ctx context.Context, b *booking.Booking) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	now := u.clock.Now()
	if b.NeedsInventoryRelease() {
		if err := u.inventoryRepo.Release(ctx, tx, b.OrganizationID(), b.ProductID(), b.TravelDate(), b.Pax()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := b.MarkInventoryReleased(now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
	}
	if err := b.ApplyTransition(booking.StateCancelRequested, now); err != nil {
		return errs.Mark(err, ErrInvalidStateTransition)
	}

	if err := u.bookingRepo.Update(ctx, tx, b); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) Amend(
	ctx context.Context,
	organizationID, bookingID uuid.UUID,
	actor string,
	req reqdto.AmendBookingRequest,
) (*queries.BookingView, error) {
	b, err := u.bookingRepo.FindByID(ctx, u.db, organizationID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	prevAmount, prevSeq := b.Amount(), b.AmendSeq()
	if err := b.Amend(req.Amount, u.clock.Now()); err != nil {
		if errors.Is(err, booking.ErrAmendNotAllowed) {
			return nil, errs.Mark(err, ErrAmendNotAllowed)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.bookingRepo.Update(ctx, u.db, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Keyed on the amendment sequence so client retries of the same amend
	// never produce a second event.
	correlation := fmt.Sprintf("amend:%s:%d", b.ID(), b.AmendSeq())
	if _, _, err := u.eventRepo.AppendIdempotent(ctx, u.db, &eventlog.Entry{
		OrganizationID: organizationID,
		EntityID:       b.ID(),
		EventType:      booking.EventBookingAmended,
		Actor:          actor,
		Meta:           map[string]any{"amend_seq": b.AmendSeq(), "amount": b.Amount()},
		CorrelationID:  &correlation,
	}); err != nil {
		slog.Warn("failed to append amend event", "booking_id", b.ID(), "error", err)
	}

	u.appendAudit(ctx, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         "booking.amended",
		Actor:          actor,
		Before:         map[string]any{"booking_id": b.ID(), "amount": prevAmount, "amend_seq": prevSeq},
		After:          map[string]any{"booking_id": b.ID(), "amount": b.Amount(), "amend_seq": b.AmendSeq()},
	})

	return u.bookingQueries.GetByID(ctx, organizationID, b.ID())
}

// appendEvent is the best-effort sink for lifecycle events: the write is
// retried by the repository, and a final failure is logged and swallowed.
func (u *bookingUseCaseImpl) appendEvent(ctx context.Context, e *eventlog.Entry) {
	if _, err := u.eventRepo.Append(ctx, u.db, e); err != nil {
		slog.Warn("failed to append booking event",
			"entity_id", e.EntityID, "event_type", e.EventType, "error", err)
	}
}

// appendAudit mirrors appendEvent for the audit stream: the snapshot write
// never fails the command it documents.
func (u *bookingUseCaseImpl) appendAudit(ctx context.Context, e *eventlog.AuditEntry) {
	if _, err := u.auditRepo.Append(ctx, u.db, e); err != nil {
		slog.Warn("failed to append booking audit entry",
			"action", e.Action, "error", err)
	}
}
