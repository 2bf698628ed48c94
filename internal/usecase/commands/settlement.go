package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripcore/internal/domain/booking"
	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/eventlog"
	"tripcore/internal/domain/settlement"
	"tripcore/internal/infra"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/errs"
)

var (
	ErrSettlementNotFound   = errs.New("settlement not found")
	ErrBookingNotBooked     = errs.New("booking is not in booked state")
	ErrRateResolutionFailed = errs.New("commission rate resolution failed")
)

type SettlementCommands interface {
	// CreateForBooking derives and stores the settlement for a booked
	// booking. It is idempotent: the second result reports whether this
	// call created the row or found an existing one.
	CreateForBooking(ctx context.Context, organizationID, bookingID uuid.UUID, actor string) (*settlement.Settlement, bool, error)
	MarkSettled(ctx context.Context, organizationID, settlementID uuid.UUID, actor string) (*settlement.Settlement, error)
}

type settlementUseCaseImpl struct {
	bookingRepo    BookingRepository
	settlementRepo SettlementRepository
	partnerRepo    PartnerRepository
	eventRepo      EventRepository
	auditRepo      AuditRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewSettlementUseCase(
	bookingRepo BookingRepository,
	settlementRepo SettlementRepository,
	partnerRepo PartnerRepository,
	eventRepo EventRepository,
	auditRepo AuditRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) SettlementCommands {
	return &settlementUseCaseImpl{
		bookingRepo:    bookingRepo,
		settlementRepo: settlementRepo,
		partnerRepo:    partnerRepo,
		eventRepo:      eventRepo,
		auditRepo:      auditRepo,
		db:             db,
		clock:          clock,
	}
}

func (u *settlementUseCaseImpl) CreateForBooking(
	ctx context.Context,
	organizationID, bookingID uuid.UUID,
	actor string,
) (*settlement.Settlement, bool, error) {
	b, err := u.bookingRepo.FindByID(ctx, u.db, organizationID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrBookingNotFound
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if b.State() != booking.StateBooked {
		return nil, false, ErrBookingNotBooked
	}

	rate, err := u.resolveRate(ctx, b)
	if err != nil {
		return nil, false, err
	}

	split := commission.Compute(b.Amount(), rate.Type, rate.Value)
	s := settlement.NewFromSplit(organizationID, bookingID, split, rate, u.clock.Now())

	stored, inserted, err := u.settlementRepo.CreateIfAbsent(ctx, u.db, s)
	if err != nil {
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !inserted {
		return stored, false, nil
	}

	correlation := fmt.Sprintf("settlement:%s", bookingID)
	if _, _, appendErr := u.eventRepo.AppendIdempotent(ctx, u.db, &eventlog.Entry{
		OrganizationID: organizationID,
		EntityID:       bookingID,
		EventType:      booking.EventSettlementCreated,
		Actor:          actor,
		Meta: map[string]any{
			"settlement_id": stored.ID,
			"gross":         stored.GrossAmount,
			"commission":    stored.CommissionAmount,
			"net":           stored.NetAmount,
			"rate_source":   string(rate.Source),
		},
		CorrelationID: &correlation,
	}); appendErr != nil {
		slog.Warn("failed to append settlement event",
			"booking_id", bookingID, "error", appendErr)
	}

	// The zero-commission fallback is deliberately quiet in the money path;
	// this event is how misconfigured rates surface to operators.
	if split.UnknownType {
		if _, appendErr := u.eventRepo.Append(ctx, u.db, &eventlog.Entry{
			OrganizationID: organizationID,
			EntityID:       bookingID,
			EventType:      booking.EventCommissionTypeUnknown,
			Actor:          actor,
			Meta:           map[string]any{"commission_type": string(rate.Type)},
		}); appendErr != nil {
			slog.Warn("failed to append commission warning event",
				"booking_id", bookingID, "error", appendErr)
		}
	}

	return stored, true, nil
}

func (u *settlementUseCaseImpl) MarkSettled(
	ctx context.Context,
	organizationID, settlementID uuid.UUID,
	actor string,
) (*settlement.Settlement, error) {
	s, err := u.settlementRepo.MarkSettled(ctx, u.db, organizationID, settlementID, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, auditErr := u.auditRepo.Append(ctx, u.db, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         "settlement.settled",
		Actor:          actor,
		Before:         map[string]any{"status": string(settlement.StatusOpen)},
		After:          map[string]any{"status": string(s.Status)},
	}); auditErr != nil {
		slog.Warn("failed to append settlement audit entry",
			"settlement_id", settlementID, "error", auditErr)
	}

	return s, nil
}

// resolveRate applies the precedence chain. A direct booking (no partner)
// settles with zero commission.
func (u *settlementUseCaseImpl) resolveRate(ctx context.Context, b *booking.Booking) (commission.Rate, error) {
	if b.PartnerID() == nil {
		return commission.ResolveRate(nil, nil), nil
	}

	productRate, err := u.partnerRepo.FindProductRate(ctx, u.db, b.OrganizationID(), *b.PartnerID(), b.ProductID())
	if err != nil {
		return commission.Rate{}, errs.Mark(err, ErrRateResolutionFailed)
	}
	defaultPercent, err := u.partnerRepo.FindDefaultPercent(ctx, u.db, b.OrganizationID(), *b.PartnerID())
	if err != nil {
		return commission.Rate{}, errs.Mark(err, ErrRateResolutionFailed)
	}
	return commission.ResolveRate(productRate, defaultPercent), nil
}
