//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tripcore/internal/domain/booking"
	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/settlement"
	"tripcore/internal/infra"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/usecase/commands"
	"tripcore/tests/common/builder"
	commandsmock "tripcore/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settlementUseCaseFixture struct {
	bookingRepo    *commandsmock.MockBookingRepository
	settlementRepo *commandsmock.MockSettlementRepository
	partnerRepo    *commandsmock.MockPartnerRepository
	eventRepo      *commandsmock.MockEventRepository
	auditRepo      *commandsmock.MockAuditRepository
	clock          *clock.MockClock
	uc             commands.SettlementCommands
}

func newSettlementUseCaseFixture(t *testing.T) *settlementUseCaseFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &settlementUseCaseFixture{
		bookingRepo:    commandsmock.NewMockBookingRepository(ctrl),
		settlementRepo: commandsmock.NewMockSettlementRepository(ctrl),
		partnerRepo:    commandsmock.NewMockPartnerRepository(ctrl),
		eventRepo:      commandsmock.NewMockEventRepository(ctrl),
		auditRepo:      commandsmock.NewMockAuditRepository(ctrl),
		clock:          clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewSettlementUseCase(
		f.bookingRepo,
		f.settlementRepo,
		f.partnerRepo,
		f.eventRepo,
		f.auditRepo,
		nil,
		f.clock,
	)
	return f
}

// echoCreateIfAbsent makes the repository report a fresh insert of whatever
// settlement the usecase derived.
func (f *settlementUseCaseFixture) echoCreateIfAbsent() *gomock.Call {
	return f.settlementRepo.EXPECT().
		CreateIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, s *settlement.Settlement) (*settlement.Settlement, bool, error) {
			return s, true, nil
		})
}

func TestSettlementUseCase_CreateForBooking(t *testing.T) {
	organizationID := uuid.New()
	bookingID := uuid.New()
	partnerID := uuid.New()

	t.Run("percent product rate", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithPartnerID(partnerID).
			WithState(booking.StateBooked).
			WithAmount(decimal.NewFromInt(1000)).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.partnerRepo.EXPECT().
			FindProductRate(gomock.Any(), gomock.Any(), organizationID, partnerID, b.ProductID()).
			Return(&commission.Rate{Type: commission.TypePercent, Value: decimal.NewFromInt(10)}, nil)
		f.partnerRepo.EXPECT().
			FindDefaultPercent(gomock.Any(), gomock.Any(), organizationID, partnerID).
			Return(nil, nil)
		f.echoCreateIfAbsent()
		f.eventRepo.EXPECT().
			AppendIdempotent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), true, nil)

		s, inserted, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.NoError(t, err)
		require.True(t, inserted)
		assert.True(t, s.GrossAmount.Equal(decimal.NewFromInt(1000)))
		assert.True(t, s.CommissionAmount.Equal(decimal.NewFromInt(100)))
		assert.True(t, s.NetAmount.Equal(decimal.NewFromInt(900)))
		assert.Equal(t, settlement.StatusOpen, s.Status)
	})

	t.Run("partner default used when no product rate", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithPartnerID(partnerID).
			WithState(booking.StateBooked).
			WithAmount(decimal.NewFromInt(1000)).
			BuildReconstructed()
		defaultPercent := decimal.NewFromInt(8)

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.partnerRepo.EXPECT().
			FindProductRate(gomock.Any(), gomock.Any(), organizationID, partnerID, b.ProductID()).
			Return(nil, nil)
		f.partnerRepo.EXPECT().
			FindDefaultPercent(gomock.Any(), gomock.Any(), organizationID, partnerID).
			Return(&defaultPercent, nil)
		f.echoCreateIfAbsent()
		f.eventRepo.EXPECT().
			AppendIdempotent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), true, nil)

		s, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.NoError(t, err)
		assert.True(t, s.CommissionAmount.Equal(decimal.NewFromInt(80)))
		assert.True(t, s.NetAmount.Equal(decimal.NewFromInt(920)))
	})

	t.Run("direct booking settles with zero commission", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateBooked).
			WithAmount(decimal.NewFromInt(1000)).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.echoCreateIfAbsent()
		f.eventRepo.EXPECT().
			AppendIdempotent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), true, nil)

		s, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.NoError(t, err)
		assert.True(t, s.CommissionAmount.IsZero())
		assert.True(t, s.NetAmount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("unknown commission type falls back and warns", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithPartnerID(partnerID).
			WithState(booking.StateBooked).
			WithAmount(decimal.NewFromInt(1000)).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.partnerRepo.EXPECT().
			FindProductRate(gomock.Any(), gomock.Any(), organizationID, partnerID, b.ProductID()).
			Return(&commission.Rate{Type: commission.Type("revenue_share"), Value: decimal.NewFromInt(10)}, nil)
		f.partnerRepo.EXPECT().
			FindDefaultPercent(gomock.Any(), gomock.Any(), organizationID, partnerID).
			Return(nil, nil)
		f.echoCreateIfAbsent()
		f.eventRepo.EXPECT().
			AppendIdempotent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), true, nil)
		f.eventRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e any) (uuid.UUID, error) {
				return uuid.New(), nil
			})

		s, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.NoError(t, err)
		assert.True(t, s.CommissionAmount.IsZero())
		assert.True(t, s.NetAmount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("replay returns existing settlement without new event", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateBooked).
			BuildReconstructed()
		existing := &settlement.Settlement{ID: uuid.New(), BookingID: bookingID, Status: settlement.StatusOpen}

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.settlementRepo.EXPECT().
			CreateIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(existing, false, nil)

		s, inserted, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, existing, s)
	})

	t.Run("booking not booked", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)

		_, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.ErrorIs(t, err, commands.ErrBookingNotBooked)
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("rate lookup failure", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithPartnerID(partnerID).
			WithState(booking.StateBooked).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.partnerRepo.EXPECT().
			FindProductRate(gomock.Any(), gomock.Any(), organizationID, partnerID, b.ProductID()).
			Return(nil, infra.WrapRepoErr("query failed", nil))

		_, _, err := f.uc.CreateForBooking(context.Background(), organizationID, bookingID, "ops")
		require.ErrorIs(t, err, commands.ErrRateResolutionFailed)
	})
}

func TestSettlementUseCase_MarkSettled(t *testing.T) {
	organizationID := uuid.New()
	settlementID := uuid.New()

	t.Run("marks settled and audits", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		settled := &settlement.Settlement{ID: settlementID, Status: settlement.StatusSettled}

		f.settlementRepo.EXPECT().
			MarkSettled(gomock.Any(), gomock.Any(), organizationID, settlementID, f.clock.Now()).
			Return(settled, nil)
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil)

		s, err := f.uc.MarkSettled(context.Background(), organizationID, settlementID, "ops")
		require.NoError(t, err)
		assert.Equal(t, settlement.StatusSettled, s.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)

		f.settlementRepo.EXPECT().
			MarkSettled(gomock.Any(), gomock.Any(), organizationID, settlementID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("settlement not found", nil, infra.KindNotFound))

		_, err := f.uc.MarkSettled(context.Background(), organizationID, settlementID, "ops")
		require.ErrorIs(t, err, commands.ErrSettlementNotFound)
	})

	t.Run("audit failure does not fail the command", func(t *testing.T) {
		f := newSettlementUseCaseFixture(t)
		settled := &settlement.Settlement{ID: settlementID, Status: settlement.StatusSettled}

		f.settlementRepo.EXPECT().
			MarkSettled(gomock.Any(), gomock.Any(), organizationID, settlementID, gomock.Any()).
			Return(settled, nil)
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("append failed", nil))

		_, err := f.uc.MarkSettled(context.Background(), organizationID, settlementID, "ops")
		require.NoError(t, err)
	})
}
