//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tripcore/internal/domain/booking"
	"tripcore/internal/domain/eventlog"
	"tripcore/internal/domain/supplier"
	reqdto "tripcore/internal/handler/dto/request"
	"tripcore/internal/infra"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/config"
	"tripcore/internal/usecase/commands"
	"tripcore/tests/common/builder"
	commandsmock "tripcore/tests/mock/commands"
	queriesmock "tripcore/tests/mock/queries"
	suppliermock "tripcore/tests/mock/supplier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingUseCaseFixture struct {
	bookingRepo     *commandsmock.MockBookingRepository
	inventoryRepo   *commandsmock.MockInventoryRepository
	eventRepo       *commandsmock.MockEventRepository
	auditRepo       *commandsmock.MockAuditRepository
	supplierAdapter *suppliermock.MockAdapter
	settlements     *commandsmock.MockSettlementCommands
	bookingQueries  *queriesmock.MockBookingQueries
	clock           *clock.MockClock
	uc              commands.BookingCommands
}

// The pool is nil on purpose: paths under test never open a transaction, and
// the mocks accept whatever handle they are given.
func newBookingUseCaseFixture(t *testing.T) *bookingUseCaseFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingUseCaseFixture{
		bookingRepo:     commandsmock.NewMockBookingRepository(ctrl),
		inventoryRepo:   commandsmock.NewMockInventoryRepository(ctrl),
		eventRepo:       commandsmock.NewMockEventRepository(ctrl),
		auditRepo:       commandsmock.NewMockAuditRepository(ctrl),
		supplierAdapter: suppliermock.NewMockAdapter(ctrl),
		settlements:     commandsmock.NewMockSettlementCommands(ctrl),
		bookingQueries:  queriesmock.NewMockBookingQueries(ctrl),
		clock:           clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewBookingUseCase(
		f.bookingRepo,
		f.inventoryRepo,
		f.eventRepo,
		f.auditRepo,
		f.supplierAdapter,
		f.settlements,
		f.bookingQueries,
		nil,
		f.clock,
		config.NewTestConfig(),
	)
	return f
}

func TestBookingUseCase_CreateDraft(t *testing.T) {
	organizationID := uuid.New()

	t.Run("creates draft and appends lifecycle event", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().WithOrganizationID(organizationID)
		view := b.BuildViewQuery()

		f.bookingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.eventRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil)
		var audit *eventlog.AuditEntry
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *eventlog.AuditEntry) (uuid.UUID, error) {
				audit = e
				return uuid.New(), nil
			})
		f.bookingQueries.EXPECT().
			GetByID(gomock.Any(), organizationID, gomock.Any()).
			Return(view, nil)

		got, err := f.uc.CreateDraft(context.Background(), organizationID, "ops", b.BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, view, got)
		require.NotNil(t, audit)
		assert.Equal(t, "booking.created", audit.Action)
		assert.Equal(t, "draft", audit.After["state"])
	})

	t.Run("event and audit append failures do not fail the command", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().WithOrganizationID(organizationID)
		view := b.BuildViewQuery()

		f.bookingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.eventRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("append failed", nil))
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("append failed", nil))
		f.bookingQueries.EXPECT().
			GetByID(gomock.Any(), organizationID, gomock.Any()).
			Return(view, nil)

		_, err := f.uc.CreateDraft(context.Background(), organizationID, "ops", b.BuildCreateRequestDTO())
		require.NoError(t, err)
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		req := builder.NewBookingBuilder().WithCurrency("USD").BuildCreateRequestDTO()

		_, err := f.uc.CreateDraft(context.Background(), organizationID, "ops", req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("rejects invalid pax", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		req := builder.NewBookingBuilder().WithPax(0).BuildCreateRequestDTO()

		_, err := f.uc.CreateDraft(context.Background(), organizationID, "ops", req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown product maps to validation error", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		f.bookingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create booking", nil, infra.KindForeignKeyViolated))

		_, err := f.uc.CreateDraft(context.Background(), organizationID, "ops", req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestBookingUseCase_Transition(t *testing.T) {
	organizationID := uuid.New()
	bookingID := uuid.New()

	t.Run("booking not found", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateQuoted)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("illegal transition rejected before side effects", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateDraft).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)

		// No supplier call, no inventory hold: the state machine gate comes first.
		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateBooked)
		require.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})

	t.Run("terminal state accepts nothing", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateCancelRequested).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)

		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateBooked)
		require.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})

	t.Run("quoted transition persists state and appends event", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		bb := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateDraft)
		b := bb.BuildReconstructed()
		view := bb.WithState(booking.StateQuoted).BuildViewQuery()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), b).
			Return(nil)
		var event *eventlog.Entry
		f.eventRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *eventlog.Entry) (uuid.UUID, error) {
				event = e
				return uuid.New(), nil
			})
		var audit *eventlog.AuditEntry
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *eventlog.AuditEntry) (uuid.UUID, error) {
				audit = e
				return uuid.New(), nil
			})
		f.bookingQueries.EXPECT().
			GetByID(gomock.Any(), organizationID, b.ID()).
			Return(view, nil)

		got, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateQuoted)
		require.NoError(t, err)
		assert.Equal(t, booking.StateQuoted, b.State())
		assert.Equal(t, view, got)

		require.NotNil(t, event)
		assert.Equal(t, booking.EventBookingStateChanged, event.EventType)
		assert.Equal(t, "draft", event.Meta["from"])
		assert.Equal(t, "quoted", event.Meta["to"])

		require.NotNil(t, audit)
		assert.Equal(t, "booking.state_changed", audit.Action)
		assert.Equal(t, "draft", audit.Before["state"])
		assert.Equal(t, "quoted", audit.After["state"])
	})

	t.Run("supplier rejection blocks booked transition", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.supplierAdapter.EXPECT().
			ConfirmBooking(gomock.Any(), b).
			Return(supplier.Confirmation{Status: supplier.StatusRejected}, nil)

		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateBooked)
		require.ErrorIs(t, err, commands.ErrSupplierRejected)
		assert.Equal(t, booking.StateQuoted, b.State())
	})

	t.Run("supplier not supported blocks booked transition", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.supplierAdapter.EXPECT().
			ConfirmBooking(gomock.Any(), b).
			Return(supplier.Confirmation{Status: supplier.StatusNotSupported}, nil)

		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateBooked)
		require.ErrorIs(t, err, commands.ErrSupplierRejected)
	})

	t.Run("supplier outage surfaces as unavailable", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.supplierAdapter.EXPECT().
			ConfirmBooking(gomock.Any(), b).
			Return(supplier.Confirmation{}, context.DeadlineExceeded)

		_, err := f.uc.Transition(context.Background(), organizationID, bookingID, "ops", booking.StateBooked)
		require.ErrorIs(t, err, commands.ErrSupplierUnavailable)
		assert.Equal(t, booking.StateQuoted, b.State())
	})
}

func TestBookingUseCase_Amend(t *testing.T) {
	organizationID := uuid.New()
	bookingID := uuid.New()

	t.Run("amends amount and appends idempotent event", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		bb := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted)
		b := bb.BuildReconstructed()
		view := bb.BuildViewQuery()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), b).
			Return(nil)
		f.eventRepo.EXPECT().
			AppendIdempotent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), true, nil)
		var audit *eventlog.AuditEntry
		f.auditRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *eventlog.AuditEntry) (uuid.UUID, error) {
				audit = e
				return uuid.New(), nil
			})
		f.bookingQueries.EXPECT().
			GetByID(gomock.Any(), organizationID, b.ID()).
			Return(view, nil)

		_, err := f.uc.Amend(context.Background(), organizationID, bookingID, "ops",
			reqdto.AmendBookingRequest{Amount: decimal.NewFromInt(1500)})
		require.NoError(t, err)
		assert.True(t, b.Amount().Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, int32(1), b.AmendSeq())

		require.NotNil(t, audit)
		assert.Equal(t, "booking.amended", audit.Action)
		assert.Equal(t, int32(0), audit.Before["amend_seq"])
		assert.Equal(t, int32(1), audit.After["amend_seq"])
	})

	t.Run("terminal booking cannot be amended", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateCancelRequested).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)

		_, err := f.uc.Amend(context.Background(), organizationID, bookingID, "ops",
			reqdto.AmendBookingRequest{Amount: decimal.NewFromInt(1500)})
		require.ErrorIs(t, err, commands.ErrAmendNotAllowed)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)
		b := builder.NewBookingBuilder().
			WithOrganizationID(organizationID).
			WithState(booking.StateQuoted).
			BuildReconstructed()

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(b, nil)

		_, err := f.uc.Amend(context.Background(), organizationID, bookingID, "ops",
			reqdto.AmendBookingRequest{Amount: decimal.NewFromInt(-10)})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBookingUseCaseFixture(t)

		f.bookingRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), organizationID, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.uc.Amend(context.Background(), organizationID, bookingID, "ops",
			reqdto.AmendBookingRequest{Amount: decimal.NewFromInt(1500)})
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
