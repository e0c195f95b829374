package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var (
	testInventory = domain.Inventory{
		ConsoleUnits:         3,
		SimulatorUnits:       1,
		PlayerCeiling:        10,
		MaxPlayersPerConsole: 4,
	}
	testHours = domain.OperatingHours{OpenMin: 600, CloseMin: 1320} // 10:00-22:00
)

func testRateTable() *domain.RateTable {
	return &domain.RateTable{
		Version: 1,
		Console: map[int]map[int]decimal.Decimal{
			1: {30: decimal.NewFromInt(50), 60: decimal.NewFromInt(90), 90: decimal.NewFromInt(130), 120: decimal.NewFromInt(160)},
			2: {30: decimal.NewFromInt(80), 60: decimal.NewFromInt(150), 90: decimal.NewFromInt(210), 120: decimal.NewFromInt(260)},
		},
		Simulator: map[int]decimal.Decimal{
			30: decimal.NewFromInt(70), 60: decimal.NewFromInt(120), 90: decimal.NewFromInt(170), 120: decimal.NewFromInt(220),
		},
		PartyHourly: decimal.NewFromInt(400),
	}
}

type bookingMocks struct {
	reservations *mocks.MockReservationRepo
	closures     *mocks.MockClosureRepo
	promos       *mocks.MockPromoRepo
	rates        *mocks.MockRateRepo
	memberships  *mocks.MockMembershipRepo
	cache        *mocks.MockSlotCache
	notifier     *mocks.MockReservationNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		reservations: mocks.NewMockReservationRepo(t),
		closures:     mocks.NewMockClosureRepo(t),
		promos:       mocks.NewMockPromoRepo(t),
		rates:        mocks.NewMockRateRepo(t),
		memberships:  mocks.NewMockMembershipRepo(t),
		cache:        mocks.NewMockSlotCache(t),
		notifier:     mocks.NewMockReservationNotifier(t),
	}
	log := newTestLogger(t)

	pricing := NewPricingService(m.rates, m.memberships, m.promos, log)
	svc := NewBookingService(
		m.reservations, m.closures, m.promos, pricing,
		m.cache, m.notifier, testInventory, testHours, log,
	)
	return svc, m
}

func TestBookingService_Create_Standard(t *testing.T) {
	svc, m := newBookingService(t)

	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	r := reservations[0]
	assert.Equal(t, domain.ReservationKindDevice, r.Kind)
	assert.Equal(t, domain.DeviceConsole, r.DeviceType)
	assert.Equal(t, 1, r.UnitNumber)
	assert.Equal(t, 600, r.StartMin)
	assert.True(t, r.Price.Equal(decimal.NewFromInt(150)), "price = %s", r.Price)
	assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)
	assert.NotEmpty(t, r.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ChainedSimulatorStartsAfterConsoles(t *testing.T) {
	svc, m := newBookingService(t)

	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingChained,
		Date:        "2026-09-01",
		StartMin:    840, // 14:00
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 90, Players: 2}},
		Simulator:   &domain.SimulatorSelection{DurationMin: 60},
	})

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	sim := reservations[1]
	assert.Equal(t, domain.DeviceSimulator, sim.DeviceType)
	assert.Equal(t, 930, sim.StartMin, "simulator should start at 15:30")
	assert.True(t, sim.Price.Equal(decimal.NewFromInt(120)))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_PromoBonusShiftsChainedSimulator(t *testing.T) {
	svc, m := newBookingService(t)

	promo := &domain.PromoCode{Code: "EXTRA15", BonusMinutes: 15, Active: true}
	m.promos.EXPECT().GetByCode(mock.Anything, "EXTRA15").Return(promo, nil)
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingChained,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		PromoCode:   "EXTRA15",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 2, DurationMin: 60, Players: 2}},
		Simulator:   &domain.SimulatorSelection{DurationMin: 30},
	})

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, 15, reservations[0].BonusMin)
	// Console holds its unit until 11:15, so the simulator chain starts then.
	assert.Equal(t, 675, reservations[1].StartMin)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_MissingPromoBooksWithoutBonus(t *testing.T) {
	svc, m := newBookingService(t)

	m.promos.EXPECT().GetByCode(mock.Anything, "GHOST").Return(nil, domain.ErrPromoNotFound)
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		PromoCode:   "GHOST",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Zero(t, reservations[0].BonusMin)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_MemberDiscountReachesCommittedRows(t *testing.T) {
	svc, m := newBookingService(t)

	percent := decimal.NewFromInt(50)
	membership := &domain.Membership{
		CustomerRef:     "cust-1",
		PlanTier:        "gold",
		DiscountPercent: &percent,
		RemainingHours:  decimal.NewFromInt(10),
	}
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(membership, nil)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
		Simulator:   &domain.SimulatorSelection{DurationMin: 60},
	})

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	// Console table price is 150, halved by the membership; the
	// simulator stays at full rate.
	assert.True(t, reservations[0].Price.Equal(decimal.NewFromInt(75)), "console price = %s", reservations[0].Price)
	assert.True(t, reservations[1].Price.Equal(decimal.NewFromInt(120)), "simulator price = %s", reservations[1].Price)

	quoted, err := svc.pricing.Calculate(context.Background(), domain.PriceRequest{
		Selections: []domain.Selection{
			{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2},
			{Kind: domain.SelectionSimulator, UnitNumber: 1, DurationMin: 60},
		},
		CustomerRef: "cust-1",
	})
	require.NoError(t, err)

	committed := decimal.Zero
	for _, r := range reservations {
		committed = committed.Add(r.Price)
	}
	assert.True(t, committed.Equal(quoted.Total), "committed %s, quoted %s", committed, quoted.Total)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_Party(t *testing.T) {
	svc, m := newBookingService(t)

	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservations, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:             domain.BookingParty,
		Date:             "2026-09-01",
		StartMin:         720,
		CustomerRef:      "cust-1",
		PartyDurationMin: 90,
	})

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, domain.ReservationKindParty, reservations[0].Kind)
	assert.True(t, reservations[0].Price.Equal(decimal.NewFromInt(600)), "price = %s", reservations[0].Price)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BookingRequest
	}{
		{
			name: "bad date",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "01.09.2026", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
			},
		},
		{
			name: "missing customer",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600,
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
			},
		},
		{
			name: "unknown kind",
			req:  domain.BookingRequest{Kind: "vip", Date: "2026-09-01", StartMin: 600, CustomerRef: "c"},
		},
		{
			name: "no devices selected",
			req:  domain.BookingRequest{Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600, CustomerRef: "c"},
		},
		{
			name: "party with device selections",
			req: domain.BookingRequest{
				Kind: domain.BookingParty, Date: "2026-09-01", StartMin: 600, CustomerRef: "c", PartyDurationMin: 60,
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
			},
		},
		{
			name: "chained without simulator",
			req: domain.BookingRequest{
				Kind: domain.BookingChained, Date: "2026-09-01", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
			},
		},
		{
			name: "nonexistent console unit",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 4, DurationMin: 60, Players: 2}},
			},
		},
		{
			name: "unit selected twice",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{
					{UnitNumber: 1, DurationMin: 60, Players: 2},
					{UnitNumber: 1, DurationMin: 30, Players: 1},
				},
			},
		},
		{
			name: "too many players on one console",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 5}},
			},
		},
		{
			name: "off-grid duration",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 600, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 45, Players: 2}},
			},
		},
		{
			name: "session past closing",
			req: domain.BookingRequest{
				Kind: domain.BookingStandard, Date: "2026-09-01", StartMin: 1290, CustomerRef: "c",
				Consoles: []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)

			_, err := svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_Closed(t *testing.T) {
	svc, m := newBookingService(t)

	closure := &domain.Closure{
		ID:     "cl1",
		Date:   "2026-09-01",
		Type:   domain.ClosureFullDay,
		Reason: "private event",
	}
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return([]*domain.Closure{closure}, nil)

	_, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClosed)
	assert.Contains(t, err.Error(), "private event")
}

func TestBookingService_Create_ConflictPropagates(t *testing.T) {
	svc, m := newBookingService(t)

	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Create_CapacityPropagates(t *testing.T) {
	svc, m := newBookingService(t)

	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	m.memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	m.reservations.EXPECT().CreateSet(mock.Anything, mock.Anything).Return(domain.ErrCapacity)

	_, err := svc.Create(context.Background(), domain.BookingRequest{
		Kind:        domain.BookingStandard,
		Date:        "2026-09-01",
		StartMin:    600,
		CustomerRef: "cust-1",
		Consoles:    []domain.ConsoleSelection{{UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, m := newBookingService(t)

	reservation := &domain.Reservation{ID: "r1", Date: "2026-09-01", Status: domain.ReservationStatusConfirmed}
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	m.reservations.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, reservation).Return()

	err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.reservations.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestBookingService_Update_Success(t *testing.T) {
	svc, m := newBookingService(t)

	duration := 90
	updated := &domain.Reservation{ID: "r1", Date: "2026-09-01", DurationMin: 90}
	m.reservations.EXPECT().UpdateWindow(mock.Anything, "r1", &duration, mock.Anything).Return(nil)
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(updated, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "2026-09-01").Return()

	result, err := svc.Update(context.Background(), "r1", &duration, nil)

	require.NoError(t, err)
	assert.Equal(t, 90, result.DurationMin)
}

func TestBookingService_Update_InvalidDuration(t *testing.T) {
	svc, _ := newBookingService(t)

	duration := 45
	_, err := svc.Update(context.Background(), "r1", &duration, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Update_NegativePrice(t *testing.T) {
	svc, _ := newBookingService(t)

	price := decimal.NewFromInt(-10)
	_, err := svc.Update(context.Background(), "r1", nil, &price)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Update_ConflictOnExtension(t *testing.T) {
	svc, m := newBookingService(t)

	duration := 120
	current := &domain.Reservation{ID: "r1", Date: "2026-09-01", StartMin: 600, DurationMin: 60}
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(nil, nil)
	m.reservations.EXPECT().UpdateWindow(mock.Anything, "r1", &duration, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.Update(context.Background(), "r1", &duration, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Update_ExtensionPastClosing(t *testing.T) {
	svc, m := newBookingService(t)

	// 21:00 + 120 would run until 23:00, past the 22:00 close.
	duration := 120
	current := &domain.Reservation{ID: "r1", Date: "2026-09-01", StartMin: 1260, DurationMin: 30}
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)

	_, err := svc.Update(context.Background(), "r1", &duration, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Update_ExtensionIntoClosure(t *testing.T) {
	svc, m := newBookingService(t)

	duration := 90
	current := &domain.Reservation{ID: "r1", Date: "2026-09-01", StartMin: 720, DurationMin: 30}
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)
	m.closures.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return([]*domain.Closure{
		{ID: "cl1", Date: "2026-09-01", Type: domain.ClosureTimeRange, StartMin: 780, EndMin: 900, Reason: "tournament"},
	}, nil)

	_, err := svc.Update(context.Background(), "r1", &duration, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClosed)
	assert.Contains(t, err.Error(), "tournament")
}

func TestBookingService_ListByDate(t *testing.T) {
	svc, m := newBookingService(t)

	rows := []*domain.Reservation{{ID: "r1", Date: "2026-09-01"}}
	m.reservations.EXPECT().ListByDate(mock.Anything, "2026-09-01").Return(rows, nil)

	result, err := svc.ListByDate(context.Background(), "2026-09-01")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListByDate_BadDate(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.ListByDate(context.Background(), "not-a-date")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CompleteFinished(t *testing.T) {
	svc, m := newBookingService(t)

	completed := []*domain.Reservation{{ID: "r1", Date: "2026-09-01"}}
	m.reservations.EXPECT().CompleteFinished(mock.Anything, mock.Anything, mock.Anything).Return(completed, nil)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_CompleteFinished_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.reservations.EXPECT().CompleteFinished(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteFinished(context.Background())

	require.Error(t, err)
}
