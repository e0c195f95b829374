package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInventory = Inventory{
	ConsoleUnits:         3,
	SimulatorUnits:       1,
	PlayerCeiling:        10,
	MaxPlayersPerConsole: 4,
}

func consoleRow(unit, startMin, durationMin, bonusMin, players int) *Reservation {
	return &Reservation{
		ID:          "r-test",
		Kind:        ReservationKindDevice,
		DeviceType:  DeviceConsole,
		UnitNumber:  unit,
		Date:        "2026-09-01",
		StartMin:    startMin,
		DurationMin: durationMin,
		BonusMin:    bonusMin,
		Players:     players,
		Status:      ReservationStatusConfirmed,
	}
}

func simulatorRow(startMin, durationMin int) *Reservation {
	return &Reservation{
		ID:          "r-sim",
		Kind:        ReservationKindDevice,
		DeviceType:  DeviceSimulator,
		UnitNumber:  1,
		Date:        "2026-09-01",
		StartMin:    startMin,
		DurationMin: durationMin,
		Status:      ReservationStatusConfirmed,
	}
}

func partyRow(startMin, durationMin int) *Reservation {
	return &Reservation{
		ID:          "r-party",
		Kind:        ReservationKindParty,
		Date:        "2026-09-01",
		StartMin:    startMin,
		DurationMin: durationMin,
		Status:      ReservationStatusConfirmed,
	}
}

func TestCheckAllocation_SameUnitOverlap(t *testing.T) {
	existing := []*Reservation{consoleRow(1, 600, 60, 0, 2)}
	incoming := []*Reservation{consoleRow(1, 630, 60, 0, 2)}

	err := CheckAllocation(existing, incoming, testInventory)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckAllocation_AbuttingWindowsAllowed(t *testing.T) {
	existing := []*Reservation{consoleRow(1, 600, 60, 0, 2)}
	incoming := []*Reservation{consoleRow(1, 660, 60, 0, 2)}

	assert.NoError(t, CheckAllocation(existing, incoming, testInventory))
}

func TestCheckAllocation_DifferentUnitsCoexist(t *testing.T) {
	existing := []*Reservation{consoleRow(1, 600, 60, 0, 2)}
	incoming := []*Reservation{consoleRow(2, 600, 60, 0, 2), simulatorRow(600, 60)}

	assert.NoError(t, CheckAllocation(existing, incoming, testInventory))
}

func TestCheckAllocation_BonusMinutesExtendWindow(t *testing.T) {
	// The existing session ends at 11:30 once its 30 bonus minutes are
	// counted, so a new 11:00 booking on the same unit must fail.
	existing := []*Reservation{consoleRow(1, 600, 60, 30, 2)}
	incoming := []*Reservation{consoleRow(1, 660, 60, 0, 2)}

	err := CheckAllocation(existing, incoming, testInventory)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckAllocation_PartyBlocksEverything(t *testing.T) {
	existing := []*Reservation{partyRow(600, 120)}

	err := CheckAllocation(existing, []*Reservation{consoleRow(2, 630, 60, 0, 1)}, testInventory)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	err = CheckAllocation(existing, []*Reservation{simulatorRow(660, 30)}, testInventory)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckAllocation_PartyBlockedByAnyDevice(t *testing.T) {
	existing := []*Reservation{simulatorRow(660, 60)}
	incoming := []*Reservation{partyRow(600, 120)}

	err := CheckAllocation(existing, incoming, testInventory)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckAllocation_PartyAfterDevicesRelease(t *testing.T) {
	existing := []*Reservation{consoleRow(1, 600, 60, 0, 2)}
	incoming := []*Reservation{partyRow(660, 120)}

	assert.NoError(t, CheckAllocation(existing, incoming, testInventory))
}

func TestCheckAllocation_PlayerCeiling(t *testing.T) {
	existing := []*Reservation{
		consoleRow(1, 600, 60, 0, 4),
		consoleRow(2, 600, 60, 0, 4),
	}
	incoming := []*Reservation{consoleRow(3, 630, 60, 0, 3)} // 4+4+3 = 11 > 10

	err := CheckAllocation(existing, incoming, testInventory)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestCheckAllocation_PlayerCeilingExactFits(t *testing.T) {
	existing := []*Reservation{
		consoleRow(1, 600, 60, 0, 4),
		consoleRow(2, 600, 60, 0, 4),
	}
	incoming := []*Reservation{consoleRow(3, 600, 60, 0, 2)} // exactly 10

	assert.NoError(t, CheckAllocation(existing, incoming, testInventory))
}

func TestCheckAllocation_CeilingIgnoresSimulator(t *testing.T) {
	existing := []*Reservation{
		consoleRow(1, 600, 60, 0, 4),
		consoleRow(2, 600, 60, 0, 4),
		simulatorRow(600, 60),
	}
	incoming := []*Reservation{consoleRow(3, 600, 60, 0, 2)}

	assert.NoError(t, CheckAllocation(existing, incoming, testInventory))
}

func TestCheckAllocation_IntraRequestCollision(t *testing.T) {
	incoming := []*Reservation{
		consoleRow(1, 600, 60, 0, 2),
		consoleRow(1, 630, 60, 0, 2),
	}

	err := CheckAllocation(nil, incoming, testInventory)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckAllocation_CancelledRowsIgnored(t *testing.T) {
	cancelled := consoleRow(1, 600, 60, 0, 2)
	cancelled.Status = ReservationStatusCancelled

	incoming := []*Reservation{consoleRow(1, 600, 60, 0, 2)}

	assert.NoError(t, CheckAllocation([]*Reservation{cancelled}, incoming, testInventory))
}
