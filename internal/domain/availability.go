package domain

type SlotStatusKind string

const (
	SlotAvailable SlotStatusKind = "available"
	SlotPartial   SlotStatusKind = "partial"
	SlotFull      SlotStatusKind = "full"
)

// Slot is one grid cell of a day's availability view.
type Slot struct {
	StartMin      int            `json:"start_min"`
	Status        SlotStatusKind `json:"status"`
	PlayersBooked int            `json:"players_booked"`
}

// DeviceAvailability answers a concrete candidate-window query. It is
// advisory only: the commit path re-checks inside its own transaction.
type DeviceAvailability struct {
	AvailableConsoleUnits   []int  `json:"available_console_units"`
	SimulatorAvailable      bool   `json:"simulator_available"`
	TotalPlayersOverlapping int    `json:"total_players_overlapping"`
	Closed                  bool   `json:"closed"`
	ClosureReason           string `json:"closure_reason,omitempty"`
}
