package domain

// BookingKind tags the request variant so the allocator can handle each
// shape exhaustively instead of guessing from optional fields.
type BookingKind string

const (
	// BookingStandard books consoles and/or the simulator at the given start.
	BookingStandard BookingKind = "standard"
	// BookingChained books consoles plus the simulator starting right
	// after the longest console session ends.
	BookingChained BookingKind = "chained"
	// BookingParty claims the whole inventory at the flat hourly rate.
	BookingParty BookingKind = "party"
)

type ConsoleSelection struct {
	UnitNumber  int
	DurationMin int
	Players     int
}

type SimulatorSelection struct {
	DurationMin int
}

type BookingRequest struct {
	Kind             BookingKind
	Date             string
	StartMin         int
	CustomerRef      string
	PromoCode        string
	Consoles         []ConsoleSelection
	Simulator        *SimulatorSelection
	PartyDurationMin int
}

// PriceRequest is a speculative price query; it shares the selection
// shape with booking but commits nothing.
type PriceRequest struct {
	Selections  []Selection
	CustomerRef string
	PromoCode   string
}
