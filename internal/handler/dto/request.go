package dto

type SelectionRequest struct {
	Type        string `json:"type" binding:"required,oneof=console simulator party"`
	UnitNumber  int    `json:"unit_number"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
	Players     int    `json:"players"`
}

type PriceRequest struct {
	Selections  []SelectionRequest `json:"selections" binding:"required,min=1,dive"`
	CustomerRef string             `json:"customer_ref"`
	PromoCode   string             `json:"promo_code"`
}

type ConsoleSelectionRequest struct {
	UnitNumber  int `json:"unit_number" binding:"required,gt=0"`
	DurationMin int `json:"duration_min" binding:"required,gt=0"`
	Players     int `json:"players" binding:"required,gt=0"`
}

type SimulatorSelectionRequest struct {
	DurationMin int `json:"duration_min" binding:"required,gt=0"`
}

type CreateReservationRequest struct {
	Kind             string                     `json:"kind" binding:"required,oneof=standard chained party"`
	Date             string                     `json:"date" binding:"required"`
	Time             string                     `json:"time" binding:"required"`
	CustomerRef      string                     `json:"customer_ref" binding:"required"`
	PromoCode        string                     `json:"promo_code"`
	Consoles         []ConsoleSelectionRequest  `json:"consoles" binding:"dive"`
	Simulator        *SimulatorSelectionRequest `json:"simulator"`
	PartyDurationMin int                        `json:"party_duration_min"`
}

type UpdateReservationRequest struct {
	DurationMin *int    `json:"duration_min"`
	Price       *string `json:"price"`
}

type CreateClosureRequest struct {
	Date      string `json:"date" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=full_day time_range"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}
