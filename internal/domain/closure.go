package domain

import "time"

type ClosureType string

const (
	ClosureFullDay   ClosureType = "full_day"
	ClosureTimeRange ClosureType = "time_range"
)

// Closure is an administrator-defined blackout window overriding all
// other availability for its date.
type Closure struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Type      ClosureType `json:"type"`
	StartMin  int         `json:"start_min,omitempty"`
	EndMin    int         `json:"end_min,omitempty"`
	Reason    string      `json:"reason"`
	CreatedAt time.Time   `json:"created_at"`
}

// Blocks reports whether the closure covers any part of the half-open
// window [startMin, endMin) on its own date.
func (c *Closure) Blocks(startMin, endMin int) bool {
	if c.Type == ClosureFullDay {
		return true
	}
	return Overlaps(startMin, endMin, c.StartMin, c.EndMin)
}

type CreateClosureInput struct {
	Date     string
	Type     ClosureType
	StartMin int
	EndMin   int
	Reason   string
}

// FindBlocking returns the first closure blocking the window, or nil.
func FindBlocking(closures []*Closure, startMin, endMin int) *Closure {
	for _, c := range closures {
		if c.Blocks(startMin, endMin) {
			return c
		}
	}
	return nil
}
