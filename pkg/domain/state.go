package domain

// Mode is the conceptual state of the interaction state machine.
type Mode string

const (
	ModeReadOnly Mode = "read_only" // Terminal, no transitions accepted
	ModeIdle     Mode = "idle"      // No active hover
	ModeHovering Mode = "hovering"  // A preview rating is set
)

// Snapshot is a copy of the interaction state of one widget.
// Mutating a Snapshot has no effect on the widget it came from.
type Snapshot struct {
	// Committed is the rating produced by the last accepted click
	// (or the clamped initial rating).
	Committed float64 `json:"committed"`

	// Preview is the hover preview rating, nil when the pointer is not hovering.
	Preview *float64 `json:"preview,omitempty"`

	// Mode is the current state of the machine.
	Mode Mode `json:"mode"`
}

// Displayed returns the rating a surface should paint: the preview while
// hovering, the committed rating otherwise.
func (s Snapshot) Displayed() float64 {
	if s.Preview != nil {
		return *s.Preview
	}
	return s.Committed
}
