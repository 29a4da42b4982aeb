package domain

// SnapshotDiff represents the changes between two snapshots of one widget.
// It is designed to be serialized to JSON for partial updates on the client.
type SnapshotDiff struct {
	// WidgetID is always present to identify the target.
	WidgetID string `json:"widget_id"`

	// Committed is set when the committed rating changed.
	Committed *float64 `json:"committed,omitempty"`

	// Preview is set when a preview rating appeared or changed.
	Preview *float64 `json:"preview,omitempty"`

	// PreviewCleared is true when the preview rating went away.
	PreviewCleared bool `json:"preview_cleared,omitempty"`

	// Mode is set when the machine changed state.
	Mode *Mode `json:"mode,omitempty"`
}

// Diff calculates the difference between old and new.
// If old is nil, it returns a diff representing the entire new snapshot (initial load).
// It returns nil when nothing changed.
func Diff(widgetID string, old, new *Snapshot) *SnapshotDiff {
	if new == nil {
		return nil
	}

	diff := &SnapshotDiff{WidgetID: widgetID}

	// 1. Committed rating
	if old == nil || old.Committed != new.Committed {
		v := new.Committed
		diff.Committed = &v
	}

	// 2. Preview rating
	switch {
	case new.Preview != nil && (old == nil || old.Preview == nil || *old.Preview != *new.Preview):
		v := *new.Preview
		diff.Preview = &v
	case new.Preview == nil && old != nil && old.Preview != nil:
		diff.PreviewCleared = true
	}

	// 3. Mode
	if old == nil || old.Mode != new.Mode {
		m := new.Mode
		diff.Mode = &m
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return d.Committed == nil &&
		d.Preview == nil &&
		!d.PreviewCleared &&
		d.Mode == nil
}
