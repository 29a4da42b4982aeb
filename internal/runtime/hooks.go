package runtime

import (
	"context"

	"github.com/aretw0/starrating/pkg/domain"
)

func (m *Machine) emit(kind domain.EventType, rating, previous float64, deselected bool) {
	var hook func(context.Context, *domain.RatingEvent)
	switch kind {
	case domain.EventPreview:
		hook = m.hooks.OnPreview
	case domain.EventLeave:
		hook = m.hooks.OnLeave
	case domain.EventCommit:
		hook = m.hooks.OnCommit
	}
	if hook == nil {
		return
	}

	hook(context.Background(), &domain.RatingEvent{
		Timestamp:  m.now(),
		Type:       kind,
		WidgetID:   m.id,
		Rating:     rating,
		Previous:   previous,
		Deselected: deselected,
	})
}

func (m *Machine) paint() {
	if m.surface == nil {
		return
	}
	m.surface.Paint(m.Frame())
}
