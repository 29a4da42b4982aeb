package session

import (
	"context"
	"testing"

	"github.com/aretw0/starrating/internal/runtime"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(func(id string, cfg domain.Config) (ports.Widget, error) {
		return runtime.NewMachine(cfg), nil
	})
	ctx := context.Background()
	count := 1000

	// 1. Create, touch and delete many widgets
	for i := 0; i < count; i++ {
		id, err := mgr.Create(ctx, domain.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		_ = mgr.WithLock(ctx, id, func(ctx context.Context, w ports.Widget) error {
			w.OnPointerMove(domain.At(1, 0.5))
			return nil
		})
		_ = mgr.Delete(ctx, id)
	}

	// 2. Unknown IDs must not leave locks behind either
	_ = mgr.WithLock(ctx, "missing", func(context.Context, ports.Widget) error { return nil })

	// 3. Assert no leak
	if n := len(mgr.locks); n != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Delete", n)
	}
	if n := len(mgr.widgets); n != 0 {
		t.Errorf("%d widgets remaining after Delete", n)
	}
}
