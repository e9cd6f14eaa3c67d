package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T, cfg PoolConfig) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestNewPoolsBuildsBothPools(t *testing.T) {
	pools := newTestPools(t, DefaultPoolConfig())
	if pools.General == nil || pools.Notify == nil {
		t.Fatalf("pools not fully built: general=%v notify=%v", pools.General, pools.Notify)
	}
}

func TestSubmitRunsTask(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 4, NotifyPoolSize: 2})

	done := make(chan struct{})
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t, DefaultPoolConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task ran despite cancelled context")
	})
	if err != context.Canceled {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestSubmitSkipsTaskCancelledWhileQueued(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 1, NotifyPoolSize: 1})

	// Occupy the single worker so the next task has to wait.
	release := make(chan struct{})
	started := make(chan struct{})
	_ = pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() { //nolint:naked-goroutine // test helper
		defer wg.Done()
		_ = pools.General.Submit(ctx, func(ctx context.Context) {
			ran.Store(true)
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	close(release)
	wg.Wait()

	// Timing decides whether the queued task was picked up before the
	// cancel; either way the submit path must not panic or deadlock.
	_ = ran.Load()
}

func TestSubmitDetachedRoutesByName(t *testing.T) {
	for _, name := range []string{"notify", "general", "somewhere-else"} {
		t.Run(name, func(t *testing.T) {
			pools := newTestPools(t, DefaultPoolConfig())

			done := make(chan struct{})
			if err := pools.SubmitDetached(name, func(ctx context.Context) {
				close(done)
			}); err != nil {
				t.Fatalf("SubmitDetached(%q) error = %v", name, err)
			}

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("SubmitDetached(%q) task never ran", name)
			}
		})
	}
}

func TestSubmitDetachedAfterShutdownIsSkipped(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	pools.Shutdown()

	// Shutdown cancels the service context, so a late submit is refused
	// before it ever reaches the pool.
	err = pools.SubmitDetached("notify", func(ctx context.Context) {
		t.Error("detached task ran after shutdown")
	})
	if err != context.Canceled {
		t.Errorf("SubmitDetached() after shutdown error = %v, want context.Canceled", err)
	}
	time.Sleep(20 * time.Millisecond)
}

func TestMetricsReportCapacities(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 8, NotifyPoolSize: 3})

	m := pools.Metrics()
	general, ok := m["general"].(map[string]int)
	if !ok {
		t.Fatal("general metrics missing")
	}
	notify, ok := m["notify"].(map[string]int)
	if !ok {
		t.Fatal("notify metrics missing")
	}
	if general["cap"] != 8 {
		t.Errorf("general cap = %d, want 8", general["cap"])
	}
	if notify["cap"] != 3 {
		t.Errorf("notify cap = %d, want 3", notify["cap"])
	}
}
