package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// fakeClock is a manually advanced clock for registry expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSessionRegistry_AddAndGet(t *testing.T) {
	t.Parallel()

	r := newSessionRegistry(time.Hour, nil)
	id := r.add(wizard.New("user-1", "Lena Huber"))

	if id == "" {
		t.Fatal("add() returned empty ID")
	}

	sess, err := r.get(id)
	if err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if sess.state.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q, want user-1", sess.state.OwnerID)
	}
}

func TestSessionRegistry_UniqueIDs(t *testing.T) {
	t.Parallel()

	r := newSessionRegistry(time.Hour, nil)
	a := r.add(wizard.New("user-1", ""))
	b := r.add(wizard.New("user-1", ""))

	if a == b {
		t.Errorf("add() produced duplicate IDs %q", a)
	}
}

func TestSessionRegistry_Expiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	r := newSessionRegistry(time.Hour, clock.Now)
	id := r.add(wizard.New("user-1", ""))

	clock.Advance(61 * time.Minute)

	if _, err := r.get(id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get() after TTL error = %v, want ErrNotFound", err)
	}
}

func TestSessionRegistry_GetRefreshesTTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	r := newSessionRegistry(time.Hour, clock.Now)
	id := r.add(wizard.New("user-1", ""))

	clock.Advance(45 * time.Minute)
	if _, err := r.get(id); err != nil {
		t.Fatalf("get() error = %v", err)
	}

	// 45 more minutes since the refresh, 90 since creation.
	clock.Advance(45 * time.Minute)
	if _, err := r.get(id); err != nil {
		t.Errorf("get() after refresh error = %v", err)
	}
}

func TestSessionRegistry_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	r := newSessionRegistry(0, clock.Now)
	id := r.add(wizard.New("user-1", ""))

	clock.Advance(24 * 365 * time.Hour)

	if _, err := r.get(id); err != nil {
		t.Errorf("get() with zero TTL error = %v", err)
	}
}

func TestSessionRegistry_RemoveUnknown(t *testing.T) {
	t.Parallel()

	r := newSessionRegistry(time.Hour, nil)
	r.remove("no-such-session")
}

func TestSessionRegistry_SweepOnAdd(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	r := newSessionRegistry(time.Hour, clock.Now)
	stale := r.add(wizard.New("user-1", ""))

	clock.Advance(2 * time.Hour)
	r.add(wizard.New("user-2", ""))

	r.mu.RLock()
	_, ok := r.sessions[stale]
	r.mu.RUnlock()
	if ok {
		t.Error("stale session survived the sweep")
	}
}

func TestSessionRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := newSessionRegistry(time.Hour, nil)
	id := r.add(wizard.New("user-1", ""))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			switch n % 3 {
			case 0:
				r.add(wizard.New("user-2", ""))
			case 1:
				_, _ = r.get(id)
			default:
				sess, err := r.get(id)
				if err != nil {
					return
				}
				sess.mu.Lock()
				sess.state.SetChildCount(n)
				sess.mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
}
