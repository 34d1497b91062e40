package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/hausfam/onboarding-service/internal/domain"
	"github.com/hausfam/onboarding-service/internal/domain/wizard"
)

// session pairs one wizard with its own mutex. All reads and writes of the
// wizard state go through withSession, which serializes them; the registry's
// lock only protects the map itself.
type session struct {
	mu      sync.Mutex
	state   *wizard.State
	touched time.Time
}

// sessionRegistry is the in-memory home of all live wizard sessions. Sessions
// are keyed by a random ID handed to the client, expire after the configured
// TTL of inactivity, and are removed on submission. Nothing is persisted; a
// process restart loses all in-flight wizards.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionRegistry(ttl time.Duration, now func() time.Time) *sessionRegistry {
	if now == nil {
		now = time.Now
	}
	return &sessionRegistry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      now,
	}
}

// add stores a fresh wizard and returns its generated session ID.
// Expired sessions are swept opportunistically on each add.
func (r *sessionRegistry) add(state *wizard.State) string {
	id := newSessionID()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	r.sessions[id] = &session{state: state, touched: r.now()}
	return id
}

// get returns the session for id, refreshing its TTL. Unknown and expired
// IDs both report domain.ErrNotFound; an expired session is indistinguishable
// from one that never existed.
func (r *sessionRegistry) get(id string) (*session, error) {
	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()

	if ok && r.expired(sess) {
		r.remove(id)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}

	sess.mu.Lock()
	sess.touched = r.now()
	sess.mu.Unlock()

	return sess, nil
}

// remove drops a session from the registry. Removing an unknown ID is a no-op.
func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) expired(sess *session) bool {
	if r.ttl <= 0 {
		return false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return r.now().Sub(sess.touched) > r.ttl
}

// sweepLocked removes all expired sessions. Caller must hold r.mu.
func (r *sessionRegistry) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, sess := range r.sessions {
		sess.mu.Lock()
		stale := sess.touched.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(r.sessions, id)
		}
	}
}

// newSessionID produces a 128-bit random hex token using crypto/rand.
func newSessionID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
