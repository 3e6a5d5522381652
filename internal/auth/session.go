package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"connectpro.org/internal/obs"
)

// defaultVerifyDelay models the credential-check round trip of the
// reference deployment.
const defaultVerifyDelay = 1 * time.Second

// Verifier performs the credential check. The demo implementation wraps a
// Directory lookup in a fixed delay; a real deployment replaces it with an
// actual backend call behind the same interface.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (User, error)
}

// DirectoryVerifier verifies credentials against a Directory after an
// artificial, context-aware delay.
type DirectoryVerifier struct {
	Directory Directory
	Delay     time.Duration
}

func (v DirectoryVerifier) Verify(ctx context.Context, email, password string) (User, error) {
	if v.Delay > 0 {
		timer := time.NewTimer(v.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return User{}, ctx.Err()
		case <-timer.C:
		}
	}
	rec, err := v.Directory.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := VerifyPassword(rec.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return rec.User, nil
}

// Store holds the process-wide session state. All mutation goes through
// Login and Logout; State returns consistent snapshots at every observable
// point.
type Store struct {
	verifier Verifier
	team     Team
	now      func() time.Time

	// loginMu serializes whole Login calls, so overlapping attempts run in
	// order instead of interleaving their state writes.
	loginMu sync.Mutex

	mu    sync.RWMutex
	state State
	subs  map[int]chan State
	next  int
}

// StoreOption configures Store behavior.
type StoreOption func(*Store)

// WithVerifier overrides the credential verifier (useful to drop the demo
// delay in tests).
func WithVerifier(v Verifier) StoreOption {
	return func(s *Store) {
		if v != nil {
			s.verifier = v
		}
	}
}

// WithTeam overrides the team assigned to authenticated sessions.
func WithTeam(team Team) StoreOption {
	return func(s *Store) { s.team = team }
}

// WithClock overrides the time source.
func WithClock(fn func() time.Time) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore creates an anonymous session store reading credentials from dir.
func NewStore(dir Directory, opts ...StoreOption) *Store {
	s := &Store{
		verifier: DirectoryVerifier{Directory: dir, Delay: defaultVerifyDelay},
		team:     DefaultTeam(),
		now:      time.Now,
		subs:     make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Team returns the single team configured for this store.
func (s *Store) Team() Team { return s.team }

// Login authenticates the email/password pair and installs the session.
// On mismatch it returns ErrInvalidCredentials and leaves any prior session
// untouched. On context cancellation the loading flag is cleared before the
// error is returned. Concurrent calls are serialized.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	start := s.now()
	s.setLoading(true)

	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.setLoading(false)
		if errors.Is(err, ErrInvalidCredentials) {
			obs.ObserveLogin("failure", s.now().Sub(start))
		} else {
			obs.ObserveLogin("error", s.now().Sub(start))
		}
		return err
	}

	team := s.team
	s.mu.Lock()
	s.state = State{
		User:            &user,
		Team:            &team,
		IsAuthenticated: true,
		IsLoading:       false,
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	obs.SetActiveSessions(1)
	obs.ObserveLogin("success", s.now().Sub(start))
	s.notify(snap)
	return nil
}

// Logout unconditionally resets the session to the anonymous state.
// Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = State{}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	obs.SetActiveSessions(0)
	s.notify(snap)
}

// State returns a copy of the current session snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers an observer. The channel receives a snapshot after
// every state change and is closed when ctx ends. Slow observers miss
// intermediate snapshots instead of blocking mutation.
func (s *Store) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.state.IsLoading = v
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// snapshotLocked copies the state so callers never share pointers with the
// store. Callers must hold s.mu.
func (s *Store) snapshotLocked() State {
	snap := s.state
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	if s.state.Team != nil {
		t := *s.state.Team
		snap.Team = &t
	}
	return snap
}

func (s *Store) notify(snap State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Drop when the subscriber is slow to avoid blocking.
		}
	}
}
