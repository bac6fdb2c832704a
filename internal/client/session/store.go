// Package session implements the client's single source of truth for "who is
// using the application right now".
//
// The Store holds at most one resident profile, persists it to a fixed slot
// in the local key-value storage on every successful mutation, and rehydrates
// it on Initialize. Consumers read state through Profile/IsAuthenticated/
// Loading and are notified of every transition via Subscribe; all mutation
// flows through the exposed operations.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/prepwyse/prepwyse/internal/client/backend"
	"github.com/prepwyse/prepwyse/internal/client/models"
	"github.com/prepwyse/prepwyse/internal/client/repositories/kv"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/logging"
)

// ErrRequestSuperseded is returned by Login/Register when a newer request
// (including Logout) started before this one completed. The stale result is
// discarded and no state changes.
var ErrRequestSuperseded = errors.New("request superseded")

// schemaVersion tags the persisted envelope. Initialize treats any other
// version as "no session" instead of guessing at old layouts.
const schemaVersion = 1

// envelope is the persisted form of the session slot.
type envelope struct {
	SchemaVersion int                 `json:"schema_version"`
	Profile       *models.UserProfile `json:"profile"`
	Token         string              `json:"token"`
}

// Store is the session container. Construct it with New and share the one
// instance; the zero value is not usable.
type Store struct {
	backend    backend.Backend
	repo       kv.Repository
	signingKey []byte
	log        logging.Logger

	mu      sync.Mutex
	profile *models.UserProfile
	token   string
	loading bool
	reqSeq  uint64

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New constructs a Store bound to an auth backend, a durable KV repository,
// and the key used to verify persisted session tokens.
func New(b backend.Backend, repo kv.Repository, signingKey []byte, log logging.Logger) *Store {
	return &Store{
		backend:    b,
		repo:       repo,
		signingKey: signingKey,
		log:        log.With("component", "session"),
		subs:       make(map[int]func()),
	}
}

// Subscribe registers fn to run after every state transition. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Profile returns a copy of the active profile, or nil when logged out.
func (s *Store) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// IsAuthenticated reports whether a profile is resident. It is derived from
// the profile field on every call and can never diverge from it.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

// Loading reports whether an Initialize/Login/Register call is in flight.
// Consumers use it to disable duplicate submissions.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Initialize rehydrates a previously persisted session. A missing, malformed,
// schema-mismatched, or token-expired slot yields a logged-out store and a
// nil error; only an unavailable storage backend is reported as an error
// (wrapped in common.ErrStorageUnavailable). Safe to call more than once.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	s.reqSeq++
	s.loading = true
	s.mu.Unlock()
	s.notify()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	raw, err := s.repo.Get(ctx, common.SessionStorageKey)
	if err != nil {
		s.log.Warn(ctx, "session slot unreadable, starting logged out", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	if raw == nil {
		return nil
	}

	profile, token, ok := s.decode(ctx, raw)
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.profile = profile
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "email", profile.Email)
	return nil
}

// decode validates a persisted envelope. Any defect downgrades to "no
// session" with a warning; it never fails hard.
func (s *Store) decode(ctx context.Context, raw []byte) (*models.UserProfile, string, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.log.Warn(ctx, "discarding malformed session slot", "error", err)
		return nil, "", false
	}
	if env.SchemaVersion != schemaVersion || env.Profile == nil {
		s.log.Warn(ctx, "discarding session slot with unknown schema", "version", env.SchemaVersion)
		return nil, "", false
	}

	userID, err := backend.VerifyToken(env.Token, s.signingKey)
	if err != nil {
		s.log.Warn(ctx, "discarding session with unusable token", "error", err)
		return nil, "", false
	}
	if userID != env.Profile.ID {
		s.log.Warn(ctx, "discarding session: token subject mismatch")
		return nil, "", false
	}

	return env.Profile, env.Token, true
}

// beginRequest marks an auth call in flight and returns its request token.
func (s *Store) beginRequest() uint64 {
	s.mu.Lock()
	s.reqSeq++
	req := s.reqSeq
	s.loading = true
	s.mu.Unlock()
	s.notify()
	return req
}

// completeAuth applies the outcome of a Login/Register call, but only if it
// is still the newest outstanding request; stale completions are discarded
// without touching state.
func (s *Store) completeAuth(ctx context.Context, req uint64, profile *models.UserProfile, token string, err error) error {
	s.mu.Lock()
	if req != s.reqSeq {
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding stale auth completion", "request", req)
		return ErrRequestSuperseded
	}

	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.notify()
		return err
	}

	profile.StudyStreak.Clamp()
	s.profile = profile
	s.token = token
	s.mu.Unlock()
	s.notify()

	return s.persist(ctx, profile, token)
}

// persist writes the full envelope to the session slot. On failure the
// in-memory state stays authoritative for this run; the condition is logged
// and surfaced so the UI can warn that the session will not survive a reload.
func (s *Store) persist(ctx context.Context, profile *models.UserProfile, token string) error {
	raw, err := json.Marshal(envelope{
		SchemaVersion: schemaVersion,
		Profile:       profile,
		Token:         token,
	})
	if err != nil {
		return err
	}

	if err := s.repo.Set(ctx, common.SessionStorageKey, raw); err != nil {
		s.log.Warn(ctx, "session not persisted, will not survive reload", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Login authenticates against the backend and, on success, makes the
// returned profile active and persists it. On failure no state leaks out:
// the store stays exactly as it was.
func (s *Store) Login(ctx context.Context, email, password string) error {
	req := s.beginRequest()
	profile, token, err := s.backend.Login(ctx, email, password)
	return s.completeAuth(ctx, req, profile, token, err)
}

// Register provisions a new account and logs it in. Validation failures come
// back from the backend as validatex errors and leave prior state unchanged.
func (s *Store) Register(ctx context.Context, data models.RegistrationData) error {
	req := s.beginRequest()
	profile, token, err := s.backend.Register(ctx, data)
	return s.completeAuth(ctx, req, profile, token, err)
}

// Logout clears the active profile from memory and from durable storage.
// Calling it while logged out is a no-op. It also supersedes any in-flight
// Login/Register so a stale completion cannot resurrect the session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.reqSeq++
	wasActive := s.profile != nil
	wasLoading := s.loading
	s.profile = nil
	s.token = ""
	s.loading = false
	s.mu.Unlock()

	if !wasActive {
		if wasLoading {
			s.notify()
		}
		return nil
	}
	s.notify()

	if err := s.repo.Delete(ctx, common.SessionStorageKey); err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Update applies typed field updates to the active profile and re-persists
// the result. With no active profile it is a no-op: it neither fails nor
// creates a profile as a side effect. If any update rejects its input, no
// field changes at all.
func (s *Store) Update(ctx context.Context, updates ...ProfileUpdate) error {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return nil
	}

	next := s.profile.Clone()
	for _, apply := range updates {
		if err := apply(next); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	next.StudyStreak.Clamp()

	s.profile = next
	token := s.token
	s.mu.Unlock()
	s.notify()

	return s.persist(ctx, next, token)
}
