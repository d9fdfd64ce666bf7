package cmd

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/viano/chord"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/render"
	"github.com/jsphweid/viano/tracker"
	"golang.org/x/time/rate"
)

var ErrUnknownSession = errors.New("unknown session")

// Session is one browser front end: its own tracker, behind a dispatcher,
// drawing into its own render state.
type Session struct {
	ID string

	dispatch *tracker.Dispatcher
	state    *render.State
	limiter  *rate.Limiter
	status   func(f func())
	logger   *slog.Logger
}

// Apply runs fn on the session's tracker and returns the state right after it.
// A nil fn only reads.
func (s *Session) Apply(ctx context.Context, fn func(*tracker.Tracker)) (model.State, error) {
	var st model.State
	err := s.dispatch.Do(ctx, func(t *tracker.Tracker) {
		if fn != nil {
			fn(t)
		}
		st = s.state.Snapshot()
		st.Notes = t.ActiveNotes()
	})
	if err != nil {
		return st, err
	}
	st.ID = s.ID
	st.Sounding = chord.CreateChordKey(st.Notes)
	if fn != nil {
		sounding, center := st.Sounding, st.Chord
		s.status(func() {
			s.logger.Info("now sounding", "chord", sounding, "center", center)
		})
	}
	return st, nil
}

// Allow reports whether another key event fits the session's rate limit.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// Registry owns the sessions. They all play through one voice backend.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	mapper *pitch.Mapper
	voices tracker.VoiceBackend
	logger *slog.Logger
}

func NewRegistry(mapper *pitch.Mapper, voices tracker.VoiceBackend, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		mapper:   mapper,
		voices:   voices,
		logger:   logger,
	}
}

func (r *Registry) Create() *Session {
	id := uuid.New().String()
	logger := r.logger.With("session", id)

	state := render.NewState(r.mapper)
	var renderer tracker.Renderer = state
	if debug {
		renderer = render.Logged{Next: state, Logger: logger}
	}
	t := tracker.New(r.mapper, r.voices, renderer, logger)
	t.Refresh()

	s := &Session{
		ID:       id,
		dispatch: tracker.NewDispatcher(t),
		state:    state,
		limiter:  rate.NewLimiter(rate.Limit(constants.EventsPerSecond), constants.EventBurst),
		status:   debounce.New(constants.StatusDebounce),
		logger:   logger,
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	logger.Info("session created")
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return s, nil
}

// Delete releases every voice of the session and forgets it.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrUnknownSession
	}
	s.dispatch.Close()
	s.logger.Info("session deleted")
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close deletes every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range sessions {
		s.dispatch.Close()
	}
}
