package render

import (
	"sync"

	"github.com/jsphweid/viano/circle"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/util"
)

// State keeps the highlight state of the selector, the piano and the overlay
// keys in memory, for front ends that draw from a snapshot.
type State struct {
	mu sync.RWMutex

	mapper  *pitch.Mapper
	center  int
	minor   bool
	octave  int
	hint    model.Hint
	piano   map[int]int
	overlay map[model.Key]bool
	labels  map[model.Key]string
}

func NewState(mapper *pitch.Mapper) *State {
	if mapper == nil {
		mapper = pitch.Default()
	}
	return &State{
		mapper:  mapper,
		piano:   make(map[int]int),
		overlay: make(map[model.Key]bool),
		labels:  make(map[model.Key]string),
	}
}

func IsDisplayed(p int) bool {
	return p >= constants.LowestPianoPitch && p <= constants.HighestPianoPitch
}

func (s *State) HighlightSelector(center int, minor bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.center = circle.Wrap(center)
	s.minor = minor
}

func (s *State) ShowHint(index int, minor bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hint = model.Hint{Visible: true, Index: circle.Wrap(index), Minor: minor}
}

func (s *State) HideHint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hint = model.Hint{}
}

// HighlightPianoKey counts highlights per pitch, so two keys sounding the
// same pitch keep it lit until both are released.
func (s *State) HighlightPianoKey(p int) {
	if !IsDisplayed(p) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.piano[p]++
}

func (s *State) UnhighlightPianoKey(p int) {
	if !IsDisplayed(p) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.piano[p] <= 1 {
		delete(s.piano, p)
		return
	}
	s.piano[p]--
}

func (s *State) HighlightOverlayKey(k model.Key) {
	if !keymap.IsOverlayKey(k) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay[k] = true
}

func (s *State) UnhighlightOverlayKey(k model.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overlay, k)
}

func (s *State) RefreshOverlayLabels(center int, minor bool, octave int) {
	labels := s.mapper.Labels(center, minor, octave)
	for k := range labels {
		if !keymap.IsOverlayKey(k) {
			delete(labels, k)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.octave = octave
	s.labels = labels
}

func (s *State) PianoLit(p int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.piano[p] > 0
}

func (s *State) OverlayLit(k model.Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay[k]
}

func (s *State) Label(k model.Key) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labels[k]
}

// Snapshot copies the current render state. ID and Notes are left for the caller.
func (s *State) Snapshot() model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	labels := make(map[model.Key]string, len(s.labels))
	for k, v := range s.labels {
		labels[k] = v
	}
	return model.State{
		Center:  s.center,
		Chord:   circle.ChordName(s.center, s.minor),
		Minor:   s.minor,
		Octave:  s.octave,
		Hint:    s.hint,
		Piano:   util.SortedKeys(s.piano),
		Overlay: util.SortedKeys(s.overlay),
		Labels:  labels,
	}
}
