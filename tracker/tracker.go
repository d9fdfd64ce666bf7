package tracker

import (
	"log/slog"

	"github.com/jsphweid/viano/circle"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/util"
)

type (
	// VoiceBackend sounds pitches. Play must not block on the voice's lifetime.
	VoiceBackend interface {
		Play(pitch int) model.Voice
		Stop(voice model.Voice)
	}

	// Renderer shows the instrument state. Calls for elements that are not
	// displayed are expected to be no-ops.
	Renderer interface {
		HighlightSelector(center int, minor bool)
		ShowHint(index int, minor bool)
		HideHint()
		HighlightPianoKey(pitch int)
		UnhighlightPianoKey(pitch int)
		HighlightOverlayKey(key model.Key)
		UnhighlightOverlayKey(key model.Key)
		RefreshOverlayLabels(center int, minor bool, octave int)
	}
)

// Tracker is the session state of one performer: key center, modifiers, the
// keys held down and the notes they sound. It is not safe for concurrent use;
// see Dispatcher.
type Tracker struct {
	mapper *pitch.Mapper
	center *circle.Rotator
	mods   model.Modifiers
	notes  map[model.Key]model.ActiveNote
	down   map[model.Key]bool

	voices VoiceBackend
	render Renderer
	logger *slog.Logger
}

func New(mapper *pitch.Mapper, voices VoiceBackend, render Renderer, logger *slog.Logger) *Tracker {
	if mapper == nil {
		mapper = pitch.Default()
	}
	if render == nil {
		render = nopRenderer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		mapper: mapper,
		center: circle.NewRotator(0),
		notes:  make(map[model.Key]model.ActiveNote),
		down:   make(map[model.Key]bool),
		voices: voices,
		render: render,
		logger: logger,
	}
}

// Refresh pushes the selector, labels and hint to the renderer. Note
// highlights are only ever sent as notes start and stop.
func (t *Tracker) Refresh() {
	t.render.HighlightSelector(t.center.Index(), t.mods.IsMinor)
	t.refreshLabels()
	t.updateHint()
}

// HandleEvent resolves a raw key event and applies it. Repeats are dropped.
func (t *Tracker) HandleEvent(e model.KeyEvent) {
	key := keymap.Resolve(e.Code, e.Key)
	switch e.Type {
	case model.KeyDown:
		if e.Repeat {
			return
		}
		t.KeyDown(key)
	case model.KeyUp:
		t.KeyUp(key)
	default:
		t.logger.Debug("ignoring key event", "type", e.Type, "key", key)
	}
}

// KeyDown handles a fresh press of key. A press of a key that is already down
// is treated as key repeat and ignored.
func (t *Tracker) KeyDown(key model.Key) {
	if t.down[key] {
		return
	}
	t.down[key] = true

	switch key {
	case keymap.ArrowLeft:
		t.Rotate(-1)
	case keymap.ArrowRight:
		t.Rotate(1)
	case keymap.ArrowUp:
		t.AdjustOctave(1)
	case keymap.ArrowDown:
		t.AdjustOctave(-1)
	case keymap.Space:
		t.SetMinor(true)
	default:
		if _, active := t.notes[key]; !active {
			t.start(key)
		}
	}
	t.updateHint()
}

func (t *Tracker) KeyUp(key model.Key) {
	delete(t.down, key)
	if key == keymap.Space {
		t.SetMinor(false)
	} else if n, ok := t.notes[key]; ok {
		t.voices.Stop(n.Voice)
		delete(t.notes, key)
		t.render.UnhighlightPianoKey(n.Pitch)
		t.render.UnhighlightOverlayKey(key)
	}
	t.updateHint()
}

// Rotate moves the key center around the circle of fifths and retunes held notes.
func (t *Tracker) Rotate(direction int) {
	t.center.Rotate(direction)
	t.render.HighlightSelector(t.center.Index(), t.mods.IsMinor)
	t.Rederive()
	t.refreshLabels()
	t.updateHint()
}

// AdjustOctave shifts the left hand octave, clamped to [MinOctave, MaxOctave].
// A press at the boundary changes nothing.
func (t *Tracker) AdjustOctave(direction int) {
	octave := util.Clamp(t.mods.LeftHandOctave+direction, constants.MinOctave, constants.MaxOctave)
	if octave == t.mods.LeftHandOctave {
		return
	}
	t.mods.LeftHandOctave = octave
	t.Rederive()
	t.refreshLabels()
}

func (t *Tracker) SetMinor(minor bool) {
	t.mods.IsMinor = minor
	t.render.HighlightSelector(t.center.Index(), t.mods.IsMinor)
	t.Rederive()
	t.refreshLabels()
	t.updateHint()
}

func (t *Tracker) ToggleMinor() {
	t.SetMinor(!t.mods.IsMinor)
}

// Rederive retunes every held note to the current modifiers: each voice is
// stopped and a new one started at the recomputed pitch.
func (t *Tracker) Rederive() {
	for _, k := range util.SortedKeys(t.notes) {
		old := t.notes[k]
		t.voices.Stop(old.Voice)
		t.render.UnhighlightPianoKey(old.Pitch)
		delete(t.notes, k)
		t.start(k)
	}
}

// Release stops every sounding note and forgets all held keys.
func (t *Tracker) Release() {
	for _, k := range util.SortedKeys(t.notes) {
		n := t.notes[k]
		t.voices.Stop(n.Voice)
		t.render.UnhighlightPianoKey(n.Pitch)
		t.render.UnhighlightOverlayKey(k)
	}
	t.notes = make(map[model.Key]model.ActiveNote)
	t.down = make(map[model.Key]bool)
	t.updateHint()
}

func (t *Tracker) start(key model.Key) {
	p, ok := t.mapper.Resolve(key, t.center.Index(), t.mods.IsMinor, t.mods.LeftHandOctave)
	if !ok {
		return
	}
	v := t.voices.Play(p)
	t.notes[key] = model.ActiveNote{Key: key, Pitch: p, Voice: v}
	t.render.HighlightPianoKey(p)
	t.render.HighlightOverlayKey(key)
}

func (t *Tracker) refreshLabels() {
	t.render.RefreshOverlayLabels(t.center.Index(), t.mods.IsMinor, t.mods.LeftHandOctave)
}

// Hint returns where the selector's direction ring sits: on the previous chord
// while a top row key is held, on the next while a bottom row key is held, on
// the focused chord for the middle row, hidden with no left hand key down.
func (t *Tracker) Hint() model.Hint {
	h := model.Hint{Index: t.center.Index(), Minor: t.mods.IsMinor}
	var top, bottom bool
	for k := range t.down {
		if !keymap.IsLeftHand(k) {
			continue
		}
		h.Visible = true
		top = top || keymap.IsTopRow(k)
		bottom = bottom || keymap.IsBottomRow(k)
	}
	if top {
		h.Index = circle.Wrap(h.Index - 1)
	} else if bottom {
		h.Index = circle.Wrap(h.Index + 1)
	}
	return h
}

func (t *Tracker) updateHint() {
	h := t.Hint()
	if !h.Visible {
		t.render.HideHint()
		return
	}
	t.render.ShowHint(h.Index, h.Minor)
}

func (t *Tracker) Center() int { return t.center.Index() }
func (t *Tracker) Minor() bool { return t.mods.IsMinor }
func (t *Tracker) Octave() int { return t.mods.LeftHandOctave }

func (t *Tracker) Modifiers() model.Modifiers { return t.mods }

func (t *Tracker) Mapper() *pitch.Mapper { return t.mapper }

// ActiveNotes returns the sounding notes ordered by key.
func (t *Tracker) ActiveNotes() []model.ActiveNote {
	res := make([]model.ActiveNote, 0, len(t.notes))
	for _, k := range util.SortedKeys(t.notes) {
		res = append(res, t.notes[k])
	}
	return res
}

// ActiveKeys returns every key currently held down, sounding or not.
func (t *Tracker) ActiveKeys() []model.Key {
	return util.SortedKeys(t.down)
}

func (t *Tracker) IsDown(key model.Key) bool {
	return t.down[key]
}

type nopRenderer struct{}

func (nopRenderer) HighlightSelector(int, bool)         {}
func (nopRenderer) ShowHint(int, bool)                  {}
func (nopRenderer) HideHint()                           {}
func (nopRenderer) HighlightPianoKey(int)               {}
func (nopRenderer) UnhighlightPianoKey(int)             {}
func (nopRenderer) HighlightOverlayKey(model.Key)       {}
func (nopRenderer) UnhighlightOverlayKey(model.Key)     {}
func (nopRenderer) RefreshOverlayLabels(int, bool, int) {}
