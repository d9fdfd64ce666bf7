package tracker

import (
	"testing"

	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/stretchr/testify/assert"
)

type stubVoices struct {
	next    uint64
	played  []model.Voice
	stopped []model.Voice
}

func (s *stubVoices) Play(p int) model.Voice {
	s.next++
	v := model.Voice{ID: s.next, Pitch: p}
	s.played = append(s.played, v)
	return v
}

func (s *stubVoices) Stop(v model.Voice) {
	s.stopped = append(s.stopped, v)
}

func (s *stubVoices) playedPitches() []int {
	var res []int
	for _, v := range s.played {
		res = append(res, v.Pitch)
	}
	return res
}

type stubRenderer struct {
	selector   []int
	hint       *model.Hint
	piano      map[int]int
	overlay    map[model.Key]bool
	labelCalls int
	lastOctave int
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{piano: map[int]int{}, overlay: map[model.Key]bool{}}
}

func (r *stubRenderer) HighlightSelector(center int, minor bool) {
	r.selector = append(r.selector, center)
}
func (r *stubRenderer) ShowHint(index int, minor bool) {
	r.hint = &model.Hint{Visible: true, Index: index, Minor: minor}
}
func (r *stubRenderer) HideHint()                         { r.hint = nil }
func (r *stubRenderer) HighlightPianoKey(p int)           { r.piano[p]++ }
func (r *stubRenderer) UnhighlightPianoKey(p int)         { r.piano[p]-- }
func (r *stubRenderer) HighlightOverlayKey(k model.Key)   { r.overlay[k] = true }
func (r *stubRenderer) UnhighlightOverlayKey(k model.Key) { delete(r.overlay, k) }
func (r *stubRenderer) RefreshOverlayLabels(c int, m bool, o int) {
	r.labelCalls++
	r.lastOctave = o
}

func newTracker() (*Tracker, *stubVoices, *stubRenderer) {
	v := &stubVoices{}
	r := newStubRenderer()
	return New(nil, v, r, nil), v, r
}

func down(code int, key string) model.KeyEvent {
	return model.KeyEvent{Type: model.KeyDown, Code: code, Key: key}
}

func up(code int, key string) model.KeyEvent {
	return model.KeyEvent{Type: model.KeyUp, Code: code, Key: key}
}

func TestPressAndReleaseS(t *testing.T) {
	tr, voices, render := newTracker()
	assert := assert.New(t)

	tr.HandleEvent(down(83, "s"))
	assert.Equal([]int{48}, voices.playedPitches())
	assert.Equal(1, render.piano[48])
	assert.True(render.overlay["s"])
	assert.Len(tr.ActiveNotes(), 1)

	tr.HandleEvent(up(83, "s"))
	assert.Len(voices.stopped, 1)
	assert.Equal(voices.played[0], voices.stopped[0])
	assert.Equal(0, render.piano[48])
	assert.False(render.overlay["s"])
	assert.Empty(tr.ActiveNotes())
}

func TestRotateRightThenPress(t *testing.T) {
	tr, voices, render := newTracker()
	tr.HandleEvent(down(39, "ArrowRight"))
	assert.Equal(t, 1, tr.Center())
	assert.Equal(t, []int{1}, render.selector)
	tr.HandleEvent(up(39, "ArrowRight"))

	tr.HandleEvent(down(83, "s"))
	assert.Equal(t, []int{55}, voices.playedPitches())
}

func TestKeyRepeatIsSuppressed(t *testing.T) {
	tr, voices, _ := newTracker()
	tr.HandleEvent(down(81, "q"))
	tr.HandleEvent(down(81, "q"))
	repeat := down(81, "q")
	repeat.Repeat = true
	tr.HandleEvent(repeat)

	assert.Len(t, voices.played, 1)
	assert.Len(t, tr.ActiveNotes(), 1)
}

func TestRepeatedArrowDoesNotRotateTwice(t *testing.T) {
	tr, _, _ := newTracker()
	tr.HandleEvent(down(39, "ArrowRight"))
	tr.HandleEvent(down(39, "ArrowRight"))
	assert.Equal(t, 1, tr.Center())
	tr.HandleEvent(up(39, "ArrowRight"))
	tr.HandleEvent(down(39, "ArrowRight"))
	assert.Equal(t, 2, tr.Center())
}

func TestMinorToggleRederivesHeldNote(t *testing.T) {
	tr, voices, render := newTracker()
	assert := assert.New(t)

	tr.HandleEvent(down(65, "a"))
	assert.Equal([]int{43}, voices.playedPitches())

	tr.HandleEvent(down(32, " "))
	assert.True(tr.Minor())
	assert.Equal([]int{43, 40}, voices.playedPitches())
	assert.Equal([]model.Voice{voices.played[0]}, voices.stopped)
	notes := tr.ActiveNotes()
	assert.Len(notes, 1)
	assert.Equal(40, notes[0].Pitch)
	assert.Equal(voices.played[1], notes[0].Voice)
	assert.Equal(0, render.piano[43])
	assert.Equal(1, render.piano[40])

	tr.HandleEvent(up(32, " "))
	assert.False(tr.Minor())
	assert.Equal([]int{43, 40, 43}, voices.playedPitches())
	assert.Len(tr.ActiveNotes(), 1)
}

func TestSpaceWithRotatedCenter(t *testing.T) {
	tr, voices, _ := newTracker()
	tr.Rotate(1)
	tr.HandleEvent(down(83, "s"))
	tr.HandleEvent(down(32, " "))
	assert.Equal(t, []int{55, 52}, voices.playedPitches())
	assert.Len(t, tr.ActiveNotes(), 1)
	assert.Equal(t, 52, tr.ActiveNotes()[0].Pitch)
}

func TestSpaceNeverBecomesActiveNote(t *testing.T) {
	tr, voices, _ := newTracker()
	tr.HandleEvent(down(32, " "))
	assert.Empty(t, tr.ActiveNotes())
	assert.Empty(t, voices.played)
	assert.Equal(t, []model.Key{keymap.Space}, tr.ActiveKeys())
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	tr, voices, render := newTracker()
	tr.HandleEvent(down(221, "]"))
	tr.HandleEvent(down(49, "1"))
	assert.Empty(t, voices.played)
	assert.Empty(t, tr.ActiveNotes())
	assert.Empty(t, render.overlay)
	assert.Equal(t, []model.Key{"1", "]"}, tr.ActiveKeys())
	tr.HandleEvent(up(49, "1"))
	assert.Empty(t, voices.stopped)
	assert.Equal(t, []model.Key{"]"}, tr.ActiveKeys())
}

func TestOctaveClamp(t *testing.T) {
	tr, _, _ := newTracker()
	for i := 0; i < 5; i++ {
		tr.AdjustOctave(1)
	}
	assert.Equal(t, 2, tr.Octave())
	tr.AdjustOctave(1)
	assert.Equal(t, 2, tr.Octave())
	for i := 0; i < 10; i++ {
		tr.AdjustOctave(-1)
	}
	assert.Equal(t, -2, tr.Octave())
}

func TestOctaveRederivesOnlyOnChange(t *testing.T) {
	tr, voices, render := newTracker()
	tr.HandleEvent(down(83, "s"))
	tr.HandleEvent(down(71, "g"))
	tr.HandleEvent(down(38, "ArrowUp"))
	assert.Equal(t, 1, tr.Octave())
	// both held keys restart; only the left hand one moves
	assert.ElementsMatch(t, []int{48, 69, 60, 69}, voices.playedPitches())
	assert.Equal(t, 1, render.lastOctave)

	tr.AdjustOctave(1)
	played := len(voices.played)
	tr.AdjustOctave(1)
	assert.Equal(t, played, len(voices.played))
}

func TestRotationRederivesAllHeldNotes(t *testing.T) {
	tr, voices, _ := newTracker()
	tr.HandleEvent(down(65, "a"))
	tr.HandleEvent(down(83, "s"))
	tr.HandleEvent(down(68, "d"))
	tr.Rotate(-1)
	assert.Equal(t, 11, tr.Center())
	notes := tr.ActiveNotes()
	assert.Len(t, notes, 3)
	assert.Equal(t, 48, notes[0].Pitch)
	assert.Equal(t, 57, notes[1].Pitch)
	assert.Equal(t, 53, notes[2].Pitch)
	assert.Len(t, voices.stopped, 3)
}

func TestTwelveRotationsRestoreHeldPitch(t *testing.T) {
	tr, _, _ := newTracker()
	tr.HandleEvent(down(86, "v"))
	for i := 0; i < 12; i++ {
		tr.Rotate(1)
	}
	assert.Equal(t, 0, tr.Center())
	assert.Equal(t, 62, tr.ActiveNotes()[0].Pitch)
}

func TestSharedPitchHighlightsAreCounted(t *testing.T) {
	tr, _, render := newTracker()
	tr.HandleEvent(down(81, "q"))
	tr.HandleEvent(down(83, "s"))
	assert.Equal(t, 2, render.piano[48])
	tr.HandleEvent(up(83, "s"))
	assert.Equal(t, 1, render.piano[48])
}

func TestHint(t *testing.T) {
	tr, _, render := newTracker()
	tr.Rotate(3)
	assert.Nil(t, render.hint)

	tr.HandleEvent(down(83, "s"))
	assert.Equal(t, &model.Hint{Visible: true, Index: 3}, render.hint)

	tr.HandleEvent(down(90, "z"))
	assert.Equal(t, 4, render.hint.Index)

	tr.HandleEvent(down(87, "w"))
	assert.Equal(t, 2, render.hint.Index)

	tr.HandleEvent(down(32, " "))
	assert.True(t, render.hint.Minor)

	tr.HandleEvent(up(87, "w"))
	tr.HandleEvent(up(90, "z"))
	tr.HandleEvent(up(83, "s"))
	assert.Nil(t, render.hint)
	assert.False(t, tr.Hint().Visible)
}

func TestHintWrapsAtTop(t *testing.T) {
	tr, _, _ := newTracker()
	tr.KeyDown("q")
	assert.Equal(t, 11, tr.Hint().Index)
}

func TestRightHandDoesNotShowHint(t *testing.T) {
	tr, _, render := newTracker()
	tr.HandleEvent(down(72, "h"))
	assert.Nil(t, render.hint)
}

func TestRelease(t *testing.T) {
	tr, voices, render := newTracker()
	tr.HandleEvent(down(83, "s"))
	tr.HandleEvent(down(72, "h"))
	tr.Release()
	assert.Len(t, voices.stopped, 2)
	assert.Empty(t, tr.ActiveNotes())
	assert.Empty(t, tr.ActiveKeys())
	assert.Empty(t, render.overlay)
	assert.Equal(t, 0, render.piano[48])
	assert.Equal(t, 0, render.piano[71])
}

func TestToggleMinor(t *testing.T) {
	tr, _, _ := newTracker()
	tr.ToggleMinor()
	assert.True(t, tr.Minor())
	tr.ToggleMinor()
	assert.False(t, tr.Minor())
}

func TestRefresh(t *testing.T) {
	tr, _, render := newTracker()
	tr.Refresh()
	assert.Equal(t, []int{0}, render.selector)
	assert.Equal(t, 1, render.labelCalls)
	assert.Nil(t, render.hint)
}

func TestUnknownEventTypeIsIgnored(t *testing.T) {
	tr, voices, _ := newTracker()
	tr.HandleEvent(model.KeyEvent{Type: "press", Code: 83, Key: "s"})
	assert.Empty(t, voices.played)
	assert.Empty(t, tr.ActiveKeys())
}
