package render

import (
	"log/slog"

	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/tracker"
)

// Logged forwards every call to Next and logs it at debug level.
type Logged struct {
	Next   tracker.Renderer
	Logger *slog.Logger
}

func (l Logged) HighlightSelector(center int, minor bool) {
	l.Logger.Debug("highlight selector", "center", center, "minor", minor)
	l.Next.HighlightSelector(center, minor)
}

func (l Logged) ShowHint(index int, minor bool) {
	l.Logger.Debug("show hint", "index", index, "minor", minor)
	l.Next.ShowHint(index, minor)
}

func (l Logged) HideHint() {
	l.Next.HideHint()
}

func (l Logged) HighlightPianoKey(p int) {
	l.Logger.Debug("highlight piano key", "pitch", p, "displayed", IsDisplayed(p))
	l.Next.HighlightPianoKey(p)
}

func (l Logged) UnhighlightPianoKey(p int) {
	l.Logger.Debug("unhighlight piano key", "pitch", p)
	l.Next.UnhighlightPianoKey(p)
}

func (l Logged) HighlightOverlayKey(k model.Key) {
	l.Logger.Debug("highlight overlay key", "key", k)
	l.Next.HighlightOverlayKey(k)
}

func (l Logged) UnhighlightOverlayKey(k model.Key) {
	l.Logger.Debug("unhighlight overlay key", "key", k)
	l.Next.UnhighlightOverlayKey(k)
}

func (l Logged) RefreshOverlayLabels(center int, minor bool, octave int) {
	l.Logger.Debug("refresh overlay labels", "center", center, "minor", minor, "octave", octave)
	l.Next.RefreshOverlayLabels(center, minor, octave)
}
