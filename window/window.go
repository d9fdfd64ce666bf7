package window

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jsphweid/viano/circle"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/render"
	"github.com/jsphweid/viano/tracker"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 1240
	screenHeight = 560

	circleX      = 420
	circleY      = 10
	circleSize   = 400
	circleRadius = 170

	keySize = 40
	keyGap  = 5

	naturalWidth  = 34
	naturalHeight = 101
	sharpWidth    = 26
	sharpHeight   = 62
)

var (
	background = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	highlight  = color.RGBA{0xa3, 0xd8, 0xf4, 0xff}
	minorRing  = color.RGBA{0xff, 0x99, 0x99, 0xff}
	grey       = color.RGBA{0x88, 0x88, 0x88, 0xff}

	face = text.NewGoXFace(basicfont.Face7x13)
)

// Game draws the instrument from a render.State and feeds keyboard input to
// the tracker. ebiten calls Update and Draw from one goroutine, so the tracker
// needs no dispatcher here.
type Game struct {
	tracker *tracker.Tracker
	state   *render.State
	keys    []ebiten.Key
}

func New(t *tracker.Tracker, s *render.State) *Game {
	return &Game{tracker: t, state: s}
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if id, ok := identifier(k); ok {
			g.tracker.KeyDown(id)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if id, ok := identifier(k); ok {
			g.tracker.KeyUp(id)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.state.Snapshot()
	lit := make(map[model.Key]bool, len(snap.Overlay))
	for _, k := range snap.Overlay {
		lit[k] = true
	}
	drawCircle(screen, snap)
	drawOverlay(screen, keymap.LeftOverlay, 4, 10, snap.Labels, lit)
	drawOverlay(screen, keymap.RightOverlay, 7, screenWidth-7*(keySize+keyGap)-10, snap.Labels, lit)
	drawPiano(screen, snap.Piano)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawCircle(dst *ebiten.Image, snap model.State) {
	cx, cy := float64(circleX+circleSize/2), float64(circleY+circleSize/2)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), circleSize/2, color.White, true)

	majors, minors := circle.Names(false), circle.Names(true)
	for i := range majors {
		x, y := circle.Position(i, circleRadius, cx, cy)
		fg := color.Color(color.Black)
		if i == snap.Center {
			vector.DrawFilledCircle(dst, float32(x), float32(y), 30, color.Black, true)
			fg = color.White
		}
		major, minor := majors[i], minors[i]
		// the active quality is marked, there is no bold in the bitmap font
		if snap.Minor {
			minor = "*" + minor
		} else {
			major = "*" + major
		}
		drawText(dst, major, x-14, y-14, fg)
		drawText(dst, minor, x-14, y+2, fg)
	}

	if snap.Hint.Visible {
		x, y := circle.Position(snap.Hint.Index, circleRadius, cx, cy)
		ring := color.Color(highlight)
		if snap.Hint.Minor {
			ring = minorRing
		}
		vector.StrokeCircle(dst, float32(x), float32(y), 30, 3, ring, true)
	}
}

func drawOverlay(dst *ebiten.Image, keys []model.Key, columns int, left float64, labels map[model.Key]string, lit map[model.Key]bool) {
	for i, k := range keys {
		x := left + float64((i%columns)*(keySize+keyGap))
		y := 10 + float64((i/columns)*(keySize+keyGap))
		fill := color.Color(color.White)
		if lit[k] {
			fill = highlight
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), keySize, keySize, fill, false)
		vector.StrokeRect(dst, float32(x), float32(y), keySize, keySize, 1, color.Black, false)
		drawText(dst, strings.ToUpper(string(k)), x+16, y+3, color.Black)
		drawText(dst, labels[k], x+5, y+22, grey)
	}
}

func drawPiano(dst *ebiten.Image, lit []int) {
	on := make(map[int]bool, len(lit))
	for _, p := range lit {
		on[p] = true
	}
	naturals := 0
	for p := constants.LowestPianoPitch; p <= constants.HighestPianoPitch; p++ {
		if !pitch.IsAccidental(p) {
			naturals++
		}
	}
	left := float64(screenWidth-naturals*naturalWidth) / 2
	top := float64(screenHeight - naturalHeight - 10)

	// naturals first, sharps on top straddling the boundary to their right
	x := left
	for p := constants.LowestPianoPitch; p <= constants.HighestPianoPitch; p++ {
		if pitch.IsAccidental(p) {
			continue
		}
		fill := color.Color(color.White)
		if on[p] {
			fill = highlight
		}
		vector.DrawFilledRect(dst, float32(x), float32(top), naturalWidth, naturalHeight, fill, false)
		vector.StrokeRect(dst, float32(x), float32(top), naturalWidth, naturalHeight, 1, color.Black, false)
		drawText(dst, pitch.NoteName(p), x+4, top+4, color.Black)
		x += naturalWidth
	}
	x = left
	for p := constants.LowestPianoPitch; p <= constants.HighestPianoPitch; p++ {
		if !pitch.IsAccidental(p) {
			x += naturalWidth
			continue
		}
		fill := color.Color(color.Black)
		if on[p] {
			fill = highlight
		}
		vector.DrawFilledRect(dst, float32(x-sharpWidth/2), float32(top), sharpWidth, sharpHeight, fill, false)
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("viano")
	return ebiten.RunGame(g)
}
