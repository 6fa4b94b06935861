// Package layout places a single line of segments with a font face so that
// link runs can be hit-tested and drawn.
package layout

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/riverfjs/linkmarkup-go/internal/scanner"
)

// DefaultFace is used when Measure or Draw get a nil face.
var DefaultFace font.Face = basicfont.Face7x13

// Run is one segment placed on the line.
type Run struct {
	Segment scanner.Segment
	// Dot is the baseline origin of the first glyph.
	Dot fixed.Point26_6
	// Bounds covers the advance box, from ascent above the baseline to
	// descent below it.
	Bounds image.Rectangle
}

// Measure lays segments out left to right from the baseline origin.
func Measure(face font.Face, segments []scanner.Segment, origin image.Point) []Run {
	if face == nil {
		face = DefaultFace
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	runs := make([]Run, 0, len(segments))
	dot := fixed.P(origin.X, origin.Y)
	prev := rune(-1)
	for _, seg := range segments {
		start := dot
		for _, r := range seg.Text {
			if prev >= 0 {
				dot.X += face.Kern(prev, r)
			}
			advance, ok := face.GlyphAdvance(r)
			if !ok {
				advance, _ = face.GlyphAdvance('�')
			}
			dot.X += advance
			prev = r
		}
		runs = append(runs, Run{
			Segment: seg,
			Dot:     start,
			Bounds: image.Rect(
				start.X.Floor(), origin.Y-ascent,
				dot.X.Ceil(), origin.Y+descent,
			),
		})
	}
	return runs
}

// Width returns the advance width covered by runs, in pixels.
func Width(runs []Run) int {
	if len(runs) == 0 {
		return 0
	}
	return runs[len(runs)-1].Bounds.Max.X - runs[0].Bounds.Min.X
}

// HitTest returns the index of the link run containing p.
func HitTest(runs []Run, p image.Point) (int, bool) {
	for i, run := range runs {
		if run.Segment.Link && p.In(run.Bounds) {
			return i, true
		}
	}
	return -1, false
}

// Draw renders runs onto dst. Link runs use linkColor and are underlined one
// pixel below the baseline.
func Draw(dst draw.Image, face font.Face, runs []Run, textColor, linkColor color.Color) {
	if face == nil {
		face = DefaultFace
	}
	d := &font.Drawer{Dst: dst, Face: face}
	for _, run := range runs {
		c := textColor
		if run.Segment.Link {
			c = linkColor
		}
		d.Src = image.NewUniform(c)
		d.Dot = run.Dot
		d.DrawString(run.Segment.Text)

		if run.Segment.Link && !run.Bounds.Empty() {
			y := run.Dot.Y.Floor() + 1
			underline := image.Rect(run.Bounds.Min.X, y, run.Bounds.Max.X, y+1)
			draw.Draw(dst, underline, d.Src, image.Point{}, draw.Over)
		}
	}
}
