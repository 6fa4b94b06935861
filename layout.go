package linkmarkup

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"

	"github.com/riverfjs/linkmarkup-go/internal/layout"
)

// Run is a segment placed on a line, with its pixel bounds.
type Run = layout.Run

// Layout places segments on one line starting at the baseline origin.
// A nil face uses basicfont.Face7x13.
func Layout(face font.Face, segments []Segment, origin image.Point) []Run {
	return layout.Measure(face, segments, origin)
}

// LayoutWidth returns the total advance of runs in pixels.
func LayoutWidth(runs []Run) int {
	return layout.Width(runs)
}

// HitTest returns the index of the link run under p.
func HitTest(runs []Run, p image.Point) (int, bool) {
	return layout.HitTest(runs, p)
}

// Draw renders runs onto dst; link runs use linkColor and are underlined.
func Draw(dst draw.Image, face font.Face, runs []Run, textColor, linkColor color.Color) {
	layout.Draw(dst, face, runs, textColor, linkColor)
}
