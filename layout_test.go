package linkmarkup

import (
	"image"
	"testing"
)

func TestLayout_HitTest(t *testing.T) {
	runs := Layout(nil, Scan(`Press <a href="https://go.dev">here</a>.`), image.Pt(0, 11))
	if len(runs) != 3 {
		t.Fatalf("Layout() runs = %d, want 3", len(runs))
	}
	// 7px per glyph: "Press " [0,42), "here" [42,70), "." [70,77)
	if got := LayoutWidth(runs); got != 77 {
		t.Errorf("LayoutWidth() = %d, want 77", got)
	}

	i, ok := HitTest(runs, image.Pt(50, 5))
	if !ok || runs[i].Segment.Href() != "https://go.dev" {
		t.Errorf("HitTest() = %d %v, want the link run", i, ok)
	}
	if _, ok := HitTest(runs, image.Pt(10, 5)); ok {
		t.Error("HitTest() hit a plain run")
	}
}
