package linkmarkup

import "testing"

func TestStripMnemonics(t *testing.T) {
	got := StripMnemonics([]Segment{Plain("&File R&&D"), Anchor("&Open", ""), Anchor("&Help", "u")})
	want := []Segment{Plain("File R&D"), Anchor("Open", "&Open"), Anchor("Help", "u")}
	if len(got) != len(want) {
		t.Fatalf("StripMnemonics() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Href matches the URL Convert reports for the same markup
	_, entities := Convert("<a>&Open</a>", WithMnemonics(true))
	if len(entities) != 1 || entities[0].URL != got[1].Href() {
		t.Errorf("Convert() entities = %v, want url %q", entities, got[1].Href())
	}
}

func TestEscapeMnemonics(t *testing.T) {
	segments := []Segment{Plain("R&D "), Anchor("Q&A", ""), Plain(" and "), Anchor("A&B", "u")}
	escaped := EscapeMnemonics(segments)

	markup, err := Format(escaped)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `R&&D <a href="Q&A">Q&&A</a> and <a href="u">A&&B</a>`
	if markup != want {
		t.Errorf("Format(EscapeMnemonics()) = %q, want %q", markup, want)
	}

	text, entities, mnemonic := ConvertWithMnemonic(markup, WithMnemonics(true))
	if text != "R&D Q&A and A&B" || mnemonic != -1 {
		t.Errorf("ConvertWithMnemonic() = (%q, %d), want (%q, -1)", text, mnemonic, "R&D Q&A and A&B")
	}
	if len(entities) != 2 || entities[0].URL != "Q&A" || entities[1].URL != "u" {
		t.Errorf("entities = %v", entities)
	}
}
