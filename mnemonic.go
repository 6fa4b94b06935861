package linkmarkup

import "github.com/riverfjs/linkmarkup-go/internal/mnemonic"

// StripMnemonics returns segments with '&' mnemonic markers removed from
// their text, as Convert does with WithMnemonics(true). A link without a
// target keeps pointing at its text as written, markers included, so Href
// matches the URL Convert reports.
func StripMnemonics(segments []Segment) []Segment {
	return mapMnemonics(segments, func(text string) string {
		stripped, _ := mnemonic.Strip(text)
		return stripped
	})
}

// EscapeMnemonics doubles every '&' in segment text so that a label
// converted with WithMnemonics(true) shows the text unchanged. A link without
// a target is given its original text as target.
func EscapeMnemonics(segments []Segment) []Segment {
	return mapMnemonics(segments, mnemonic.Escape)
}

func mapMnemonics(segments []Segment, fn func(string) string) []Segment {
	result := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		text := fn(seg.Text)
		if seg.Link && seg.Target == "" && text != seg.Text {
			seg.Target = seg.Text
		}
		seg.Text = text
		result = append(result, seg)
	}
	return result
}
