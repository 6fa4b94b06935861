package linkmarkup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrepresentable is returned by Format for segments the markup cannot
// express: text containing '<', or a target containing '"'.
var ErrUnrepresentable = errors.New("segment cannot be represented as markup")

// Format renders segments as markup that Scan reads back to the same
// segments, except that adjacent plain segments come back merged.
func Format(segments []Segment) (string, error) {
	var b strings.Builder
	for i, seg := range segments {
		if strings.IndexByte(seg.Text, '<') >= 0 {
			return "", fmt.Errorf("segment %d: text contains '<': %w", i, ErrUnrepresentable)
		}
		if !seg.Link {
			b.WriteString(seg.Text)
			continue
		}
		if strings.IndexByte(seg.Target, '"') >= 0 {
			return "", fmt.Errorf("segment %d: target contains '\"': %w", i, ErrUnrepresentable)
		}
		if seg.Target == "" {
			b.WriteString("<a>")
		} else {
			b.WriteString(`<a href="`)
			b.WriteString(seg.Target)
			b.WriteString(`">`)
		}
		b.WriteString(seg.Text)
		b.WriteString("</a>")
	}
	return b.String(), nil
}
