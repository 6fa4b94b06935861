// Package scanner recognizes the anchor subset used by link labels:
// `<a>text</a>` and `<a href="target">text</a>`.
//
// Scanning never fails. Malformed tags are dropped, either up to the next
// `>` (discard-and-resume) or up to the end of input (discard-to-end).
package scanner

import "strings"

// Segment 是一段显示文本，可能带有链接目标
type Segment struct {
	Text   string
	Target string
	Link   bool
}

// Href returns the destination of a link segment. An anchor without an
// href attribute points at its own text.
func (s Segment) Href() string {
	if s.Target == "" {
		return s.Text
	}
	return s.Target
}

// Plain returns a non-activatable segment.
func Plain(text string) Segment {
	return Segment{Text: text}
}

// Anchor returns a link segment.
func Anchor(text, target string) Segment {
	return Segment{Text: text, Target: target, Link: true}
}

// Reason explains why a span of input was dropped.
type Reason int

const (
	// ReasonMalformedTag: `<` did not start a valid open tag; dropped through the next `>`.
	ReasonMalformedTag Reason = iota
	// ReasonUnterminatedTag: an invalid tag with no `>` before end of input.
	ReasonUnterminatedTag
	// ReasonMismatchedClose: an anchor whose first `<` was not `</a>`.
	ReasonMismatchedClose
	// ReasonUnterminatedAnchor: an anchor that never closed.
	ReasonUnterminatedAnchor
)

// String returns the string representation of Reason.
func (r Reason) String() string {
	switch r {
	case ReasonMalformedTag:
		return "malformed tag"
	case ReasonUnterminatedTag:
		return "unterminated tag"
	case ReasonMismatchedClose:
		return "mismatched close tag"
	case ReasonUnterminatedAnchor:
		return "unterminated anchor"
	default:
		return "unknown"
	}
}

// Discard records a dropped span [Start, End) of the input, in bytes.
type Discard struct {
	Start  int
	End    int
	Reason Reason
}

// Scan splits input into plain and link segments.
func Scan(input string) []Segment {
	segments, _ := scan(input, false)
	return segments
}

// ScanReport is Scan plus the list of spans that were dropped.
func ScanReport(input string) ([]Segment, []Discard) {
	return scan(input, true)
}

func scan(input string, report bool) ([]Segment, []Discard) {
	var (
		segments []Segment
		discards []Discard
	)
	drop := func(start, end int, reason Reason) {
		if report {
			discards = append(discards, Discard{Start: start, End: end, Reason: reason})
		}
	}

	n := len(input)
	pos := 0
	textStart := 0
	for pos < n {
		if input[pos] != '<' {
			pos++
			continue
		}

		// `<` 总是先刷新已累积的纯文本
		if pos > textStart {
			segments = append(segments, Plain(input[textStart:pos]))
		}
		open := pos

		target, bodyStart, ok := matchOpenTag(input, open)
		if !ok {
			end := tagEnd(input, open)
			if end < 0 {
				drop(open, n, ReasonUnterminatedTag)
				return segments, discards
			}
			pos = end + 1
			textStart = pos
			drop(open, pos, ReasonMalformedTag)
			continue
		}

		closeStart := indexByteFrom(input, bodyStart, '<')
		if closeStart < 0 {
			drop(open, n, ReasonUnterminatedAnchor)
			return segments, discards
		}
		if !matchCloseTag(input, closeStart) {
			end := tagEnd(input, closeStart)
			if end < 0 {
				drop(open, n, ReasonUnterminatedAnchor)
				return segments, discards
			}
			pos = end + 1
			textStart = pos
			drop(open, pos, ReasonMismatchedClose)
			continue
		}

		segments = append(segments, Anchor(input[bodyStart:closeStart], target))
		pos = closeStart + len("</a>")
		textStart = pos
	}

	if textStart < n {
		segments = append(segments, Plain(input[textStart:]))
	}
	return segments, discards
}

// matchOpenTag recognizes `<a>` or `<a href="...">` at input[i]. It returns
// the target and the offset of the first body byte.
func matchOpenTag(input string, i int) (string, int, bool) {
	n := len(input)
	i++
	if i >= n || lower(input[i]) != 'a' {
		return "", 0, false
	}
	i++
	if i >= n {
		return "", 0, false
	}
	if input[i] == '>' {
		return "", i + 1, true
	}
	if !isSpace(input[i]) {
		return "", 0, false
	}
	i++

	const attr = "href="
	if n-i < len(attr) || !equalFold(input[i:i+len(attr)], attr) {
		return "", 0, false
	}
	i += len(attr)
	if i >= n || input[i] != '"' {
		return "", 0, false
	}
	i++
	valueStart := i
	valueEnd := indexByteFrom(input, valueStart, '"')
	if valueEnd < 0 {
		return "", 0, false
	}
	i = valueEnd + 1
	if i >= n || input[i] != '>' {
		return "", 0, false
	}
	return input[valueStart:valueEnd], i + 1, true
}

// matchCloseTag reports whether input[i:] starts with `</a>` (any case).
func matchCloseTag(input string, i int) bool {
	const tag = "</a>"
	return len(input)-i >= len(tag) && equalFold(input[i:i+len(tag)], tag)
}

// tagEnd returns the offset of the first `>` after input[start] that is not
// inside a double-quoted run, or -1.
func tagEnd(input string, start int) int {
	quoted := false
	for i := start + 1; i < len(input); i++ {
		switch input[i] {
		case '"':
			quoted = !quoted
		case '>':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

func indexByteFrom(s string, from int, c byte) int {
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// equalFold compares ASCII case-insensitively; want must be lower case.
func equalFold(s, want string) bool {
	for i := 0; i < len(want); i++ {
		if lower(s[i]) != want[i] {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
