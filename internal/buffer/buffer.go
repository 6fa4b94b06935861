package buffer

// utf16Len returns the length of text measured in UTF-16 code units.
func utf16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// TextBuffer accumulates plain text and tracks both the byte and the
// UTF-16 offset of its end.
type TextBuffer struct {
	parts       []string
	byteOffset  int
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.byteOffset += len(text)
	tb.utf16Offset += utf16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	return tb.byteOffset
}

// UTF16At converts a byte offset inside the buffered text to UTF-16.
// Offsets past the end clamp to UTF16Offset.
func (tb *TextBuffer) UTF16At(byteOffset int) int {
	if byteOffset >= tb.byteOffset {
		return tb.utf16Offset
	}
	cum := 0
	for _, p := range tb.parts {
		if byteOffset < len(p) {
			return cum + utf16Len(p[:byteOffset])
		}
		byteOffset -= len(p)
		cum += utf16Len(p)
	}
	return cum
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.byteOffset)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}
