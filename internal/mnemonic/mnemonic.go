// Package mnemonic strips keyboard mnemonic markers from label text.
//
// A single '&' marks the character after it as the mnemonic and is removed.
// "&&" renders a literal '&'.
package mnemonic

import "strings"

// Strip removes mnemonic markers from text. It returns the rendered text and
// the byte offset of the mnemonic character in it, or -1. When text carries
// several markers the last one wins.
func Strip(text string) (string, int) {
	if strings.IndexByte(text, '&') < 0 {
		return text, -1
	}

	var b strings.Builder
	b.Grow(len(text))
	mnemonic := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '&' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(text) && text[i+1] == '&' {
			b.WriteByte('&')
			i++
			continue
		}
		// 末尾单独的 & 不标记任何字符
		if i+1 < len(text) {
			mnemonic = b.Len()
		}
	}
	return b.String(), mnemonic
}

// Escape doubles every '&' so that Strip returns text unchanged.
func Escape(text string) string {
	return strings.ReplaceAll(text, "&", "&&")
}
