package linkmarkup

import "github.com/mattn/go-runewidth"

// CountText 计算标记转换后纯文本的 UTF-16 长度
//
// Markup and dropped spans do not count; only the text a widget would show.
func CountText(markup string, opts ...Option) int {
	text, _ := Convert(markup, opts...)
	return UTF16Len(text)
}

// DisplayWidth returns the monospace cell width of the converted text.
// East Asian wide characters take two cells.
func DisplayWidth(markup string, opts ...Option) int {
	text, _ := Convert(markup, opts...)
	return runewidth.StringWidth(text)
}
