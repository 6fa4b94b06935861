package linkmarkup

import "github.com/riverfjs/linkmarkup-go/internal/parser"

// FromMarkdown 解析 Markdown (GFM)，只保留行内链接和自动链接
//
// Blocks are separated by a blank line, soft line breaks become a space and
// all other formatting is flattened to its text.
func FromMarkdown(markdown string) []Segment {
	return parser.ParseMarkdown(markdown)
}

// FromHTML 解析 HTML，保留 <a href> 链接并解码实体
func FromHTML(html string) []Segment {
	return parser.ParseHTML(html)
}
