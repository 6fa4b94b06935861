// Package linkmarkup 解析标签文本中的简化锚点标记
//
// Label text may carry `<a>text</a>` and `<a href="target">text</a>` runs.
// The scanner turns such text into plain and link segments and never fails:
// malformed markup is dropped, not reported as an error.
//
// 核心功能：
//   - Scan(): 标记 → []Segment
//   - Convert(): 标记 → (plain text, link entities)，偏移量为 UTF-16
//   - Split(): 按长度拆分，实体会被裁剪到各个分块
//   - Format(): []Segment → 标记
//   - FromMarkdown() / FromHTML(): 从 Markdown 或 HTML 导入链接
//   - Layout() / HitTest(): 单行布局与点击测试
//
// 示例：
//
//	for _, seg := range linkmarkup.Scan(`Read the <a href="https://go.dev">docs</a>.`) {
//	    if seg.Link {
//	        fmt.Println(seg.Text, "->", seg.Href())
//	    }
//	}
//
//	text, entities := linkmarkup.Convert(label, linkmarkup.WithMnemonics(true))
package linkmarkup

import (
	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/linkmarkup-go/internal/scanner"
)

// Segment is a run of display text, optionally carrying a link target.
type Segment = scanner.Segment

// Discard describes a span of markup that was dropped.
type Discard = scanner.Discard

// Plain returns a non-activatable segment.
func Plain(text string) Segment {
	return scanner.Plain(text)
}

// Anchor returns a link segment. An empty target makes the link point at
// its own text.
func Anchor(text, target string) Segment {
	return scanner.Anchor(text, target)
}

// Scan splits markup into plain and link segments. It is safe for
// concurrent use and allocates only the result slice.
func Scan(markup string) []Segment {
	return scanner.Scan(markup)
}

// ScanReport is Scan plus the spans of markup that were dropped.
func ScanReport(markup string) ([]Segment, []Discard) {
	return scanner.ScanReport(markup)
}

// Normalize returns markup in Unicode normalization form C.
func Normalize(markup string) string {
	return norm.NFC.String(markup)
}

// ScanWithOptions is Scan honoring WithNormalize and WithLogDiscards.
func ScanWithOptions(markup string, opts ...Option) []Segment {
	return scanWithOptions(markup, applyOptions(opts...))
}

// scanWithOptions 按配置预处理并扫描
func scanWithOptions(markup string, options *ConvertOptions) []Segment {
	config := options.Config
	if config.Normalize {
		markup = Normalize(markup)
	}
	if !config.LogDiscards {
		return scanner.Scan(markup)
	}

	segments, discards := scanner.ScanReport(markup)
	for _, d := range discards {
		Logger.Printf("dropped %s at [%d:%d]: %q", d.Reason, d.Start, d.End, markup[d.Start:d.End])
	}
	return segments
}
