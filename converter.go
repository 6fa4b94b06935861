package linkmarkup

import (
	"github.com/riverfjs/linkmarkup-go/internal/converter"
)

// Convert 将标记转换为 (plain_text, entities)
//
// 参数:
//   - markup: 带 <a> 标记的标签文本
//   - opts: 转换选项，如 WithMnemonics、WithNormalize
//
// 返回:
//   - string: 纯文本
//   - []Entity: 链接实体，偏移量为 UTF-16 code units
func Convert(markup string, opts ...Option) (string, []Entity) {
	text, entities, _ := ConvertWithMnemonic(markup, opts...)
	return text, entities
}

// ConvertWithMnemonic 类似 Convert()，但还返回助记符位置
//
// 返回的 int 是助记符字符在纯文本中的 UTF-16 偏移量，没有时为 -1。
// 只有启用 WithMnemonics(true) 时才会识别助记符。
func ConvertWithMnemonic(markup string, opts ...Option) (string, []Entity, int) {
	options := applyOptions(opts...)
	segments := scanWithOptions(markup, options)
	result := converter.Flatten(segments, options.Config)
	return result.Text, result.Entities, result.Mnemonic
}

// ConvertSegments flattens already scanned or imported segments.
func ConvertSegments(segments []Segment, opts ...Option) (string, []Entity) {
	options := applyOptions(opts...)
	result := converter.Flatten(segments, options.Config)
	return result.Text, result.Entities
}
