package converter

import (
	"github.com/riverfjs/linkmarkup-go/internal/scanner"
	"github.com/riverfjs/linkmarkup-go/internal/types"
)

// 类型别名，避免调用方同时引入 scanner 与 types
type (
	Segment      = scanner.Segment
	Entity       = types.Entity
	RenderConfig = types.RenderConfig
)

// Result 是一次转换的输出
type Result struct {
	Text     string
	Entities []Entity
	// Mnemonic is the UTF-16 offset of the mnemonic character in Text, or -1.
	Mnemonic int
}
