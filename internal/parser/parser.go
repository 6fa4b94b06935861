package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/linkmarkup-go/internal/scanner"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, linkify, task lists
	),
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) (ast.Node, []byte) {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader), source
}

// ParseMarkdown 解析 Markdown 并只保留行内链接
func ParseMarkdown(markdown string) []scanner.Segment {
	node, source := ParseAST(markdown)
	b := &segmentBuilder{}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.ThematicBreak:
			if entering {
				b.separate("\n\n")
			}

		case *ast.TextBlock:
			if entering {
				b.separate("\n")
			}

		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				b.separate("\n\n")
				writeLines(b, n, source)
			}
			return ast.WalkSkipChildren, nil

		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if entering {
				b.write(string(n.Segment.Value(source)))
				if n.HardLineBreak() {
					b.write("\n")
				} else if n.SoftLineBreak() {
					b.write(" ")
				}
			}

		case *ast.String:
			if entering {
				b.write(string(n.Value))
			}

		case *ast.Link:
			if entering {
				b.openLink(string(n.Destination))
			} else {
				b.closeLink()
			}

		case *ast.AutoLink:
			if entering {
				b.openLink(string(n.URL(source)))
				b.write(string(n.Label(source)))
				b.closeLink()
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return b.result()
}

// writeLines 写出代码块内容，去掉末尾换行
func writeLines(b *segmentBuilder, n ast.Node, source []byte) {
	lines := n.Lines()
	var code []byte
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code = append(code, seg.Value(source)...)
	}
	for len(code) > 0 && code[len(code)-1] == '\n' {
		code = code[:len(code)-1]
	}
	b.write(string(code))
}
