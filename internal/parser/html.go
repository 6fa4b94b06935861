package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/linkmarkup-go/internal/scanner"
)

var whitespace = regexp.MustCompile(`\s+`)

// ParseHTML 使用 x/net/html 分词，保留 <a href> 为链接
//
// Only anchors carrying an href attribute become links; `<a name>` and the
// like contribute their text as plain text. Nested anchors are folded into
// the outermost link. Text inside script and style elements is dropped.
func ParseHTML(source string) []scanner.Segment {
	b := &segmentBuilder{}
	tokenizer := html.NewTokenizer(strings.NewReader(source))
	// one entry per open <a>: whether that tag opened the current link
	var anchors []bool
	skipDepth := 0

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		token := tokenizer.Token()

		switch tokenType {
		case html.TextToken:
			if skipDepth == 0 {
				b.write(whitespace.ReplaceAllLiteralString(token.Data, " "))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			selfClosing := tokenType == html.SelfClosingTagToken
			switch token.DataAtom {
			case atom.A:
				if selfClosing {
					continue
				}
				href, ok := attr(token, "href")
				opens := ok && !b.inLink
				if opens {
					b.openLink(href)
				}
				anchors = append(anchors, opens)
			case atom.Br:
				b.write("\n")
			case atom.Script, atom.Style:
				if !selfClosing {
					skipDepth++
				}
			case atom.P, atom.Div, atom.Li, atom.Tr, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				b.separate("\n")
			}

		case html.EndTagToken:
			switch token.DataAtom {
			case atom.A:
				if len(anchors) == 0 {
					continue
				}
				opened := anchors[len(anchors)-1]
				anchors = anchors[:len(anchors)-1]
				if opened {
					b.closeLink()
				}
			case atom.Script, atom.Style:
				if skipDepth > 0 {
					skipDepth--
				}
			}
		}
	}

	return b.result()
}

// attr returns the value of key and whether the attribute is present.
func attr(token html.Token, key string) (string, bool) {
	for _, a := range token.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
