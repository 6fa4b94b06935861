package parser

import (
	"strings"

	"github.com/riverfjs/linkmarkup-go/internal/scanner"
)

// segmentBuilder 累积纯文本与链接文本，相邻的纯文本会合并
type segmentBuilder struct {
	segments []scanner.Segment
	plain    strings.Builder
	link     strings.Builder
	target   string
	inLink   bool
	written  bool
	lastByte byte
}

func (b *segmentBuilder) write(text string) {
	if text == "" {
		return
	}
	if b.inLink {
		b.link.WriteString(text)
	} else {
		b.plain.WriteString(text)
	}
	b.written = true
	b.lastByte = text[len(text)-1]
}

// separate writes sep before the next block unless nothing was written yet.
func (b *segmentBuilder) separate(sep string) {
	if !b.written || b.inLink {
		return
	}
	if sep == "\n" && b.lastByte == '\n' {
		return
	}
	b.write(sep)
}

func (b *segmentBuilder) openLink(target string) {
	if b.inLink {
		return
	}
	b.flushPlain()
	b.inLink = true
	b.target = target
}

func (b *segmentBuilder) closeLink() {
	if !b.inLink {
		return
	}
	b.segments = append(b.segments, scanner.Anchor(b.link.String(), b.target))
	b.link.Reset()
	b.target = ""
	b.inLink = false
}

func (b *segmentBuilder) flushPlain() {
	if b.plain.Len() == 0 {
		return
	}
	b.segments = append(b.segments, scanner.Plain(b.plain.String()))
	b.plain.Reset()
}

// result closes an unterminated link and returns the segments.
func (b *segmentBuilder) result() []scanner.Segment {
	b.closeLink()
	b.flushPlain()
	return b.segments
}
