package converter

import (
	"github.com/riverfjs/linkmarkup-go/internal/buffer"
	"github.com/riverfjs/linkmarkup-go/internal/mnemonic"
	"github.com/riverfjs/linkmarkup-go/internal/types"
)

var defaultConfig = types.DefaultRenderConfig()

// Flatten concatenates segment texts and turns link segments into entities.
//
// Link segments with empty text produce no entity unless
// config.KeepEmptyLinks is set. With config.Mnemonics, '&' markers are
// stripped from every segment; a mnemonic inside link text wins over one in
// plain text. Anchors without href point at their raw text, markers included.
func Flatten(segments []Segment, config *RenderConfig) Result {
	if config == nil {
		config = defaultConfig
	}
	entityType := config.EntityType()

	buf := buffer.New()
	entities := make([]Entity, 0)
	plainMnemonic, linkMnemonic := -1, -1

	for _, seg := range segments {
		text := seg.Text
		if config.Mnemonics {
			var pos int
			text, pos = mnemonic.Strip(text)
			if pos >= 0 {
				if seg.Link {
					linkMnemonic = buf.ByteOffset() + pos
				} else {
					plainMnemonic = buf.ByteOffset() + pos
				}
			}
		}

		start := buf.UTF16Offset()
		buf.Write(text)
		if !seg.Link {
			continue
		}
		length := buf.UTF16Offset() - start
		if length == 0 && !config.KeepEmptyLinks {
			continue
		}
		entities = append(entities, Entity{
			Type:   entityType,
			Offset: start,
			Length: length,
			URL:    seg.Href(),
		})
	}

	mnemonicByte := plainMnemonic
	if linkMnemonic >= 0 {
		mnemonicByte = linkMnemonic
	}
	result := Result{
		Text:     buf.String(),
		Entities: entities,
		Mnemonic: -1,
	}
	if mnemonicByte >= 0 {
		result.Mnemonic = buf.UTF16At(mnemonicByte)
	}
	return result
}
