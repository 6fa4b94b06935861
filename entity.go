package linkmarkup

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/linkmarkup-go/internal/types"
)

// 导出类型别名
type Entity = types.Entity

// EntityTextLink is the default Type of link entities.
const EntityTextLink = types.EntityTextLink

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Entity offsets and lengths are UTF-16 code units, not Go string bytes or
// runes. Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code
// units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []Entity
}

// findNewlinePositions returns the byte index right after each newline.
func findNewlinePositions(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table.
// result[i] is the UTF-16 offset at byte position i; bytes inside a
// multi-byte rune share the offset of the rune start. An invalid byte
// counts as one code unit, as in UTF16Len.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		i += size
	}
	offsets[len(text)] = cum
	return offsets
}

// clipEntities keeps the parts of entities overlapping [start, end) and
// re-bases them on start. Zero-length entities are dropped.
func clipEntities(entities []Entity, start, end int) []Entity {
	clipped := make([]Entity, 0)
	for _, ent := range entities {
		entStart := ent.Offset
		entEnd := ent.End()
		if entEnd <= start || entStart >= end {
			continue
		}
		clippedStart := max(entStart, start)
		clippedEnd := min(entEnd, end)
		if clippedEnd-clippedStart <= 0 {
			continue
		}
		clipped = append(clipped, Entity{
			Type:   ent.Type,
			Offset: clippedStart - start,
			Length: clippedEnd - clippedStart,
			URL:    ent.URL,
		})
	}
	return clipped
}

// SplitEntities splits (text, entities) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split at newline boundaries. Entities that span a split boundary
// are clipped into both chunks.
func SplitEntities(text string, entities []Entity, maxUTF16Len int) []TextChunk {
	total := UTF16Len(text)
	if total <= maxUTF16Len {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	offsets := buildUTF16OffsetTable(text)
	splitPoints := findNewlinePositions(text)

	var chunkRanges [][2]int // [byteStart, byteEnd]
	byteStart := 0
	for byteStart < len(text) {
		utf16Budget := offsets[byteStart] + maxUTF16Len
		if offsets[len(text)] <= utf16Budget {
			chunkRanges = append(chunkRanges, [2]int{byteStart, len(text)})
			break
		}

		// 优先在换行处拆分
		bestSplit := -1
		for _, sp := range splitPoints {
			if sp <= byteStart {
				continue
			}
			if offsets[sp] > utf16Budget {
				break
			}
			bestSplit = sp
		}

		if bestSplit == -1 {
			// No newline fits: hard split at the last rune boundary in budget.
			bestSplit = byteStart
			for next := byteStart; next < len(text); {
				_, size := utf8.DecodeRuneInString(text[next:])
				next += size
				if offsets[next] > utf16Budget {
					break
				}
				bestSplit = next
			}
			if bestSplit == byteStart {
				// a single rune larger than the budget still has to move forward
				_, size := utf8.DecodeRuneInString(text[byteStart:])
				bestSplit = byteStart + size
			}
		}

		chunkRanges = append(chunkRanges, [2]int{byteStart, bestSplit})
		byteStart = bestSplit
	}

	result := make([]TextChunk, 0, len(chunkRanges))
	for _, cr := range chunkRanges {
		result = append(result, TextChunk{
			Text:     text[cr[0]:cr[1]],
			Entities: clipEntities(entities, offsets[cr[0]], offsets[cr[1]]),
		})
	}
	return result
}

// stripNewlinesAdjust strips leading/trailing newlines from text and adjusts entity offsets.
func stripNewlinesAdjust(text string, entities []Entity) (string, []Entity) {
	stripped := strings.Trim(text, "\n")
	if stripped == text {
		return text, entities
	}
	if stripped == "" {
		return "", []Entity{}
	}
	// Newlines are each 1 UTF-16 code unit
	leading := len(text) - len(strings.TrimLeft(text, "\n"))
	return stripped, clipEntities(entities, leading, leading+UTF16Len(stripped))
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []Entity) (string, []Entity) {
	trimmed := strings.TrimSpace(text)
	if trimmed == text {
		return text, entities
	}
	if trimmed == "" {
		return "", []Entity{}
	}

	startOffset := strings.Index(text, trimmed)
	utf16Start := UTF16Len(text[:startOffset])
	return trimmed, clipEntities(entities, utf16Start, utf16Start+UTF16Len(trimmed))
}
