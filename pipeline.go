package linkmarkup

// DefaultMaxLength is used by Split when maxUTF16Len is not positive.
const DefaultMaxLength = 4096

// Split 完整管道：标记 → 可发送的文本分块
//
// 步骤：
//  1. 通过 Convert 转换为 (text, entities)
//  2. 按 maxUTF16Len 拆分，实体被裁剪到每个分块
//  3. 去除每个分块首尾换行，丢弃空分块
func Split(markup string, maxUTF16Len int, opts ...Option) []TextChunk {
	if maxUTF16Len <= 0 {
		maxUTF16Len = DefaultMaxLength
	}
	text, entities := Convert(markup, opts...)
	return appendTextChunks(nil, text, entities, maxUTF16Len)
}

// SplitSegments is Split for segments that were already scanned or imported.
func SplitSegments(segments []Segment, maxUTF16Len int, opts ...Option) []TextChunk {
	if maxUTF16Len <= 0 {
		maxUTF16Len = DefaultMaxLength
	}
	text, entities := ConvertSegments(segments, opts...)
	return appendTextChunks(nil, text, entities, maxUTF16Len)
}

// appendTextChunks 按 maxUTF16Len 拆分文本
func appendTextChunks(result []TextChunk, text string, entities []Entity, maxUTF16Len int) []TextChunk {
	if result == nil {
		result = make([]TextChunk, 0)
	}
	for _, chunk := range SplitEntities(text, entities, maxUTF16Len) {
		chunkText, chunkEntities := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if chunkText == "" {
			continue
		}
		result = append(result, TextChunk{Text: chunkText, Entities: chunkEntities})
	}
	return result
}
