package linkmarkup

import (
	"testing"
	"unicode/utf8"
)

// TestUTF16Len_Empty 测试空字符串
func TestUTF16Len_Empty(t *testing.T) {
	if got := UTF16Len(""); got != 0 {
		t.Errorf("UTF16Len(\"\") = %d, want 0", got)
	}
}

// TestUTF16Len_ASCII 测试 ASCII 字符
func TestUTF16Len_ASCII(t *testing.T) {
	if got := UTF16Len("hello"); got != 5 {
		t.Errorf("UTF16Len(\"hello\") = %d, want 5", got)
	}
}

// TestUTF16Len_CJK 测试中日韩字符（BMP 内，每个 1 个 UTF-16 code unit）
func TestUTF16Len_CJK(t *testing.T) {
	if got := UTF16Len("你好"); got != 2 {
		t.Errorf("UTF16Len(\"你好\") = %d, want 2", got)
	}
}

// TestUTF16Len_EmojiBMP 测试 BMP 内的 emoji
func TestUTF16Len_EmojiBMP(t *testing.T) {
	// ☑️ is U+2611 (BMP) + U+FE0F (BMP) = 2 code units
	if got := UTF16Len("☑️"); got != 2 {
		t.Errorf("UTF16Len(\"☑️\") = %d, want 2", got)
	}
}

// TestUTF16Len_EmojiSupplementary 测试补充平面的 emoji
func TestUTF16Len_EmojiSupplementary(t *testing.T) {
	// 📌 is U+1F4CC (supplementary plane) = 2 UTF-16 code units
	if got := UTF16Len("📌"); got != 2 {
		t.Errorf("UTF16Len(\"📌\") = %d, want 2", got)
	}
}

// TestUTF16Len_Mixed 测试混合字符
func TestUTF16Len_Mixed(t *testing.T) {
	// "A📌B" = 1 + 2 + 1 = 4
	if got := UTF16Len("A📌B"); got != 4 {
		t.Errorf("UTF16Len(\"A📌B\") = %d, want 4", got)
	}
}

// TestUTF16Len_FlagEmoji 测试旗帜 emoji
func TestUTF16Len_FlagEmoji(t *testing.T) {
	// 🇺🇸 is two regional indicator symbols, each supplementary
	if got := UTF16Len("🇺🇸"); got != 4 {
		t.Errorf("UTF16Len(\"🇺🇸\") = %d, want 4", got)
	}
}

// TestUTF16Len_MatchesEncode 测试 UTF16Len 是否匹配 UTF-16LE 编码长度
func TestUTF16Len_MatchesEncode(t *testing.T) {
	testStrings := []string{
		"",
		"hello",
		"你好世界",
		"📌✅🔗",
		"A📌B你好C",
		"test 🇺🇸 flag",
	}
	for _, s := range testStrings {
		t.Run(s, func(t *testing.T) {
			expected := len([]rune(s)) // 简化版：实际应计算 UTF-16LE
			// 精确计算
			expected = 0
			for _, r := range s {
				if r > 0xFFFF {
					expected += 2
				} else {
					expected++
				}
			}
			got := UTF16Len(s)
			if got != expected {
				t.Errorf("UTF16Len(%q) = %d, want %d", s, got, expected)
			}
		})
	}
}

// TestEntity_End 测试 Entity.End
func TestEntity_End(t *testing.T) {
	e := Entity{Type: EntityTextLink, Offset: 3, Length: 5, URL: "https://example.com"}
	if e.End() != 8 {
		t.Errorf("End() = %d, want 8", e.End())
	}
}

// TestSplitEntities_NoSplitNeeded 测试不需要拆分的情况
func TestSplitEntities_NoSplitNeeded(t *testing.T) {
	text := "hello"
	entities := []Entity{{Type: "text_link", Offset: 0, Length: 5, URL: "u"}}
	result := SplitEntities(text, entities, 100)
	if len(result) != 1 {
		t.Errorf("SplitEntities() returned %d chunks, want 1", len(result))
	}
	if result[0].Text != "hello" || len(result[0].Entities) != 1 {
		t.Errorf("SplitEntities() result = %v, want text=hello with 1 entity", result[0])
	}
}

// TestSplitEntities_EmptyText 测试空文本
func TestSplitEntities_EmptyText(t *testing.T) {
	result := SplitEntities("", []Entity{}, 100)
	if len(result) != 1 {
		t.Errorf("SplitEntities() returned %d chunks, want 1", len(result))
	}
	if result[0].Text != "" || len(result[0].Entities) != 0 {
		t.Errorf("SplitEntities() result = %v, want empty", result[0])
	}
}

// TestSplitEntities_SplitAtNewline 测试在换行符处拆分
func TestSplitEntities_SplitAtNewline(t *testing.T) {
	text := "aaa\nbbb\nccc"
	entities := []Entity{}
	result := SplitEntities(text, entities, 5)
	// "aaa\n" = 4 code units, "bbb\n" = 4, "ccc" = 3
	if len(result) < 2 {
		t.Errorf("SplitEntities() returned %d chunks, want >= 2", len(result))
	}
	// 合并所有文本应该等于原文本
	combined := ""
	for _, chunk := range result {
		combined += chunk.Text
	}
	if combined != text {
		t.Errorf("SplitEntities() combined text = %q, want %q", combined, text)
	}
}

// TestSplitEntities_EntityFullyInFirstChunk 测试 entity 完全在第一个块中
func TestSplitEntities_EntityFullyInFirstChunk(t *testing.T) {
	text := "bold\nnormal"
	entities := []Entity{{Type: "text_link", Offset: 0, Length: 4}}
	result := SplitEntities(text, entities, 5)
	if len(result) < 2 {
		t.Errorf("SplitEntities() returned %d chunks, want >= 2", len(result))
	}
	// 第一个块应该有 link entity
	if len(result[0].Entities) != 1 || result[0].Entities[0].Type != "text_link" {
		t.Errorf("First chunk should have link entity, got %v", result[0].Entities)
	}
}

// TestSplitEntities_PreservesTotalText 测试拆分保留完整文本
func TestSplitEntities_PreservesTotalText(t *testing.T) {
	text := "line1\nline2\nline3\nline4\nline5"
	entities := []Entity{{Type: "text_link", Offset: 0, Length: 5}}
	result := SplitEntities(text, entities, 12)
	combined := ""
	for _, chunk := range result {
		combined += chunk.Text
	}
	if combined != text {
		t.Errorf("SplitEntities() combined = %q, want %q", combined, text)
	}
}

// TestSplitEntities_WithEmoji 测试包含 emoji 的拆分
func TestSplitEntities_WithEmoji(t *testing.T) {
	// 📌 = 2 UTF-16 code units
	text := "📌\n📌\n📌"
	entities := []Entity{}
	result := SplitEntities(text, entities, 4)
	combined := ""
	for _, chunk := range result {
		combined += chunk.Text
	}
	if combined != text {
		t.Errorf("SplitEntities() combined = %q, want %q", combined, text)
	}
}

// TestSplitEntities_HardSplitNoNewlines 测试没有换行符的硬拆分
func TestSplitEntities_HardSplitNoNewlines(t *testing.T) {
	text := "abcdefghij"
	entities := []Entity{}
	result := SplitEntities(text, entities, 4)
	combined := ""
	for _, chunk := range result {
		combined += chunk.Text
		if UTF16Len(chunk.Text) > 4 {
			t.Errorf("Chunk %q exceeds max length 4", chunk.Text)
		}
	}
	if combined != text {
		t.Errorf("SplitEntities() combined = %q, want %q", combined, text)
	}
}

// TestSplitEntities_InvalidUTF8 测试无效字节按一个 code unit 计算且不会越界
func TestSplitEntities_InvalidUTF8(t *testing.T) {
	tests := []struct {
		text   string
		maxLen int
	}{
		{"abcd\xff", 2},
		{"\xff\xfe\xfd", 1},
		{"ab\xffcd\n\xe4\xbd", 3},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := SplitEntities(tt.text, []Entity{{Type: "text_link", Offset: 0, Length: UTF16Len(tt.text)}}, tt.maxLen)
			combined := ""
			for _, chunk := range result {
				if UTF16Len(chunk.Text) > tt.maxLen {
					t.Errorf("chunk %q exceeds max length %d", chunk.Text, tt.maxLen)
				}
				combined += chunk.Text
			}
			if combined != tt.text {
				t.Errorf("SplitEntities() combined = %q, want %q", combined, tt.text)
			}
		})
	}
}

// TestSplitEntities_EntitySpansBoundary 测试跨越拆分边界的 entity 被裁剪
func TestSplitEntities_EntitySpansBoundary(t *testing.T) {
	text := "abc\ndef"
	entities := []Entity{{Type: "text_link", Offset: 2, Length: 4, URL: "u"}}
	result := SplitEntities(text, entities, 4)
	if len(result) != 2 {
		t.Fatalf("SplitEntities() returned %d chunks, want 2", len(result))
	}
	want0 := Entity{Type: "text_link", Offset: 2, Length: 2, URL: "u"}
	want1 := Entity{Type: "text_link", Offset: 0, Length: 2, URL: "u"}
	if len(result[0].Entities) != 1 || result[0].Entities[0] != want0 {
		t.Errorf("chunk 0 entities = %v, want %v", result[0].Entities, want0)
	}
	if len(result[1].Entities) != 1 || result[1].Entities[0] != want1 {
		t.Errorf("chunk 1 entities = %v, want %v", result[1].Entities, want1)
	}
}

// TestSplitEntities_HardSplitKeepsRunes 测试硬拆分不会切断多字节字符
func TestSplitEntities_HardSplitKeepsRunes(t *testing.T) {
	text := "你好世界📌"
	result := SplitEntities(text, nil, 3)
	combined := ""
	for _, chunk := range result {
		if !utf8.ValidString(chunk.Text) {
			t.Errorf("chunk %q is not valid UTF-8", chunk.Text)
		}
		if UTF16Len(chunk.Text) > 3 {
			t.Errorf("chunk %q exceeds max length 3", chunk.Text)
		}
		combined += chunk.Text
	}
	if combined != text {
		t.Errorf("SplitEntities() combined = %q, want %q", combined, text)
	}
}

// TestTrimSpace 测试去除空白并调整 entity
func TestTrimSpace(t *testing.T) {
	text, entities := TrimSpace("  see docs  ", []Entity{{Type: "text_link", Offset: 6, Length: 4, URL: "u"}})
	if text != "see docs" {
		t.Errorf("TrimSpace() text = %q, want %q", text, "see docs")
	}
	want := Entity{Type: "text_link", Offset: 4, Length: 4, URL: "u"}
	if len(entities) != 1 || entities[0] != want {
		t.Errorf("TrimSpace() entities = %v, want %v", entities, want)
	}

	text, entities = TrimSpace("   ", []Entity{{Type: "text_link", Offset: 0, Length: 3}})
	if text != "" || len(entities) != 0 {
		t.Errorf("TrimSpace(blank) = %q %v, want empty", text, entities)
	}
}
