package buffer

import "testing"

func TestTextBuffer(t *testing.T) {
	tb := New()
	tb.Write("ab")
	tb.Write("")
	tb.Write("📌c")

	if got := tb.String(); got != "ab📌c" {
		t.Errorf("String() = %q, want %q", got, "ab📌c")
	}
	if got := tb.ByteOffset(); got != 7 {
		t.Errorf("ByteOffset() = %d, want 7", got)
	}
	if got := tb.UTF16Offset(); got != 5 {
		t.Errorf("UTF16Offset() = %d, want 5", got)
	}
}

func TestTextBuffer_UTF16At(t *testing.T) {
	tb := New()
	tb.Write("a📌")
	tb.Write("你b")

	tests := []struct {
		byteOffset int
		want       int
	}{
		{0, 0},
		{1, 1},  // before 📌
		{5, 3},  // before 你
		{8, 4},  // before b
		{9, 5},  // end
		{42, 5}, // clamped
	}
	for _, tt := range tests {
		if got := tb.UTF16At(tt.byteOffset); got != tt.want {
			t.Errorf("UTF16At(%d) = %d, want %d", tt.byteOffset, got, tt.want)
		}
	}
}
