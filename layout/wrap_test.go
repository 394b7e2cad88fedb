package layout

import (
	"strings"
	"testing"
)

// TestWrapEmptyString 验证空输入产生单个空行，且高度包含上下内边距。
func TestWrapEmptyString(t *testing.T) {
	m := defaultStub()
	for _, s := range []string{"", "   ", "\t\n"} {
		block := Wrap(s, FontBody, 100, m)
		if len(block.Lines) != 1 || block.Lines[0] != "" {
			t.Fatalf("输入 %q 应产生单个空行: %+v", s, block.Lines)
		}
		want := m.bodyLH + 2*CellPadding
		if block.Height != want {
			t.Fatalf("空块高度错误: got=%g want=%g", block.Height, want)
		}
	}
}

// TestWrapGreedyPacking 验证贪心折行：能放下就继续累积，放不下才换行。
func TestWrapGreedyPacking(t *testing.T) {
	m := defaultStub() // 每字符 10px
	// "aa bb" 宽 50+16=66 恰好放入 66px；再加 " cc" 超出后换行
	block := Wrap("aa bb cc", FontBody, 66, m)
	if len(block.Lines) != 2 {
		t.Fatalf("应折为两行: %+v", block.Lines)
	}
	if block.Lines[0] != "aa bb" || block.Lines[1] != "cc" {
		t.Fatalf("折行内容错误: %+v", block.Lines)
	}
	want := 2*m.bodyLH + 2*CellPadding
	if block.Height != want {
		t.Fatalf("块高度错误: got=%g want=%g", block.Height, want)
	}
}

// TestWrapCollapsesWhitespace 验证词间多余空白在折行时被归一化。
func TestWrapCollapsesWhitespace(t *testing.T) {
	m := defaultStub()
	block := Wrap("a   b\t c", FontBody, 1000, m)
	if len(block.Lines) != 1 || block.Lines[0] != "a b c" {
		t.Fatalf("空白归一化失败: %+v", block.Lines)
	}
}

// TestWrapOversizedTokenNotSplit 验证超宽单词不拆分：整词独占一行，
// 宽度允许超出列宽（文档化的溢出行为，不是错误）。
func TestWrapOversizedTokenNotSplit(t *testing.T) {
	m := defaultStub()
	token := "averyveryverylongsingletoken"
	block := Wrap(token, FontBody, 50, m)
	if len(block.Lines) != 1 {
		t.Fatalf("超宽单词应独占一行: %+v", block.Lines)
	}
	if block.Lines[0] != token {
		t.Fatalf("单词不应被拆分: %q", block.Lines[0])
	}
	if m.TextWidth(block.Lines[0], FontBody)+2*CellPadding <= 50 {
		t.Fatalf("该场景应产生水平溢出")
	}
}

// TestWrapLinesNeverEmpty 验证任意输入的行序列都不为空。
func TestWrapLinesNeverEmpty(t *testing.T) {
	m := defaultStub()
	inputs := []string{"", " ", "one", "one two three", strings.Repeat("x ", 50)}
	for _, s := range inputs {
		if block := Wrap(s, FontHeader, 30, m); len(block.Lines) == 0 {
			t.Fatalf("输入 %q 的行序列为空", s)
		}
	}
}

// TestWrapHeaderUsesHeaderLineHeight 验证块高度使用对应字体的行高。
func TestWrapHeaderUsesHeaderLineHeight(t *testing.T) {
	m := defaultStub()
	block := Wrap("Title", FontHeader, 1000, m)
	want := m.headerLH + 2*CellPadding
	if block.Height != want {
		t.Fatalf("表头块高度错误: got=%g want=%g", block.Height, want)
	}
}
