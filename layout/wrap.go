package layout

import "strings"

// Wrap 以贪心方式将 s 按词折行，使每行宽度加上两侧 CellPadding 不超过 maxWidth。
// 单个词自身超宽时不拆词，整词独占一行，绘制时允许水平溢出列边界。
// 返回的行序列永不为空：无词输入产生一个空行。
func Wrap(s string, font Font, maxWidth float64, m Measurer) Block {
	words := strings.Fields(s)
	if len(words) == 0 {
		return Block{
			Lines:  []string{""},
			Height: m.LineHeight(font) + 2*CellPadding,
		}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := strings.TrimSpace(line + " " + word)
		if m.TextWidth(candidate, font)+2*CellPadding > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return Block{
		Lines:  lines,
		Height: float64(len(lines))*m.LineHeight(font) + 2*CellPadding,
	}
}
