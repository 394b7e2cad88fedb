package layout

// BuildOptions 配置布局阶段所需的依赖，例如字体度量后端。
type BuildOptions struct {
	Measurer Measurer
}

// Font 标识度量与绘制所用的字体变体。
type Font int

const (
	FontBody   Font = iota // 正文
	FontHeader             // 表头与标题（粗体）
)

// Measurer 提供字体度量：字符串宽度与该字体的固定行高（单位均为 px）。
// LineHeight 与被度量的内容无关，对同一字体恒定。
type Measurer interface {
	TextWidth(s string, font Font) float64
	LineHeight(font Font) float64
}
