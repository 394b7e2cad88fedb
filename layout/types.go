package layout

// 该文件定义布局输入与布局结果，供布局计算、渲染与调试 JSON 共用。

// Table 是渲染核心的输入：可选标题（空串表示无标题）、有序列标签与
// 由可空单元格组成的行。上游边界负责保证每行长度等于列数，布局阶段
// 对不满足约定的行做防御处理（缺失单元格按空白渲染）。
type Table struct {
	Title   string      `json:"title,omitempty"`
	Columns []string    `json:"columns"`
	Rows    [][]*string `json:"rows"`
}

// Block 是一段文本贪心折行后的结果，行序列永不为空（空输入产生一个空行）。
type Block struct {
	Lines  []string `json:"lines"`
	Height float64  `json:"height"`
}

// Result 保存一次渲染所需的全部像素几何与折行文本，布局完成后只读。
// 绘制阶段只消费 Result，不再做任何文本度量。
type Result struct {
	ColumnWidth  float64   `json:"columnWidth"`
	HeaderHeight float64   `json:"headerHeight"`
	RowHeights   []float64 `json:"rowHeights"`
	TitleHeight  float64   `json:"titleHeight"` // 无标题时为 0
	CanvasWidth  float64   `json:"canvasWidth"`
	CanvasHeight float64   `json:"canvasHeight"`

	// 预先折行的文本块：标题、每列表头、每行每列单元格。
	TitleBlock Block     `json:"titleBlock"`
	Headers    []Block   `json:"headers"`
	Cells      [][]Block `json:"cells"`

	// 两种字体变体的固定行高（px），在布局阶段采样一次。
	BodyLineHeight   float64 `json:"bodyLineHeight"`
	HeaderLineHeight float64 `json:"headerLineHeight"`
}

// NumColumns 返回布局使用的列数（至少为 1）。
func (r *Result) NumColumns() int { return len(r.Headers) }
