package layout

import (
	"fmt"
	"math"

	"github.com/sengh2001/ai-table-to-image/binding"
	"github.com/sengh2001/ai-table-to-image/dsl"
)

// 布局与绘制共用的像素常量。
const (
	// CellPadding 是每行文本左右两侧的内边距（px），折行与绘制共用。
	CellPadding = 8.0
	// GridLineWidth 是网格线宽度（px）。
	GridLineWidth = 1.0
	// RowHeightMin 是数据行的最小高度（px）。
	RowHeightMin = 28.0
	// TextMargin 是标题文本的固定左/上边距（px）。
	TextMargin = 10.0
	// DefaultMaxWidth 是未指定画布宽度时的默认值（px）。
	DefaultMaxWidth = 1200.0

	headerPad    = 2.0  // 表头区高度在最高表头块之上的留白
	titlePad     = 12.0 // 标题块之下的留白
	canvasMargin = 20.0 // 画布底部固定留白
)

// Build 对输入表格做两遍布局：先折行并度量标题、表头与所有单元格，
// 再汇总列宽、行高与画布尺寸。列宽为等宽分配：floor(maxWidth / 列数)。
// 返回的 Result 在绘制阶段只读。
func Build(table Table, maxWidth float64, opts BuildOptions) (*Result, error) {
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少字体度量后端 Measurer")
	}
	m := opts.Measurer
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	// 零列输入按单列处理，避免除零；空表的业务拒绝属于上游边界。
	numCols := len(table.Columns)
	if numCols < 1 {
		numCols = 1
	}
	colWidth := math.Floor(maxWidth / float64(numCols))

	headers := make([]Block, numCols)
	headerHeight := 0.0
	for i := range headers {
		label := ""
		if i < len(table.Columns) {
			label = table.Columns[i]
		}
		headers[i] = Wrap(label, FontHeader, colWidth, m)
		if headers[i].Height > headerHeight {
			headerHeight = headers[i].Height
		}
	}
	headerHeight += headerPad

	cells := make([][]Block, len(table.Rows))
	rowHeights := make([]float64, len(table.Rows))
	for r, row := range table.Rows {
		blocks := make([]Block, numCols)
		height := RowHeightMin
		for i := range blocks {
			blocks[i] = Wrap(cellText(row, i), FontBody, colWidth, m)
			if blocks[i].Height > height {
				height = blocks[i].Height
			}
		}
		cells[r] = blocks
		rowHeights[r] = height
	}

	var titleBlock Block
	titleHeight := 0.0
	if table.Title != "" {
		titleBlock = Wrap(table.Title, FontHeader, maxWidth, m)
		titleHeight = titleBlock.Height + titlePad
	}

	canvasHeight := titleHeight + headerHeight + sum(rowHeights) +
		float64(len(table.Rows)+2)*GridLineWidth + canvasMargin

	return &Result{
		ColumnWidth:      colWidth,
		HeaderHeight:     headerHeight,
		RowHeights:       rowHeights,
		TitleHeight:      titleHeight,
		CanvasWidth:      maxWidth,
		CanvasHeight:     canvasHeight,
		TitleBlock:       titleBlock,
		Headers:          headers,
		Cells:            cells,
		BodyLineHeight:   m.LineHeight(FontBody),
		HeaderLineHeight: m.LineHeight(FontHeader),
	}, nil
}

// cellText 返回行内第 i 列的单元格文本；下标越界或值为 nil 一律视为空串，
// 绝不输出字面量 "null"。
func cellText(row []*string, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return *row[i]
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// FromDocument 将 DSL 文档转换为 Table，并用 data 对标题与单元格文本做
// ${path} 插值。null 单元格保持为 nil，渲染时输出空白。
// 出现多个 columns 声明时，后者覆盖前者。
func FromDocument(doc *dsl.Document, data any) (Table, error) {
	if doc == nil {
		return Table{}, fmt.Errorf("layout: 文档为空")
	}
	var table Table
	if doc.Title != nil {
		table.Title = binding.Interpolate(string(*doc.Title), data)
	}
	for _, stmt := range doc.Statements {
		switch {
		case stmt.Columns != nil:
			columns := make([]string, 0, len(stmt.Columns.Cells))
			for _, cell := range stmt.Columns.Cells {
				label := ""
				if cell.Value != nil {
					label = binding.Interpolate(string(*cell.Value), data)
				}
				columns = append(columns, label)
			}
			table.Columns = columns
		case stmt.Row != nil:
			row := make([]*string, 0, len(stmt.Row.Cells))
			for _, cell := range stmt.Row.Cells {
				if cell.Null || cell.Value == nil {
					row = append(row, nil)
					continue
				}
				value := binding.Interpolate(string(*cell.Value), data)
				row = append(row, &value)
			}
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}
