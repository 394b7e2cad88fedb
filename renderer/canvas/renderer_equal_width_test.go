package canvasrenderer

import (
	"math"
	"testing"

	"github.com/sengh2001/ai-table-to-image/layout"
)

// 等宽列分配在真实字体度量下同样成立：列宽向下取整，
// 且表头高度等于单行表头块高度加 2px 留白。
func TestEqualWidthColumnLayout(t *testing.T) {
	r := newTestRenderer(t)
	table := layout.Table{
		Columns: []string{"One", "Two", "Three"},
		Rows:    [][]*string{{strPtr("a"), strPtr("b"), strPtr("c")}},
	}
	result, err := layout.Build(table, 301, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	if result.ColumnWidth != math.Floor(301.0/3.0) {
		t.Fatalf("column width mismatch: got=%g want=%g", result.ColumnWidth, math.Floor(301.0/3.0))
	}
	if result.ColumnWidth*3 > 301 {
		t.Fatalf("columns exceed canvas width: %g", result.ColumnWidth*3)
	}

	wantHeader := r.LineHeight(layout.FontHeader) + 2*layout.CellPadding + 2
	if diff := math.Abs(result.HeaderHeight - wantHeader); diff > 1e-9 {
		t.Fatalf("header height mismatch: got=%g want=%g", result.HeaderHeight, wantHeader)
	}
}
