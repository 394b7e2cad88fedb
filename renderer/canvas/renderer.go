package canvasrenderer

import (
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/sengh2001/ai-table-to-image/layout"
	"github.com/sengh2001/ai-table-to-image/renderer"
)

// 绘制颜色：背景、表头高亮带与网格/文字。
var (
	backgroundColor = canvas.White
	headerBandColor = canvas.Hex("#f5f5f5")
	gridColor       = canvas.Black
)

// Renderer 通过 github.com/tdewolff/canvas 将布局结果绘制为 PNG 图像。
// 字体资源集在构造时一次性加载，此后只读；多个渲染可并发共享同一实例，
// 每次渲染独占自己的画布。
type Renderer struct {
	fonts *fontSet
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options 配置两个字体变体的来源；未提供时按文件名搜索系统字体目录，
// 最终回退到内置字体。
type Options struct {
	BodyFont   Resource
	HeaderFont Resource
}

// Resource 可以通过 Bytes 或 Path 提供。
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer 创建使用默认字体加载策略的渲染器。
func NewRenderer() (*Renderer, error) { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions 创建带注入字体资源的渲染器。
// 字体加载失败会回退到内置字体而不是报错；仅内置字体不可用时返回错误。
func NewRendererWithOptions(opts Options) (*Renderer, error) {
	fs, err := newFontSet(opts)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fs}, nil
}

// Degraded 报告字体是否处于回退模式（两个变体同为内置常规字体）。
func (r *Renderer) Degraded() bool { return r.fonts.degraded }

// MediaType 返回编码输出的媒体类型。
func (r *Renderer) MediaType() string { return mediaTypePNG }

// TextWidth 实现 layout.Measurer，返回字符串的字形宽度（px）。
func (r *Renderer) TextWidth(s string, font layout.Font) float64 {
	if s == "" {
		return 0
	}
	return r.fonts.face(font).TextWidth(s)
}

// LineHeight 实现 layout.Measurer，返回该字体的固定行高（px）。
func (r *Renderer) LineHeight(font layout.Font) float64 {
	return r.fonts.lineHeight(font)
}

// Render 将布局结果绘制到独占画布并编码为 PNG 字节流。
// 绘制严格按 Result 中的几何进行，不做任何文本度量；固定叠放顺序：
// 背景填充 → 表头高亮带 → 标题 → 表头文字 → 分隔线与数据行 → 纵向网格线。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.CanvasWidth <= 0 || result.CanvasHeight <= 0 {
		return nil, fmt.Errorf("画布尺寸非法: %gx%g", result.CanvasWidth, result.CanvasHeight)
	}

	c := canvas.New(result.CanvasWidth, result.CanvasHeight)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	r.drawBackground(ctx, result)
	r.drawTitle(ctx, result)
	r.drawHeader(ctx, result)
	r.drawBody(ctx, result)
	r.drawGrid(ctx, result)

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	return encodePNG(img)
}

// drawBackground 填充整个画布，再为表头区绘制高亮带。
func (r *Renderer) drawBackground(ctx *canvas.Context, result *layout.Result) {
	fillRect(ctx, 0, 0, result.CanvasWidth, result.CanvasHeight, backgroundColor)
	fillRect(ctx, 0, result.TitleHeight, result.CanvasWidth, result.HeaderHeight, headerBandColor)
}

// drawTitle 在固定边距处绘制标题的预折行文本（若有标题）。
func (r *Renderer) drawTitle(ctx *canvas.Context, result *layout.Result) {
	if result.TitleHeight <= 0 {
		return
	}
	y := layout.TextMargin
	for _, line := range result.TitleBlock.Lines {
		r.drawTextLine(ctx, r.fonts.header, line, layout.TextMargin, y)
		y += result.HeaderLineHeight
	}
}

// drawHeader 逐列绘制表头的预折行文本，行间距为表头字体的固定行高。
func (r *Renderer) drawHeader(ctx *canvas.Context, result *layout.Result) {
	top := result.TitleHeight + layout.CellPadding
	for i, block := range result.Headers {
		x := float64(i)*result.ColumnWidth + layout.CellPadding
		y := top
		for _, line := range block.Lines {
			r.drawTextLine(ctx, r.fonts.header, line, x, y)
			y += result.HeaderLineHeight
		}
	}
}

// drawBody 绘制表头/正文分隔线，随后自上而下绘制每个数据行：
// 先画该行所有单元格的文本，再画行底的横向网格线。
func (r *Renderer) drawBody(ctx *canvas.Context, result *layout.Result) {
	y := result.TitleHeight + result.HeaderHeight
	r.strokeHLine(ctx, y, result.CanvasWidth)
	for rowIdx, blocks := range result.Cells {
		for colIdx, block := range blocks {
			x := float64(colIdx)*result.ColumnWidth + layout.CellPadding
			lineY := y + layout.CellPadding
			for _, line := range block.Lines {
				r.drawTextLine(ctx, r.fonts.body, line, x, lineY)
				lineY += result.BodyLineHeight
			}
		}
		y += result.RowHeights[rowIdx]
		r.strokeHLine(ctx, y, result.CanvasWidth)
	}
}

// drawGrid 最后绘制纵向网格线，贯穿整个画布高度，避免被填充覆盖。
func (r *Renderer) drawGrid(ctx *canvas.Context, result *layout.Result) {
	for i := 1; i <= result.NumColumns(); i++ {
		x := float64(i) * result.ColumnWidth
		ctx.SetStrokeColor(gridColor)
		ctx.SetStrokeWidth(layout.GridLineWidth)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(0, result.CanvasHeight)
		ctx.DrawPath(x, 0, p)
	}
}

func (r *Renderer) drawTextLine(ctx *canvas.Context, face *canvas.FontFace, s string, x, y float64) {
	if s == "" {
		return
	}
	textLine := canvas.NewTextLine(face, s, canvas.Left)
	// 基线位置：行顶部加上字体上升部
	baseline := y + face.Metrics().Ascent
	ctx.DrawText(x, baseline, textLine)
}

func (r *Renderer) strokeHLine(ctx *canvas.Context, y, width float64) {
	ctx.SetStrokeColor(gridColor)
	ctx.SetStrokeWidth(layout.GridLineWidth)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(width, 0)
	ctx.DrawPath(0, y, p)
}

func fillRect(ctx *canvas.Context, x, y, w, h float64, col color.Color) {
	ctx.SetFillColor(col)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}
