package canvasrenderer

import (
	"bytes"
	"image/png"
	"math"
	"sync"
	"testing"

	"github.com/sengh2001/ai-table-to-image/layout"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func strPtr(s string) *string { return &s }

func TestTextWidthEmptyStringIsZero(t *testing.T) {
	r := newTestRenderer(t)
	if w := r.TextWidth("", layout.FontBody); w != 0 {
		t.Fatalf("empty string width must be 0, got %g", w)
	}
	if w := r.TextWidth("hello", layout.FontBody); w <= 0 {
		t.Fatalf("non-empty string width must be positive, got %g", w)
	}
}

// 行高对同一字体恒定，与被度量内容无关；表头字号更大因此行高更大。
func TestLineHeightFixedPerFont(t *testing.T) {
	r := newTestRenderer(t)
	body := r.LineHeight(layout.FontBody)
	header := r.LineHeight(layout.FontHeader)
	if body <= 0 || header <= 0 {
		t.Fatalf("line heights must be positive: body=%g header=%g", body, header)
	}
	if again := r.LineHeight(layout.FontBody); again != body {
		t.Fatalf("body line height changed between calls: %g vs %g", body, again)
	}
	if header <= body {
		t.Fatalf("header line height should exceed body: body=%g header=%g", body, header)
	}
}

func TestRenderProducesDeclaredDimensions(t *testing.T) {
	r := newTestRenderer(t)
	table := layout.Table{
		Title:   "Demo",
		Columns: []string{"A", "B"},
		Rows:    [][]*string{{strPtr("1"), strPtr("2")}},
	}
	result, err := layout.Build(table, 200, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	data, err := r.Render(result)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	wantW := int(math.Round(result.CanvasWidth))
	wantH := int(math.Round(result.CanvasHeight))
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Fatalf("dimensions mismatch: got=%dx%d want=%dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestRenderNilResult(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}

func TestMediaType(t *testing.T) {
	r := newTestRenderer(t)
	if got := r.MediaType(); got != "image/png" {
		t.Fatalf("unexpected media type: %s", got)
	}
}

// 同一 Result 的多次渲染必须字节一致，且渲染器可被并发共享。
func TestRenderDeterministicAndConcurrent(t *testing.T) {
	r := newTestRenderer(t)
	table := layout.Table{
		Columns: []string{"Name", "Notes"},
		Rows: [][]*string{
			{strPtr("alpha"), strPtr("some wrapped cell content goes here")},
			{nil, strPtr("second")},
		},
	}
	result, err := layout.Build(table, 320, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	want, err := r.Render(result)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	const workers = 4
	outputs := make([][]byte, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = r.Render(result)
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("concurrent render %d failed: %v", i, errs[i])
		}
		if !bytes.Equal(outputs[i], want) {
			t.Fatalf("concurrent render %d produced different bytes", i)
		}
	}
}

// 字体数据损坏时回退到内置字体：不报错，两个变体退化为同一字体家族。
func TestDegradedFallbackFont(t *testing.T) {
	garbage := Resource{Bytes: []byte("not a font")}
	r, err := NewRendererWithOptions(Options{BodyFont: garbage, HeaderFont: garbage})
	if err != nil {
		t.Fatalf("fallback must not surface an error: %v", err)
	}
	if !r.Degraded() {
		t.Fatalf("expected degraded font mode")
	}

	table := layout.Table{Columns: []string{"A"}, Rows: [][]*string{{strPtr("x")}}}
	result, err := layout.Build(table, 100, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	if _, err := r.Render(result); err != nil {
		t.Fatalf("degraded render failed: %v", err)
	}
}
