package canvasrenderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"

	"github.com/sengh2001/ai-table-to-image/fonts"
	"github.com/sengh2001/ai-table-to-image/layout"
)

const (
	bodyFontSize   = 14.0 // px
	headerFontSize = 16.0 // px

	bodyFontFile   = "DejaVuSans.ttf"
	headerFontFile = "DejaVuSans-Bold.ttf"

	// 行高从固定的参考字形对采样一次，与实际渲染内容无关。
	lineHeightSample = "Ag"
)

// systemFontDirs 是按文件名查找运行环境字体时搜索的目录。
var systemFontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	`C:\Windows\Fonts`,
}

// fontSet 是进程内只读的字体资源集：正文与表头两个变体及各自的固定行高。
// 构造完成后不再变化，可被并发渲染安全共享。
type fontSet struct {
	body     *canvas.FontFace
	header   *canvas.FontFace
	bodyLH   float64
	headerLH float64
	degraded bool
}

// newFontSet 按「注入资源 → 系统字体目录 → 内置回退」的顺序加载两个变体。
// 任一变体不可用时两者一并回退到内置常规字体（退化模式），保证表头与正文
// 始终来自同一字体家族；仅当内置字体本身不可用时才返回错误。
func newFontSet(opts Options) (*fontSet, error) {
	fs := &fontSet{
		body:   loadFace(opts.BodyFont, bodyFontFile, canvas.FontRegular, bodyFontSize),
		header: loadFace(opts.HeaderFont, headerFontFile, canvas.FontBold, headerFontSize),
	}
	if fs.body == nil || fs.header == nil {
		data, err := fonts.Load(fonts.Regular)
		if err != nil {
			return nil, fmt.Errorf("加载内置回退字体失败: %w", err)
		}
		fs.body = faceFromBytes(data, "fallback", canvas.FontRegular, bodyFontSize)
		fs.header = faceFromBytes(data, "fallback", canvas.FontRegular, headerFontSize)
		if fs.body == nil || fs.header == nil {
			return nil, fmt.Errorf("内置回退字体不可用")
		}
		fs.degraded = true
	}
	fs.bodyLH = sampleLineHeight(fs.body)
	fs.headerLH = sampleLineHeight(fs.header)
	return fs, nil
}

func (fs *fontSet) face(font layout.Font) *canvas.FontFace {
	if font == layout.FontHeader {
		return fs.header
	}
	return fs.body
}

func (fs *fontSet) lineHeight(font layout.Font) float64 {
	if font == layout.FontHeader {
		return fs.headerLH
	}
	return fs.bodyLH
}

// loadFace 解析单个变体：优先使用注入的字节或路径，否则按文件名搜索
// 系统字体目录。任何失败都返回 nil，由调用方统一回退。
func loadFace(res Resource, fileName string, style canvas.FontStyle, sizePx float64) *canvas.FontFace {
	data := res.Bytes
	if len(data) == 0 && res.Path != "" {
		data, _ = os.ReadFile(res.Path)
	}
	if len(data) == 0 {
		data = findSystemFont(fileName)
	}
	if len(data) == 0 {
		return nil
	}
	return faceFromBytes(data, fileName, style, sizePx)
}

func faceFromBytes(data []byte, familyName string, style canvas.FontStyle, sizePx float64) *canvas.FontFace {
	family := canvas.NewFontFamily(familyName)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil
	}
	return family.Face(layout.PxToPt(sizePx), canvas.Black, style, canvas.FontNormal)
}

func findSystemFont(name string) []byte {
	for _, dir := range systemFontDirs {
		if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
			return data
		}
	}
	return nil
}

// sampleLineHeight 用参考字形对 "Ag" 采样该字体的固定行高（px）。
func sampleLineHeight(face *canvas.FontFace) float64 {
	return canvas.NewTextLine(face, lineHeightSample, canvas.Left).Bounds().H
}
