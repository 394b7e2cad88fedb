package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sengh2001/ai-table-to-image/dsl"
	"github.com/sengh2001/ai-table-to-image/layout"
	"github.com/sengh2001/ai-table-to-image/renderer"
	canvasrenderer "github.com/sengh2001/ai-table-to-image/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/demo.table", "表格 DSL 文件路径")
	tableJSON := flag.String("table", "", "表格 JSON（{title, columns, rows}），与 -in 二选一")
	dataJSON := flag.String("data", "", "绑定到 DSL 的 JSON 数据")
	output := flag.String("out", "output/table.png", "图像输出路径")
	width := flag.Float64("width", layout.DefaultMaxWidth, "画布宽度（px）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	r, err := canvasrenderer.NewRenderer()
	if err != nil {
		log.Fatalf("初始化渲染器失败: %v", err)
	}
	if err := run(*input, *tableJSON, *dataJSON, *output, *debug, *width, r); err != nil {
		log.Fatalf("生成表格图像失败: %v", err)
	}
	fmt.Printf("已生成 %s：%s\n", r.MediaType(), *output)
}

// run 串联输入解析、布局与渲染。
func run(inputPath, tableJSON, dataJSON, outputPath, debugPath string, width float64, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	m, ok := r.(layout.Measurer)
	if !ok {
		return fmt.Errorf("renderer 未实现字体度量接口")
	}

	table, err := loadTable(inputPath, tableJSON, dataJSON)
	if err != nil {
		return err
	}

	result, err := layout.Build(table, width, layout.BuildOptions{Measurer: m})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	imgBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染图像失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(outputPath, imgBytes, 0o644); err != nil {
		return fmt.Errorf("写入图像文件失败: %w", err)
	}
	return nil
}

// loadTable 支持两种输入：-table 直接给出边界约定的 JSON 形态，
// 或 -in 指定 DSL 文件并用 -data 做数据插值。
func loadTable(inputPath, tableJSON, dataJSON string) (layout.Table, error) {
	if tableJSON != "" {
		var table layout.Table
		if err := json.Unmarshal([]byte(tableJSON), &table); err != nil {
			return layout.Table{}, fmt.Errorf("解析 table JSON 失败: %w", err)
		}
		return table, nil
	}
	if inputPath == "" {
		return layout.Table{}, fmt.Errorf("需要 -in 或 -table 之一")
	}

	var data any
	if dataJSON != "" {
		if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
			return layout.Table{}, fmt.Errorf("解析 data JSON 失败: %w", err)
		}
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return layout.Table{}, fmt.Errorf("无法打开 DSL 文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return layout.Table{}, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	return layout.FromDocument(doc, data)
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
