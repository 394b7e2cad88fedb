package fonts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed DejaVu/*.ttf
var fontFS embed.FS

// Regular 是内置回退字体的相对路径；回退模式下正文与表头共用该字体。
const Regular = "DejaVu/DejaVuSans.ttf"

// Load 返回内置字体的字节数据，path 可写为 "embed:DejaVu/DejaVuSans.ttf" 或直接 "DejaVuSans.ttf".
func Load(path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "embed:")
	clean := strings.TrimPrefix(path, "DejaVu/")
	target := "DejaVu/" + clean
	data, err := fontFS.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("读取内置字体 %s 失败: %w", target, err)
	}
	return data, nil
}
