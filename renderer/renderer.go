package renderer

import "github.com/sengh2001/ai-table-to-image/layout"

// Renderer 将布局结果输出为编码后的图像字节流。
// Render 返回生成的二进制数据以及可能的错误；MediaType 返回输出对应的媒体类型。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
	MediaType() string
}
