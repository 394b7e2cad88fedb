package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// mediaTypePNG 是编码输出声明的媒体类型。
const mediaTypePNG = "image/png"

// encodePNG 将栅格化结果编码为 PNG 字节流，不改变尺寸与像素值。
// 编码失败是渲染管线中唯一向调用方传播的硬错误。
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}
