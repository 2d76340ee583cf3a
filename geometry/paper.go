package geometry

import (
	"fmt"
	"strings"
)

// 常用纸张尺寸（纵向，mm）。
var namedPapers = map[string]PaperSize{
	"letter": {Width: 215.9, Height: 279.4},
	"legal":  {Width: 215.9, Height: 355.6},
	"a3":     {Width: 297, Height: 420},
	"a4":     {Width: 210, Height: 297},
	"a5":     {Width: 148, Height: 210},
}

// NamedPaper 按名称查找纸张尺寸，landscape 为真时交换宽高。
func NamedPaper(name string, landscape bool) (PaperSize, error) {
	p, ok := namedPapers[strings.ToLower(name)]
	if !ok {
		return PaperSize{}, fmt.Errorf("未知的纸张尺寸 %q", name)
	}
	if landscape {
		p.Width, p.Height = p.Height, p.Width
	}
	return p, nil
}
