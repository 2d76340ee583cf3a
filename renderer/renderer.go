package renderer

import (
	"fmt"

	"github.com/ByLCY/linedpaper/ruling"
)

// 页数限制（闭区间）。
const (
	MinPages        = 1
	DefaultMaxPages = 10000
)

// Renderer 将展开后的线段输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误；每一页内容相同。
type Renderer interface {
	Render(result *ruling.Result, pages int) ([]byte, error)
}

// PageCountError 表示请求的页数超出允许范围。
type PageCountError struct {
	Count int
	Min   int
	Max   int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("页数 %d 超出范围 [%d, %d]", e.Count, e.Min, e.Max)
}

// ValidatePageCount 检查页数是否落在 [MinPages, max] 内。max <= 0 时使用 DefaultMaxPages。
func ValidatePageCount(n, max int) error {
	if max <= 0 {
		max = DefaultMaxPages
	}
	if n < MinPages || n > max {
		return &PageCountError{Count: n, Min: MinPages, Max: max}
	}
	return nil
}
