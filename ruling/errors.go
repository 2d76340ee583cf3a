package ruling

import (
	"fmt"
	"math"

	"github.com/ByLCY/linedpaper/geometry"
)

// NotPositiveError 表示某个尺寸、间距或边距不是正数。
type NotPositiveError struct {
	Field string
	Value float64
}

func (e *NotPositiveError) Error() string {
	return fmt.Sprintf("%s 为 %g，必须为有限正数", e.Field, e.Value)
}

// AngleOutOfRangeError 表示斜线角度超出允许范围（闭区间）。
type AngleOutOfRangeError struct {
	Actual float64
	Min    float64
	Max    float64
}

func (e *AngleOutOfRangeError) Error() string {
	return fmt.Sprintf("斜线角度 %g 超出范围，必须在 %g 到 %g 度之间", e.Actual, e.Min, e.Max)
}

// 校验时使用的字段名。
const (
	FieldPaperWidth   = "paper width"
	FieldPaperHeight  = "paper height"
	FieldXSpacing     = "x spacing"
	FieldYSpacing     = "y spacing"
	FieldTopMargin    = "top margin"
	FieldBottomMargin = "bottom margin"
	FieldLeftMargin   = "left margin"
	FieldRightMargin  = "right margin"
)

type check struct {
	field string
	value float64
}

// requirePositive 按顺序检查，返回第一个不满足的字段。NaN 与无穷大同样不通过。
func requirePositive(checks ...check) error {
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return &NotPositiveError{Field: c.field, Value: c.value}
		}
	}
	return nil
}

func paperChecks(paper geometry.PaperSize) []check {
	return []check{
		{FieldPaperWidth, paper.Width},
		{FieldPaperHeight, paper.Height},
	}
}

// TooManyLinesError 表示间距相对跨度过小，线组会生成过多线段。
type TooManyLinesError struct {
	Field   string
	Spacing float64
	Max     int
}

func (e *TooManyLinesError) Error() string {
	return fmt.Sprintf("%s 为 %g，生成的线段将超过 %d 条", e.Field, e.Spacing, e.Max)
}
