package ruling

import (
	"fmt"

	"github.com/ByLCY/linedpaper/geometry"
)

// Result 保存展开后的纸张尺寸与全部线段，线段顺序与线组声明顺序一致。
type Result struct {
	Paper geometry.PaperSize
	Lines []geometry.LineDef
}

// Expand 依次展开每个线组并拼接结果。任何一个线组失败都会中止整个过程。
func Expand(def *geometry.GeometryDef) (*Result, error) {
	if def == nil {
		return nil, fmt.Errorf("定义为空")
	}
	res := &Result{Paper: def.PaperSize}
	for i, set := range def.LineSets {
		lines, err := expandSet(set, def.PaperSize)
		if err != nil {
			return nil, fmt.Errorf("第 %d 个线组（%s）生成失败: %w", i+1, set.Kind(), err)
		}
		res.Lines = append(res.Lines, lines...)
	}
	return res, nil
}

func expandSet(set *geometry.LineSet, paper geometry.PaperSize) ([]geometry.LineDef, error) {
	switch {
	case set == nil:
		return nil, fmt.Errorf("线组为空")
	case set.Single != nil:
		return []geometry.LineDef{*set.Single}, nil
	case set.Slant != nil:
		return SlantLines(*set.Slant, paper)
	case set.Seyes != nil:
		return SeyesLines(*set.Seyes, paper)
	case set.Horizontal != nil:
		return HorizontalLines(*set.Horizontal, paper)
	case set.Vertical != nil:
		return VerticalLines(*set.Vertical, paper)
	default:
		return nil, fmt.Errorf("线组未指定类型")
	}
}
