package ruling

import "github.com/ByLCY/linedpaper/geometry"

// HorizontalLines 从 (height - top margin) 开始向下，每隔 y spacing 画一条通栏横线，
// 直到低于 bottom margin。
func HorizontalLines(set geometry.HorizontalLineSet, paper geometry.PaperSize) ([]geometry.LineDef, error) {
	err := requirePositive(append(paperChecks(paper),
		check{FieldYSpacing, set.YSpacing},
		check{FieldTopMargin, set.TopMargin},
		check{FieldBottomMargin, set.BottomMargin},
	)...)
	if err != nil {
		return nil, err
	}

	top := paper.Height - set.TopMargin
	n, ok := stepCount(top-set.BottomMargin, set.YSpacing, MaxLinesPerSet, func(i int) bool {
		return top-float64(i)*set.YSpacing >= set.BottomMargin
	})
	if !ok {
		return nil, tooManyLines(FieldYSpacing, set.YSpacing)
	}
	lines := make([]geometry.LineDef, 0, n)
	for i := 0; i < n; i++ {
		y := top - float64(i)*set.YSpacing
		lines = append(lines, geometry.LineDef{
			Start:       geometry.Pt(0, y),
			End:         geometry.PointDef{X: geometry.FarEdge(0), Y: geometry.Abs(y)},
			Thickness:   set.Thickness,
			Color:       set.Color,
			DashPattern: set.DashPattern,
		})
	}
	return lines, nil
}
