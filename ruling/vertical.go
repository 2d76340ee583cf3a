package ruling

import "github.com/ByLCY/linedpaper/geometry"

// VerticalLines 从 left margin 开始向右，每隔 x spacing 画一条通高竖线，
// 直到超过 (width - right margin)。
func VerticalLines(set geometry.VerticalLineSet, paper geometry.PaperSize) ([]geometry.LineDef, error) {
	err := requirePositive(append(paperChecks(paper),
		check{FieldXSpacing, set.XSpacing},
		check{FieldLeftMargin, set.LeftMargin},
		check{FieldRightMargin, set.RightMargin},
	)...)
	if err != nil {
		return nil, err
	}

	right := paper.Width - set.RightMargin
	n, ok := stepCount(right-set.LeftMargin, set.XSpacing, MaxLinesPerSet, func(i int) bool {
		return set.LeftMargin+float64(i)*set.XSpacing <= right
	})
	if !ok {
		return nil, tooManyLines(FieldXSpacing, set.XSpacing)
	}
	lines := make([]geometry.LineDef, 0, n)
	for i := 0; i < n; i++ {
		x := set.LeftMargin + float64(i)*set.XSpacing
		lines = append(lines, geometry.LineDef{
			Start:       geometry.Pt(x, 0),
			End:         geometry.Pt(x, paper.Height),
			Thickness:   set.Thickness,
			Color:       set.Color,
			DashPattern: set.DashPattern,
		})
	}
	return lines, nil
}
