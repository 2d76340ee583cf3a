package ruling

import "github.com/ByLCY/linedpaper/geometry"

// seyesMotif 是每组 4 条线的样式：辅线、主线、辅线、辅线。
var seyesMotif = [4]bool{false, true, false, false}

// SeyesLines 生成法式横线。
//
// 顶部先画两条辅线（各自仅在不低于 bottom margin 时输出），之后按
// [辅, 主, 辅, 辅] 每组 4 条向下重复。每组开始前的判断是 y + 4*spacing >= bottom margin，
// 其中 y 是上一条线的位置，因此最后一两组会落到 bottom margin 以下。
func SeyesLines(set geometry.SeyesLineSet, paper geometry.PaperSize) ([]geometry.LineDef, error) {
	err := requirePositive(append(paperChecks(paper),
		check{FieldYSpacing, set.YSpacing},
		check{FieldTopMargin, set.TopMargin},
		check{FieldBottomMargin, set.BottomMargin},
	)...)
	if err != nil {
		return nil, err
	}

	line := func(y float64, base bool) geometry.LineDef {
		l := geometry.LineDef{
			Start:     geometry.Pt(0, y),
			End:       geometry.Pt(paper.Width, y),
			Thickness: set.AuxThickness,
			Color:     set.AuxColor,
		}
		if base {
			l.Thickness = set.BaseThickness
			l.Color = set.BaseColor
		}
		return l
	}

	s := set.YSpacing
	y0 := paper.Height - set.TopMargin
	y1 := y0 - s

	var lines []geometry.LineDef
	if y0 >= set.BottomMargin {
		lines = append(lines, line(y0, false))
	}
	if y1 >= set.BottomMargin {
		lines = append(lines, line(y1, false))
	}

	// 第 b 组开始前的位置是 y1 - 4*b*s，只要它加上 4*s 不低于 bottom margin 就继续
	blocks, ok := stepCount(y1-set.BottomMargin+4*s, 4*s, MaxLinesPerSet/4, func(b int) bool {
		return y1-float64(4*(b-1))*s >= set.BottomMargin
	})
	if !ok {
		return nil, tooManyLines(FieldYSpacing, s)
	}
	for b := 0; b < blocks; b++ {
		for j, base := range seyesMotif {
			y := y1 - float64(4*b+j+1)*s
			lines = append(lines, line(y, base))
		}
	}
	return lines, nil
}
