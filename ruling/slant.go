package ruling

import (
	"math"

	"github.com/ByLCY/linedpaper/geometry"
)

// 允许的斜线角度（度，闭区间）。
const (
	MinSlantAngle = 45.0
	MaxSlantAngle = 90.0
)

// SlantLines 用一组平行斜线铺满整页。
//
// 每条线从页面上边（或右边）出发，向左下延伸，直到碰到下边或左边。
// 起点先沿上边从 x spacing 开始每隔 x spacing 向右移动；越过右边后，
// 起点改为沿右边向下移动，间距为 x spacing * tan(angle)，这样相邻两线在上边方向的投影距离不变。
// 所有端点都落在 [0, width] × [0, height] 内。
func SlantLines(set geometry.SlantLineSet, paper geometry.PaperSize) ([]geometry.LineDef, error) {
	if !(set.SlantAngle >= MinSlantAngle && set.SlantAngle <= MaxSlantAngle) {
		return nil, &AngleOutOfRangeError{Actual: set.SlantAngle, Min: MinSlantAngle, Max: MaxSlantAngle}
	}
	err := requirePositive(check{FieldXSpacing, set.XSpacing}, check{FieldPaperWidth, paper.Width}, check{FieldPaperHeight, paper.Height})
	if err != nil {
		return nil, err
	}

	w, h := paper.Width, paper.Height
	s := set.XSpacing
	tanA := math.Tan(set.SlantAngle * math.Pi / 180)

	var lines []geometry.LineDef
	add := func(x0, y0, x1, y1 float64) {
		lines = append(lines, geometry.LineDef{
			Start:     geometry.Pt(clamp(x0, w), clamp(y0, h)),
			End:       geometry.Pt(clamp(x1, w), clamp(y1, h)),
			Thickness: set.Thickness,
			Color:     set.Color,
		})
	}

	// 第一阶段：起点在上边。
	top, ok := stepCount(w-s, s, MaxLinesPerSet, func(i int) bool {
		return float64(i+1)*s <= w
	})
	if !ok {
		return nil, tooManyLines(FieldXSpacing, s)
	}
	for k := 1; k <= top; k++ {
		x0 := float64(k) * s
		x1, y1 := x0-h/tanA, 0.0
		if x1 < 0 {
			x1, y1 = 0, h-x0*tanA
		}
		add(x0, h, x1, y1)
	}

	// 第二阶段：第一个越过右边的起点落到右边上，再沿右边向下。
	overshoot := float64(top+1)*s - w
	yStart := h - overshoot*tanA
	ySpacing := s * tanA
	right, ok := stepCount(yStart, ySpacing, MaxLinesPerSet-top, func(k int) bool {
		return yStart-float64(k)*ySpacing >= 0
	})
	if !ok {
		return nil, tooManyLines(FieldXSpacing, s)
	}
	for k := 0; k < right; k++ {
		y0 := yStart - float64(k)*ySpacing
		x1, y1 := w-y0/tanA, 0.0
		if x1 < 0 {
			x1, y1 = 0, y0-w*tanA
		}
		add(w, y0, x1, y1)
	}
	return lines, nil
}

// clamp 把舍入误差造成的微小越界收回到 [0, max]。
func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
