package ruling

import (
	"errors"
	"math"
	"testing"

	"github.com/ByLCY/linedpaper/geometry"
)

var letterLandscape = geometry.PaperSize{Width: 279.4, Height: 215.9}

func slantSet(angle float64) geometry.SlantLineSet {
	return geometry.SlantLineSet{XSpacing: 5, SlantAngle: angle, Thickness: 0.4, Color: geometry.Black}
}

// checkInside 断言线段两端都在纸张范围内（含边界）。
func checkInside(t *testing.T, i int, ln geometry.LineDef, paper geometry.PaperSize) {
	t.Helper()
	x0, y0, x1, y1 := resolve(ln, paper)
	for _, v := range []struct {
		name     string
		val, max float64
	}{{"x0", x0, paper.Width}, {"y0", y0, paper.Height}, {"x1", x1, paper.Width}, {"y1", y1, paper.Height}} {
		if v.val < 0 || v.val > v.max {
			t.Fatalf("line %d: %s=%g 超出 [0, %g]", i, v.name, v.val, v.max)
		}
	}
}

// projectToTop 沿斜线方向把起点投影到上边所在直线上。
func projectToTop(ln geometry.LineDef, paper geometry.PaperSize, tanA float64) float64 {
	x0, y0 := ln.Start.ResolveX(paper), ln.Start.ResolveY(paper)
	return x0 + (paper.Height-y0)/tanA
}

func TestSlantHighAnglePortrait(t *testing.T) {
	lines, err := SlantLines(slantSet(46), letter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) <= 2 {
		t.Fatalf("expected more than 2 lines, got %d", len(lines))
	}
	if got := lines[0].End.ResolveX(letter); got != 0 {
		t.Fatalf("首条线应从左边出去: end.x=%g", got)
	}
	if got := lines[len(lines)-1].End.ResolveY(letter); got != 0 {
		t.Fatalf("末条线应从下边出去: end.y=%g", got)
	}
	for i, ln := range lines {
		checkInside(t, i, ln, letter)
	}
}

func TestSlantLowAngleLandscape(t *testing.T) {
	for _, paper := range []geometry.PaperSize{letter, letterLandscape} {
		lines, err := SlantLines(slantSet(60), paper)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) <= 2 {
			t.Fatalf("expected more than 2 lines, got %d", len(lines))
		}
		if got := lines[0].End.ResolveX(paper); got != 0 {
			t.Fatalf("首条线应从左边出去: end.x=%g", got)
		}
		mid := lines[len(lines)/2]
		x0, y0, x1, y1 := resolve(mid, paper)
		if y0 != paper.Height || y1 != 0 {
			t.Fatalf("中间的线应从上边到下边: (%g,%g)-(%g,%g)", x0, y0, x1, y1)
		}
		if !(x0 > 0 && x1 > 0 && x1 < x0) {
			t.Fatalf("中间的线应向左下倾斜: (%g,%g)-(%g,%g)", x0, y0, x1, y1)
		}
		if got := lines[len(lines)-1].End.ResolveY(paper); got != 0 {
			t.Fatalf("末条线应从下边出去: end.y=%g", got)
		}
		for i, ln := range lines {
			checkInside(t, i, ln, paper)
		}
	}
}

// TestSlantEndpointsInsideAcrossAngles 对一组角度与纸张检查端点不越界、斜率一致。
func TestSlantEndpointsInsideAcrossAngles(t *testing.T) {
	papers := []geometry.PaperSize{letter, letterLandscape, {Width: 50, Height: 300}, {Width: 300, Height: 20}, {Width: 3, Height: 3}}
	for _, paper := range papers {
		for _, angle := range []float64{45, 47.5, 52, 60, 75, 89.9, 90} {
			lines, err := SlantLines(slantSet(angle), paper)
			if err != nil {
				t.Fatalf("angle %g: unexpected error: %v", angle, err)
			}
			tanA := math.Tan(angle * math.Pi / 180)
			for i, ln := range lines {
				checkInside(t, i, ln, paper)
				x0, y0, x1, y1 := resolve(ln, paper)
				if x1 > x0 || y1 > y0 {
					t.Fatalf("angle %g line %d: 终点应在起点左下方", angle, i)
				}
				if angle < 89 && x0-x1 > 1e-6 {
					if slope := (y0 - y1) / (x0 - x1); math.Abs(slope-tanA)/tanA > 1e-6 {
						t.Fatalf("angle %g line %d: 斜率 %g, want %g", angle, i, slope, tanA)
					}
				}
				// 起点在上边或右边，终点在下边或左边
				if !(near(y0, paper.Height) || near(x0, paper.Width)) {
					t.Fatalf("angle %g line %d: 起点 (%g,%g) 不在上边或右边", angle, i, x0, y0)
				}
				if !(y1 == 0 || x1 == 0) {
					t.Fatalf("angle %g line %d: 终点 (%g,%g) 不在下边或左边", angle, i, x1, y1)
				}
			}
		}
	}
}

// TestSlantStartPointsHaveNoGaps 验证相邻起点沿斜线方向投影到上边后的距离都等于 x spacing。
func TestSlantStartPointsHaveNoGaps(t *testing.T) {
	for _, angle := range []float64{45, 52, 60, 80} {
		for _, paper := range []geometry.PaperSize{letter, letterLandscape} {
			set := slantSet(angle)
			lines, err := SlantLines(set, paper)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tanA := math.Tan(angle * math.Pi / 180)
			if got := projectToTop(lines[0], paper, tanA); !near(got, set.XSpacing) {
				t.Fatalf("首个起点投影 %g, want %g", got, set.XSpacing)
			}
			for i := 1; i < len(lines); i++ {
				d := projectToTop(lines[i], paper, tanA) - projectToTop(lines[i-1], paper, tanA)
				if math.Abs(d-set.XSpacing) > 1e-6 {
					t.Fatalf("angle %g line %d: 起点间距 %g, want %g", angle, i, d, set.XSpacing)
				}
			}
			// 下一个起点已经越过右下角
			last := projectToTop(lines[len(lines)-1], paper, tanA)
			if corner := paper.Width + paper.Height/tanA; last+set.XSpacing < corner-1e-6 {
				t.Fatalf("angle %g: 末个起点投影 %g 之后仍有空白，角点投影 %g", angle, last, corner)
			}
		}
	}
}

func TestSlantVerticalAtNinetyDegrees(t *testing.T) {
	lines, err := SlantLines(slantSet(90), letter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5, 10, ..., 215（215.9/5 取整 43 条），第二阶段为空
	if len(lines) != 43 {
		t.Fatalf("expected 43 lines, got %d", len(lines))
	}
	for i, ln := range lines {
		x0, y0, x1, y1 := resolve(ln, letter)
		if math.Abs(x0-x1) > 1e-9 || y0 != letter.Height || y1 != 0 {
			t.Fatalf("line %d 应近似竖直: (%g,%g)-(%g,%g)", i, x0, y0, x1, y1)
		}
	}
}

func TestSlantRejectsAngleOutsideRange(t *testing.T) {
	for _, angle := range []float64{44.999, 0, -60, 90.001, 135, math.NaN()} {
		_, err := SlantLines(slantSet(angle), letter)
		var aerr *AngleOutOfRangeError
		if !errors.As(err, &aerr) {
			t.Fatalf("angle %g: expected AngleOutOfRangeError, got %v", angle, err)
		}
		if aerr.Min != 45 || aerr.Max != 90 {
			t.Fatalf("范围应为 [45, 90]: %+v", aerr)
		}
	}
	for _, angle := range []float64{45, 90} {
		if _, err := SlantLines(slantSet(angle), letter); err != nil {
			t.Fatalf("angle %g 在闭区间边界上应被接受: %v", angle, err)
		}
	}
}

func TestSlantPreconditions(t *testing.T) {
	set := slantSet(60)
	set.XSpacing = 0
	_, err := SlantLines(set, letter)
	expectNotPositive(t, err, FieldXSpacing, 0)

	_, err = SlantLines(slantSet(60), geometry.PaperSize{Width: 0, Height: 10})
	expectNotPositive(t, err, FieldPaperWidth, 0)

	_, err = SlantLines(slantSet(60), geometry.PaperSize{Width: 10, Height: -3})
	expectNotPositive(t, err, FieldPaperHeight, -3)

	// 角度检查先于其它检查
	bad := slantSet(30)
	bad.XSpacing = -1
	_, err = SlantLines(bad, letter)
	var aerr *AngleOutOfRangeError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected angle error first, got %v", err)
	}
}

func TestSlantLinesAreSolid(t *testing.T) {
	lines, err := SlantLines(slantSet(52), letter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, ln := range lines {
		if ln.DashPattern != nil || ln.Thickness != 0.4 || ln.Color != geometry.Black {
			t.Fatalf("line %d 线型错误: %+v", i, ln)
		}
	}
}
