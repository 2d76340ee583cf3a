package ruling

import "math"

// MaxLinesPerSet 是单个线组最多生成的线段数。
const MaxLinesPerSet = 1_000_000

// stepCount 返回满足 inside(i) 的连续下标 i = 0, 1, ... 的个数。
//
// 先用 floor(span/step)+1 估算，再以实际算出的坐标逐个修正，
// 所以结果与逐条判断边界的循环一致，而坐标本身由 start ± i*step 直接算出，不会累积误差。
// 个数超过 limit 时第二个返回值为 false。
func stepCount(span, step float64, limit int, inside func(i int) bool) (int, bool) {
	n := math.Floor(span / step)
	if n < 0 {
		return 0, true
	}
	if math.IsNaN(n) || n >= float64(limit) {
		return 0, false
	}
	count := int(n) + 1
	for count > 0 && !inside(count-1) {
		count--
	}
	for inside(count) {
		count++
	}
	return count, count <= limit
}

func tooManyLines(field string, spacing float64) error {
	return &TooManyLinesError{Field: field, Spacing: spacing, Max: MaxLinesPerSet}
}
