package geometry

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB 按无色彩管理的朴素公式把 CMYK 换算为 RGB，并把结果收进 [0, 1]。
// 超出范围的通道在这里才被收敛，定义本身保持原值。
func (c CmykDef) RGB() colorful.Color {
	return colorful.Color{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
	}.Clamped()
}
