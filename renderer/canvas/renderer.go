package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/linedpaper/geometry"
	"github.com/ByLCY/linedpaper/renderer"
	"github.com/ByLCY/linedpaper/ruling"
)

// hairlineWidth 是线宽不为正数时使用的线宽（mm）。
const hairlineWidth = 0.05

// DefaultCreator 写入 PDF 信息字典的 Creator 字段。
const DefaultCreator = "linedpaper"

// Renderer draws ruled pages via github.com/tdewolff/canvas.
type Renderer struct {
	title    string
	creator  string
	maxPages int
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Title    string
	Creator  string
	MaxPages int // <= 0 时使用 renderer.DefaultMaxPages
}

// NewRenderer creates a canvas-based PDF renderer.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{title: opts.Title, creator: opts.Creator, maxPages: opts.MaxPages}
	if r.creator == "" {
		r.creator = DefaultCreator
	}
	if r.maxPages <= 0 {
		r.maxPages = renderer.DefaultMaxPages
	}
	return r
}

// Render 把同一组线段画到每一页上，返回 PDF 字节。
func (r *Renderer) Render(result *ruling.Result, pages int) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if err := renderer.ValidatePageCount(pages, r.maxPages); err != nil {
		return nil, err
	}
	w, h := result.Paper.Width, result.Paper.Height
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("纸张尺寸无效: %g x %g", w, h)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo(r.title, "", "", "", r.creator)
	for i := 0; i < pages; i++ {
		if i > 0 {
			writer.NewPage(w, h)
		}
		// 默认坐标系原点在左下角，与线段坐标一致
		c := canvas.New(w, h)
		ctx := canvas.NewContext(c)
		r.drawLines(ctx, result)
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLines 绘制线段（毫米单位），每条线绘制前重新设置颜色、线宽与虚线。
func (r *Renderer) drawLines(ctx *canvas.Context, result *ruling.Result) {
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeCapper(canvas.RoundCap)
	for _, ln := range result.Lines {
		x1, y1 := ln.Start.ResolveX(result.Paper), ln.Start.ResolveY(result.Paper)
		x2, y2 := ln.End.ResolveX(result.Paper), ln.End.ResolveY(result.Paper)

		ctx.SetStrokeColor(colorFromCMYK(ln.Color))
		ctx.SetStrokeWidth(strokeWidth(ln.Thickness))
		if dashes, ok := dashPattern(ln.DashPattern); ok {
			ctx.SetDashes(0, dashes...)
		} else {
			ctx.SetDashes(0)
		}

		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(x2-x1, y2-y1)
		ctx.DrawPath(x1, y1, p)
	}
}

// strokeWidth 将线宽从 pt 换算为 mm；不为正数时退化为细线。
func strokeWidth(pt float64) float64 {
	if !(pt > 0) {
		return hairlineWidth
	}
	return toMm(pt)
}

// dashPattern 返回以 mm 表示的 [dash, gap]；第二个返回值为 false 时画实线。
// gap 缺省时与 dash 相同；任一值为负，或二者都为 0 时画实线；
// dash 为 0 而 gap 为正时依靠圆头线帽画出圆点。
func dashPattern(d *geometry.DashPatternDef) ([]float64, bool) {
	if d == nil {
		return nil, false
	}
	dash := d.Dash
	gap := dash
	if d.Gap != nil {
		gap = *d.Gap
	}
	if dash < 0 || gap < 0 || (dash == 0 && gap == 0) {
		return nil, false
	}
	return []float64{toMm(float64(dash)), toMm(float64(gap))}, true
}

// colorFromCMYK 按 (1-C)(1-K) 换算为 RGB；canvas 只接受 color.Color，PDF 中写入的是 DeviceRGB。
func colorFromCMYK(c geometry.CmykDef) color.Color {
	rgb := c.RGB()
	return canvas.RGBA(rgb.R, rgb.G, rgb.B, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * geometry.PtToMm }
