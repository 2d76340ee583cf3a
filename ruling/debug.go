package ruling

import (
	"encoding/json"
	"os"

	"github.com/ByLCY/linedpaper/geometry"
)

// debugLine 是线段在调试 JSON 中的形式：坐标已按纸张解析为绝对值（mm）。
type debugLine struct {
	X1        float64                  `json:"x1"`
	Y1        float64                  `json:"y1"`
	X2        float64                  `json:"x2"`
	Y2        float64                  `json:"y2"`
	Thickness float64                  `json:"thicknessPt"`
	CMYK      [4]float64               `json:"cmyk"`
	Hex       string                   `json:"hex"`
	Dash      *geometry.DashPatternDef `json:"dash,omitempty"`
}

type debugResult struct {
	Paper geometry.PaperSize `json:"paper"`
	Count int                `json:"count"`
	Lines []debugLine        `json:"lines"`
}

// resolved 把线段列表转换为调试视图，便于比较两次展开的结果。
func (r *Result) resolved() debugResult {
	out := debugResult{Paper: r.Paper, Count: len(r.Lines), Lines: make([]debugLine, 0, len(r.Lines))}
	for _, ln := range r.Lines {
		out.Lines = append(out.Lines, debugLine{
			X1:        ln.Start.ResolveX(r.Paper),
			Y1:        ln.Start.ResolveY(r.Paper),
			X2:        ln.End.ResolveX(r.Paper),
			Y2:        ln.End.ResolveY(r.Paper),
			Thickness: ln.Thickness,
			CMYK:      [4]float64{ln.Color.C, ln.Color.M, ln.Color.Y, ln.Color.K},
			Hex:       ln.Color.RGB().Hex(),
			Dash:      ln.DashPattern,
		})
	}
	return out
}

// MarshalDebugJSON 将展开结果编码为带缩进的 JSON。
func MarshalDebugJSON(res *Result) ([]byte, error) {
	return json.MarshalIndent(res.resolved(), "", "  ")
}

// WriteDebugJSON 将展开结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	data, err := MarshalDebugJSON(res)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
