package geometry

// 该文件定义纸张与线组的数据模型，供生成器、渲染器与调试 JSON 共用。
// 所有长度单位为毫米（mm），线宽为点（pt）。

// PaperSize 记录纸张宽高（mm）。
type PaperSize struct {
	Width  float64 `yaml:"width mm" json:"width"`
	Height float64 `yaml:"height mm" json:"height"`
}

// Coord 是一个坐标分量：从原点量起，或从对边向内量起。
type Coord struct {
	Value       float64
	FromFarEdge bool
}

// Abs 返回从原点量起的坐标。
func Abs(v float64) Coord { return Coord{Value: v} }

// FarEdge 返回从对边向内量起的坐标。
func FarEdge(v float64) Coord { return Coord{Value: v, FromFarEdge: true} }

// Resolve 根据对应方向的纸张尺寸求出绝对坐标。
// 不做边界裁剪：超出纸张的值原样返回（可能为负）。
func (c Coord) Resolve(dim float64) float64 {
	if c.FromFarEdge {
		return dim - c.Value
	}
	return c.Value
}

// PointDef 是尚未解析的点，只有在落到具体纸张上时才求出绝对坐标。
type PointDef struct {
	X Coord `yaml:"x mm"`
	Y Coord `yaml:"y mm"`
}

// Pt 返回一个以原点为基准的点。
func Pt(x, y float64) PointDef { return PointDef{X: Abs(x), Y: Abs(y)} }

// ResolveX 以纸张宽度解析 x。
func (p PointDef) ResolveX(paper PaperSize) float64 { return p.X.Resolve(paper.Width) }

// ResolveY 以纸张高度解析 y。
func (p PointDef) ResolveY(paper PaperSize) float64 { return p.Y.Resolve(paper.Height) }

// CmykDef 采用 0.0-1.0 的 CMYK 通道，不做范围校验。
type CmykDef struct {
	C float64
	M float64
	Y float64
	K float64
}

// Black 为纯黑（K=100%）。
var Black = CmykDef{K: 1}

// DashPatternDef 描述虚线样式（pt）。Gap 为空时与 Dash 相同。
type DashPatternDef struct {
	Dash int64  `yaml:"dash" json:"dash"`
	Gap  *int64 `yaml:"gap" json:"gap,omitempty"`
}

// LineDef 是最终输出的线段；生成后不再修改。
type LineDef struct {
	Start       PointDef        `yaml:"start"`
	End         PointDef        `yaml:"end"`
	Thickness   float64         `yaml:"thickness pt"`
	Color       CmykDef         `yaml:"color cmyk"`
	DashPattern *DashPatternDef `yaml:"dash pattern"`
}

// SlantLineSet 描述铺满整页的斜线（书法斜线格）。
type SlantLineSet struct {
	XSpacing   float64 `yaml:"x spacing mm"`
	SlantAngle float64 `yaml:"slant angle deg"`
	Thickness  float64 `yaml:"thickness pt"`
	Color      CmykDef `yaml:"color cmyk"`
}

// SeyesLineSet 描述法式（Seyes）横线：每 4 条为一组，其中一条为主线。
type SeyesLineSet struct {
	YSpacing      float64 `yaml:"y spacing mm"`
	TopMargin     float64 `yaml:"top margin mm"`
	BottomMargin  float64 `yaml:"bottom margin mm"`
	BaseThickness float64 `yaml:"base thickness pt"`
	BaseColor     CmykDef `yaml:"base color cmyk"`
	AuxThickness  float64 `yaml:"aux thickness pt"`
	AuxColor      CmykDef `yaml:"aux color cmyk"`
}

// HorizontalLineSet 描述等距横线。
type HorizontalLineSet struct {
	YSpacing     float64         `yaml:"y spacing mm"`
	TopMargin    float64         `yaml:"top margin mm"`
	BottomMargin float64         `yaml:"bottom margin mm"`
	Thickness    float64         `yaml:"thickness pt"`
	Color        CmykDef         `yaml:"color cmyk"`
	DashPattern  *DashPatternDef `yaml:"dash pattern"`
}

// VerticalLineSet 描述等距竖线。
type VerticalLineSet struct {
	XSpacing    float64         `yaml:"x spacing mm"`
	LeftMargin  float64         `yaml:"left margin mm"`
	RightMargin float64         `yaml:"right margin mm"`
	Thickness   float64         `yaml:"thickness pt"`
	Color       CmykDef         `yaml:"color cmyk"`
	DashPattern *DashPatternDef `yaml:"dash pattern"`
}

// 线组类型名，与 YAML 中的键一致。
const (
	KindSlant      = "slant"
	KindSeyes      = "seyes"
	KindHorizontal = "horizontal lines"
	KindVertical   = "vertical lines"
	KindSingle     = "single line"
)

// LineSet 是五种线组之一，恰好有一个字段非空。
type LineSet struct {
	Slant      *SlantLineSet
	Seyes      *SeyesLineSet
	Horizontal *HorizontalLineSet
	Vertical   *VerticalLineSet
	Single     *LineDef
}

// Kind 返回线组类型名。
func (s *LineSet) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Slant != nil:
		return KindSlant
	case s.Seyes != nil:
		return KindSeyes
	case s.Horizontal != nil:
		return KindHorizontal
	case s.Vertical != nil:
		return KindVertical
	case s.Single != nil:
		return KindSingle
	default:
		return "unknown"
	}
}

// GeometryDef 是定义文件的根：纸张尺寸与按声明顺序排列的线组。
type GeometryDef struct {
	PaperSize PaperSize  `yaml:"paper size"`
	LineSets  []*LineSet `yaml:"line sets"`
}
