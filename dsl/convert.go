package dsl

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/linedpaper/geometry"
)

// Load parses a ruling file and converts it into a geometry definition.
func Load(r io.Reader) (*geometry.GeometryDef, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return doc.Geometry()
}

// Geometry converts the parsed document into a geometry definition.
// Line sets keep their declaration order.
func (d *Document) Geometry() (*geometry.GeometryDef, error) {
	if d == nil || d.Paper == nil {
		return nil, fmt.Errorf("missing paper declaration")
	}
	paper, err := d.Paper.size()
	if err != nil {
		return nil, fmt.Errorf("line %d: paper: %w", d.Paper.Pos.Line, err)
	}
	def := &geometry.GeometryDef{PaperSize: paper}
	for _, decl := range d.Sets {
		set, err := decl.lineSet()
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", decl.Pos.Line, decl.Kind, err)
		}
		def.LineSets = append(def.LineSets, set)
	}
	return def, nil
}

func (p *PaperSpec) size() (geometry.PaperSize, error) {
	landscape := p.Orientation == "landscape"
	if p.Name != nil {
		return geometry.NamedPaper(*p.Name, landscape)
	}
	if p.Custom == nil {
		return geometry.PaperSize{}, fmt.Errorf("missing paper size")
	}
	w, err := parseMM(p.Custom.Width)
	if err != nil {
		return geometry.PaperSize{}, fmt.Errorf("width: %w", err)
	}
	h, err := parseMM(p.Custom.Height)
	if err != nil {
		return geometry.PaperSize{}, fmt.Errorf("height: %w", err)
	}
	if landscape {
		w, h = h, w
	}
	return geometry.PaperSize{Width: w, Height: h}, nil
}

var (
	dashParams  = []string{"dash", "gap"}
	allowedSets = map[string][]string{
		KindSlant:      {"x-spacing", "angle", "thickness", "color"},
		KindSeyes:      {"y-spacing", "top-margin", "bottom-margin", "base-thickness", "base-color", "aux-thickness", "aux-color"},
		KindHorizontal: append([]string{"y-spacing", "top-margin", "bottom-margin", "thickness", "color"}, dashParams...),
		KindVertical:   append([]string{"x-spacing", "left-margin", "right-margin", "thickness", "color"}, dashParams...),
		KindLine:       append([]string{"start", "end", "thickness", "color"}, dashParams...),
	}
)

func (s *SetDecl) lineSet() (*geometry.LineSet, error) {
	p, err := newParams(s)
	if err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindSlant:
		set := &geometry.SlantLineSet{}
		err = p.each(
			p.length("x-spacing", &set.XSpacing),
			p.angle("angle", &set.SlantAngle),
			p.thickness("thickness", &set.Thickness),
			p.color("color", &set.Color),
		)
		return &geometry.LineSet{Slant: set}, err
	case KindSeyes:
		set := &geometry.SeyesLineSet{}
		err = p.each(
			p.length("y-spacing", &set.YSpacing),
			p.length("top-margin", &set.TopMargin),
			p.length("bottom-margin", &set.BottomMargin),
			p.thickness("base-thickness", &set.BaseThickness),
			p.color("base-color", &set.BaseColor),
			p.thickness("aux-thickness", &set.AuxThickness),
			p.color("aux-color", &set.AuxColor),
		)
		return &geometry.LineSet{Seyes: set}, err
	case KindHorizontal:
		set := &geometry.HorizontalLineSet{}
		err = p.each(
			p.length("y-spacing", &set.YSpacing),
			p.length("top-margin", &set.TopMargin),
			p.length("bottom-margin", &set.BottomMargin),
			p.thickness("thickness", &set.Thickness),
			p.color("color", &set.Color),
			p.dash(&set.DashPattern),
		)
		return &geometry.LineSet{Horizontal: set}, err
	case KindVertical:
		set := &geometry.VerticalLineSet{}
		err = p.each(
			p.length("x-spacing", &set.XSpacing),
			p.length("left-margin", &set.LeftMargin),
			p.length("right-margin", &set.RightMargin),
			p.thickness("thickness", &set.Thickness),
			p.color("color", &set.Color),
			p.dash(&set.DashPattern),
		)
		return &geometry.LineSet{Vertical: set}, err
	case KindLine:
		ln := &geometry.LineDef{}
		err = p.each(
			p.point("start", &ln.Start),
			p.point("end", &ln.End),
			p.thickness("thickness", &ln.Thickness),
			p.color("color", &ln.Color),
			p.dash(&ln.DashPattern),
		)
		return &geometry.LineSet{Single: ln}, err
	default:
		return nil, fmt.Errorf("unknown line set kind %q", s.Kind)
	}
}

// params indexes the parameters of one declaration by name.
type params struct {
	values map[string]*Value
}

func newParams(s *SetDecl) (*params, error) {
	allowed := allowedSets[s.Kind]
	p := &params{values: make(map[string]*Value, len(s.Params))}
	for _, param := range s.Params {
		if !slices.Contains(allowed, param.Name) {
			return nil, fmt.Errorf("unknown parameter %q (allowed: %v)", param.Name, allowed)
		}
		if _, dup := p.values[param.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q at %s", param.Name, shortPos(param.Pos))
		}
		p.values[param.Name] = param.Value
	}
	return p, nil
}

// each returns the first non-nil error.
func (p *params) each(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *params) number(name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("missing parameter %q", name)
	}
	if v.Number == nil {
		return "", fmt.Errorf("parameter %q: expected a number, got a %s", name, v.Kind())
	}
	return *v.Number, nil
}

func (p *params) length(name string, dst *float64) error {
	raw, err := p.number(name)
	if err != nil {
		return err
	}
	mm, err := parseMM(raw)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	*dst = mm
	return nil
}

func (p *params) thickness(name string, dst *float64) error {
	raw, err := p.number(name)
	if err != nil {
		return err
	}
	l, err := geometry.ParseLength(raw)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	if l.Unit == geometry.UnitDeg {
		return fmt.Errorf("parameter %q: %s is not a length", name, raw)
	}
	*dst = l.ToPT()
	return nil
}

func (p *params) angle(name string, dst *float64) error {
	raw, err := p.number(name)
	if err != nil {
		return err
	}
	l, err := geometry.ParseLength(raw)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	if l.Unit != geometry.UnitNone && l.Unit != geometry.UnitDeg {
		return fmt.Errorf("parameter %q: %s is not an angle", name, raw)
	}
	*dst = l.Value
	return nil
}

func (p *params) color(name string, dst *geometry.CmykDef) error {
	v, ok := p.values[name]
	if !ok {
		return fmt.Errorf("missing parameter %q", name)
	}
	if v.CMYK == nil {
		return fmt.Errorf("parameter %q: expected cmyk(c, m, y, k), got a %s", name, v.Kind())
	}
	if len(v.CMYK) != 4 {
		return fmt.Errorf("parameter %q: cmyk takes 4 channels, got %d", name, len(v.CMYK))
	}
	var ch [4]float64
	for i, raw := range v.CMYK {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parameter %q: channel %d: invalid number %q", name, i+1, raw)
		}
		ch[i] = f
	}
	*dst = geometry.CmykDef{C: ch[0], M: ch[1], Y: ch[2], K: ch[3]}
	return nil
}

func (p *params) point(name string, dst *geometry.PointDef) error {
	v, ok := p.values[name]
	if !ok {
		return fmt.Errorf("missing parameter %q", name)
	}
	if v.Point == nil {
		return fmt.Errorf("parameter %q: expected a point (x, y), got a %s", name, v.Kind())
	}
	x, err := v.Point.X.coord()
	if err != nil {
		return fmt.Errorf("parameter %q: x: %w", name, err)
	}
	y, err := v.Point.Y.coord()
	if err != nil {
		return fmt.Errorf("parameter %q: y: %w", name, err)
	}
	*dst = geometry.PointDef{X: x, Y: y}
	return nil
}

// dash reads the optional dash/gap pair. gap alone is rejected.
func (p *params) dash(dst **geometry.DashPatternDef) error {
	_, hasDash := p.values["dash"]
	_, hasGap := p.values["gap"]
	if !hasDash {
		if hasGap {
			return fmt.Errorf("parameter \"gap\" requires \"dash\"")
		}
		return nil
	}
	dash, err := p.points("dash")
	if err != nil {
		return err
	}
	pattern := &geometry.DashPatternDef{Dash: dash}
	if hasGap {
		gap, err := p.points("gap")
		if err != nil {
			return err
		}
		pattern.Gap = &gap
	}
	*dst = pattern
	return nil
}

// points reads a whole number of points.
func (p *params) points(name string) (int64, error) {
	raw, err := p.number(name)
	if err != nil {
		return 0, err
	}
	l, err := geometry.ParseLength(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	if l.Unit != geometry.UnitNone && l.Unit != geometry.UnitPT {
		return 0, fmt.Errorf("parameter %q: dash lengths are whole points, got %s", name, raw)
	}
	if l.Value != math.Trunc(l.Value) {
		return 0, fmt.Errorf("parameter %q: dash lengths are whole points, got %s", name, raw)
	}
	return int64(l.Value), nil
}

func (c *CoordLit) coord() (geometry.Coord, error) {
	v, err := parseMM(c.Number)
	if err != nil {
		return geometry.Coord{}, err
	}
	if c.Far {
		return geometry.FarEdge(v), nil
	}
	return geometry.Abs(v), nil
}

// parseMM parses a length and converts it to millimetres; bare numbers are mm.
func parseMM(raw string) (float64, error) {
	l, err := geometry.ParseLength(raw)
	if err != nil {
		return 0, err
	}
	if l.Unit == geometry.UnitDeg {
		return 0, fmt.Errorf("%s is not a length", raw)
	}
	return l.ToMM(), nil
}

func shortPos(pos lexer.Position) string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}
