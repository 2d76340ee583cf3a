package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+|\.\d+)(?:mm|cm|in|pt|deg)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[(),;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Set kinds accepted by the DSL.
const (
	KindSlant      = "slant"
	KindSeyes      = "seyes"
	KindHorizontal = "horizontal"
	KindVertical   = "vertical"
	KindLine       = "line"
)

// Document is the root AST node of a ruling file: one paper and its line sets.
type Document struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Paper *PaperSpec     `parser:"Newline* 'paper' @@"`
	Sets  []*SetDecl     `parser:"'{' ( Newline | ';' )* ( @@ ( Newline | ';' )* )* '}' Newline*"`
}

// PaperSpec is either a named size or an explicit width and height,
// optionally followed by an orientation.
type PaperSpec struct {
	Pos         lexer.Position `parser:"" json:"-"`
	Name        *string        `parser:"(  @Ident"`
	Custom      *CustomSize    `parser:" | @@ )"`
	Orientation string         `parser:"@( 'portrait' | 'landscape' )?"`
}

// CustomSize holds an explicit `W H` paper size.
type CustomSize struct {
	Width  string `parser:"@Number"`
	Height string `parser:"@Number"`
}

// SetDecl declares one line set. Parameters follow the kind on the same
// line, or inside braces when they span several lines.
type SetDecl struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Kind   string         `parser:"@( 'slant' | 'seyes' | 'horizontal' | 'vertical' | 'line' )"`
	Params []*Param       `parser:"( '{' ( Newline | ';' )* ( @@ ( Newline | ';' )* )* '}' | @@* )"`
}

// Param is a `name value` pair.
type Param struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"@Ident"`
	Value *Value         `parser:"@@"`
}

// Value is a number with an optional unit, a cmyk(...) colour or a point.
type Value struct {
	CMYK   []string  `parser:"  'cmyk' '(' @Number ( ',' @Number )* ')'"`
	Point  *PointLit `parser:"| @@"`
	Number *string   `parser:"| @Number"`
}

// Kind names the value shape for error messages.
func (v *Value) Kind() string {
	switch {
	case v == nil:
		return "nothing"
	case v.CMYK != nil:
		return "colour"
	case v.Point != nil:
		return "point"
	case v.Number != nil:
		return "number"
	default:
		return "nothing"
	}
}

// PointLit captures `(x, y)`.
type PointLit struct {
	X *CoordLit `parser:"'(' @@"`
	Y *CoordLit `parser:"',' @@ ')'"`
}

// CoordLit is a coordinate measured from zero, or from the far edge when
// prefixed with `far`.
type CoordLit struct {
	Far    bool   `parser:"@'far'?"`
	Number string `parser:"@Number"`
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
