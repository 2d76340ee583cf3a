package ruling

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByLCY/linedpaper/geometry"
)

func loadExample(t *testing.T, name string) *geometry.GeometryDef {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "examples", name))
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	def, err := geometry.LoadYAML(f)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return def
}

func TestExpandKeepsDeclarationOrder(t *testing.T) {
	h := horizontalSet()
	single := geometry.LineDef{
		Start:     geometry.Pt(30, 0),
		End:       geometry.PointDef{X: geometry.Abs(30), Y: geometry.FarEdge(0)},
		Thickness: 0.4,
		Color:     accent,
	}
	def := &geometry.GeometryDef{
		PaperSize: letter,
		LineSets: []*geometry.LineSet{
			{Single: &single},
			{Horizontal: &h},
			{Single: &single},
		},
	}
	res, err := Expand(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hl, err := HorizontalLines(h, letter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != len(hl)+2 {
		t.Fatalf("expected %d lines, got %d", len(hl)+2, len(res.Lines))
	}
	if res.Lines[0] != single || res.Lines[len(res.Lines)-1] != single {
		t.Fatalf("单线应原样出现在首尾")
	}
	for i, ln := range hl {
		if res.Lines[i+1] != ln {
			t.Fatalf("line %d 与 HorizontalLines 的结果不一致", i+1)
		}
	}
	if got := res.Lines[0].End.ResolveY(letter); got != letter.Height {
		t.Fatalf("远边坐标应解析为纸张高度: %g", got)
	}
	if res.Paper != letter {
		t.Fatalf("paper = %+v", res.Paper)
	}
}

func TestExpandWrapsSetError(t *testing.T) {
	bad := geometry.SlantLineSet{XSpacing: 5, SlantAngle: 30}
	h := horizontalSet()
	def := &geometry.GeometryDef{
		PaperSize: letter,
		LineSets:  []*geometry.LineSet{{Horizontal: &h}, {Slant: &bad}},
	}
	res, err := Expand(def)
	if err == nil || res != nil {
		t.Fatalf("expected error, got %v", res)
	}
	var aerr *AngleOutOfRangeError
	if !errors.As(err, &aerr) || aerr.Actual != 30 {
		t.Fatalf("expected wrapped AngleOutOfRangeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "第 2 个线组") || !strings.Contains(err.Error(), geometry.KindSlant) {
		t.Fatalf("错误信息应指出线组位置与类型: %v", err)
	}
}

func TestExpandRejectsEmptySets(t *testing.T) {
	if _, err := Expand(nil); err == nil {
		t.Fatalf("expected error for nil definition")
	}
	def := &geometry.GeometryDef{PaperSize: letter, LineSets: []*geometry.LineSet{{}}}
	if _, err := Expand(def); err == nil {
		t.Fatalf("expected error for empty line set")
	}
}

func TestExpandNoSets(t *testing.T) {
	res, err := Expand(&geometry.GeometryDef{PaperSize: letter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(res.Lines))
	}
}

func TestExpandExamplesIdempotent(t *testing.T) {
	for _, name := range []string{"letter_seyes_slant52.yml", "letter_5mm_square.yml", "letter_dashed_6mm.yml"} {
		def := loadExample(t, name)
		first, err := Expand(def)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		second, err := Expand(def)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		a, err := MarshalDebugJSON(first)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b, err := MarshalDebugJSON(second)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s: 两次展开结果不一致", name)
		}
		if len(first.Lines) == 0 {
			t.Fatalf("%s: 没有生成任何线段", name)
		}
		for i, ln := range first.Lines {
			x0, y0, x1, y1 := resolve(ln, first.Paper)
			for _, v := range []float64{x0, x1} {
				if v < 0 || v > first.Paper.Width {
					t.Fatalf("%s line %d: x 越界 %g", name, i, v)
				}
			}
			// seyes 的预读可能让最后几条线落在下边距以下，但不会超出上边
			if y0 > first.Paper.Height || y1 > first.Paper.Height {
				t.Fatalf("%s line %d: y 越界", name, i)
			}
		}
	}
}

func TestDebugJSON(t *testing.T) {
	dash := int64(2)
	res := &Result{
		Paper: letter,
		Lines: []geometry.LineDef{{
			Start:       geometry.Pt(0, 10),
			End:         geometry.PointDef{X: geometry.FarEdge(0), Y: geometry.Abs(10)},
			Thickness:   0.1,
			Color:       geometry.Black,
			DashPattern: &geometry.DashPatternDef{Dash: 1, Gap: &dash},
		}},
	}
	data, err := MarshalDebugJSON(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out struct {
		Count int `json:"count"`
		Lines []struct {
			X2   float64 `json:"x2"`
			Hex  string  `json:"hex"`
			Dash *struct {
				Dash int64 `json:"dash"`
				Gap  int64 `json:"gap"`
			} `json:"dash"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Lines) != 1 {
		t.Fatalf("unexpected count: %+v", out)
	}
	ln := out.Lines[0]
	if ln.X2 != letter.Width {
		t.Fatalf("x2 = %g, want %g", ln.X2, letter.Width)
	}
	if ln.Hex != "#000000" {
		t.Fatalf("hex = %s", ln.Hex)
	}
	if ln.Dash == nil || ln.Dash.Dash != 1 || ln.Dash.Gap != 2 {
		t.Fatalf("dash = %+v", ln.Dash)
	}

	path := filepath.Join(t.TempDir(), "debug.json")
	if err := WriteDebugJSON(res, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(written, data) {
		t.Fatalf("写入的文件与 MarshalDebugJSON 结果不同")
	}
}
