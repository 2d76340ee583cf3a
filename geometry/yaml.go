package geometry

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML 从 YAML 定义文件读取纸张与线组。未知字段视为错误。
func LoadYAML(r io.Reader) (*GeometryDef, error) {
	var raw struct {
		PaperSize *PaperSize `yaml:"paper size"`
		LineSets  []*LineSet `yaml:"line sets"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("定义文件为空")
		}
		return nil, err
	}
	if raw.PaperSize == nil {
		return nil, fmt.Errorf("定义文件缺少 paper size")
	}
	for i, set := range raw.LineSets {
		if set == nil {
			return nil, fmt.Errorf("第 %d 个线组为空", i+1)
		}
	}
	return &GeometryDef{PaperSize: *raw.PaperSize, LineSets: raw.LineSets}, nil
}

// UnmarshalYAML 接受裸数字（从原点量起）或 {off far edge: 数字}。
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*c = Abs(v)
		return nil
	case yaml.MappingNode:
		var ofe struct {
			OffFarEdge *float64 `yaml:"off far edge"`
		}
		if err := decodeStrict(node, &ofe); err != nil {
			return err
		}
		if ofe.OffFarEdge == nil {
			return fmt.Errorf("line %d: 坐标映射缺少 off far edge", node.Line)
		}
		*c = FarEdge(*ofe.OffFarEdge)
		return nil
	default:
		return fmt.Errorf("line %d: 坐标应为数字或 {off far edge: 数字}", node.Line)
	}
}

// UnmarshalYAML 接受 [c, m, y, k] 四元素序列。
func (c *CmykDef) UnmarshalYAML(node *yaml.Node) error {
	var channels []float64
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: CMYK 颜色应为 [c, m, y, k] 序列", node.Line)
	}
	if err := node.Decode(&channels); err != nil {
		return err
	}
	if len(channels) != 4 {
		return fmt.Errorf("line %d: CMYK 颜色需要 4 个通道，实际 %d 个", node.Line, len(channels))
	}
	*c = CmykDef{C: channels[0], M: channels[1], Y: channels[2], K: channels[3]}
	return nil
}

// UnmarshalYAML 解析单键映射形式的线组，例如 {seyes: {...}}。
func (s *LineSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: 线组必须是只有一个键的映射（slant/seyes/horizontal lines/vertical lines/single line）", node.Line)
	}
	key, body := node.Content[0].Value, node.Content[1]
	var out LineSet
	var err error
	switch key {
	case KindSlant:
		out.Slant = &SlantLineSet{}
		err = decodeStrict(body, out.Slant)
	case KindSeyes:
		out.Seyes = &SeyesLineSet{}
		err = decodeStrict(body, out.Seyes)
	case KindHorizontal:
		out.Horizontal = &HorizontalLineSet{}
		err = decodeStrict(body, out.Horizontal)
	case KindVertical:
		out.Vertical = &VerticalLineSet{}
		err = decodeStrict(body, out.Vertical)
	case KindSingle:
		out.Single = &LineDef{}
		err = decodeStrict(body, out.Single)
	default:
		return fmt.Errorf("line %d: 未知的线组类型 %q", node.Content[0].Line, key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*s = out
	return nil
}

var unmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()

// decodeStrict 在 node.Decode 之前检查映射键是否都对应 out 中的字段。
// yaml.v3 的 KnownFields 不会传递到自定义 UnmarshalYAML 内部，所以这里自行检查。
func decodeStrict(node *yaml.Node, out any) error {
	if err := checkKnownKeys(node, reflect.TypeOf(out)); err != nil {
		return err
	}
	return node.Decode(out)
}

func checkKnownKeys(node *yaml.Node, t reflect.Type) error {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.AliasNode {
		return checkKnownKeys(node.Alias, t)
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
			return nil
		}
	}
	if t.Kind() != reflect.Struct || node.Kind != yaml.MappingNode {
		return nil
	}
	fields := yamlFields(t)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		ft, ok := fields[k.Value]
		if !ok {
			return fmt.Errorf("line %d: 字段 %q 不存在于 %s", k.Line, k.Value, t.Name())
		}
		if err := checkKnownKeys(node.Content[i+1], ft); err != nil {
			return err
		}
	}
	return nil
}

func yamlFields(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		out[name] = f.Type
	}
	return out
}
