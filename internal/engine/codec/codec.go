// Package codec translates parameter names between the snake_case used by the
// engine operations script and the camelCase used by tool callers.
package codec

import (
	"strings"
	"unicode"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pair is one entry of the naming table.
type Pair struct {
	Snake string
	Camel string
}

// DefaultTable lists the parameter names shared by the tools and the operations script.
var DefaultTable = []Pair{
	{"project_path", domain.ParamProjectPath},
	{"scene_path", domain.ParamScenePath},
	{"root_node_type", domain.ParamRootNodeType},
	{"parent_node_path", domain.ParamParentNodePath},
	{"node_type", domain.ParamNodeType},
	{"node_name", domain.ParamNodeName},
	{"texture_path", domain.ParamTexturePath},
	{"node_path", domain.ParamNodePath},
	{"output_path", domain.ParamOutputPath},
	{"mesh_item_names", domain.ParamMeshItemNames},
	{"new_path", domain.ParamNewPath},
	{"file_path", domain.ParamFilePath},
	{"directory", domain.ParamDirectory},
	{"recursive", domain.ParamRecursive},
	{"scene", domain.ParamScene},
}

// Codec converts parameter mappings between naming conventions.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	table   []Pair
	forward map[string]string
	reverse map[string]string
}

// New builds a codec from table. The reverse table is derived once here.
func New(table []Pair) *Codec {
	c := &Codec{
		table:   append([]Pair(nil), table...),
		forward: make(map[string]string, len(table)),
		reverse: make(map[string]string, len(table)),
	}
	for _, p := range table {
		c.forward[p.Snake] = p.Camel
		c.reverse[p.Camel] = p.Snake
	}
	return c
}

// Default returns a codec over DefaultTable.
func Default() *Codec {
	return New(DefaultTable)
}

// Verify checks that the reverse table is the exact inverse of the forward table.
func (c *Codec) Verify() error {
	if len(c.forward) != len(c.reverse) || len(c.forward) != len(c.table) {
		return zerr.With(zerr.Wrap(domain.ErrMappingNotInverse, "table has duplicate names"),
			"entries", len(c.table))
	}
	for snake, camel := range c.forward {
		if back, ok := c.reverse[camel]; !ok || back != snake {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrMappingNotInverse, "entry does not round trip"),
				"snake", snake), "camel", camel)
		}
	}
	return nil
}

// ToCamel returns a copy of params with every key, at any depth, in camelCase.
func (c *Codec) ToCamel(params *domain.Params) *domain.Params {
	return convert(params, c.camelKey)
}

// ToSnake returns a copy of params with every key, at any depth, in snake_case.
func (c *Codec) ToSnake(params *domain.Params) *domain.Params {
	return convert(params, c.snakeKey)
}

func (c *Codec) camelKey(key string) string {
	if v, ok := c.forward[key]; ok {
		return v
	}
	return SnakeToCamel(key)
}

func (c *Codec) snakeKey(key string) string {
	if v, ok := c.reverse[key]; ok {
		return v
	}
	return CamelToSnake(key)
}

func convert(params *domain.Params, rename func(string) string) *domain.Params {
	out := domain.NewParams()
	for k, v := range params.All() {
		out.Set(rename(k), convertValue(v, rename))
	}
	return out
}

func convertValue(v domain.Value, rename func(string) string) domain.Value {
	switch v.Kind() {
	case domain.KindMap:
		m, _ := v.AsMap()
		return domain.Map(convert(m, rename))
	case domain.KindArray:
		items, _ := v.AsArray()
		converted := make([]domain.Value, len(items))
		for i, item := range items {
			converted[i] = convertValue(item, rename)
		}
		return domain.Array(converted...)
	default:
		return v
	}
}

// SnakeToCamel upper-cases every lowercase letter that follows an underscore
// and drops that underscore. Other characters are left alone.
func SnakeToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	runes := []rune(key)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// CamelToSnake replaces every uppercase letter with an underscore and its lowercase form.
func CamelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
