package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"slices"
	"strconv"

	"go.trai.ch/zerr"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	// KindNull is the JSON null (and the zero Value).
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is a JSON number kept in its textual form.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is an ordered list of values.
	KindArray
	// KindMap is an ordered string-keyed mapping.
	KindMap
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "object"
	default:
		return "null"
	}
}

// Value is a tool parameter: a scalar, an array, or a nested Params mapping.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Params
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int wraps an integer.
func Int(i int) Value { return Number(json.Number(strconv.Itoa(i))) }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a list of values.
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindArray, arr: vs}
}

// Map wraps a nested mapping.
func Map(p *Params) Value {
	if p == nil {
		p = NewParams()
	}
	return Value{kind: KindMap, obj: p}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (json.Number, bool) { return v.num, v.kind == KindNumber }

// AsArray returns the elements held by v.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsMap returns the mapping held by v.
func (v Value) AsMap() (*Params, bool) { return v.obj, v.kind == KindMap }

// Present reports whether v counts as supplied for a required argument.
// Null, false, zero and the empty string do not.
func (v Value) Present() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		f, err := v.num.Float64()
		return err != nil || f != 0
	case KindString:
		return v.str != ""
	case KindArray, KindMap:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler, preserving mapping key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving mapping key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeValue(dec)
	if err != nil {
		return zerr.Wrap(ErrMalformedJSON, err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zerr.Wrap(ErrMalformedJSON, "trailing data after value")
	}
	*v = parsed
	return nil
}

// Params is an ordered string-keyed mapping of Values. The zero value is not usable; use NewParams.
// A nil *Params behaves as an empty mapping for reads.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams returns an empty mapping.
func NewParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// ParseParams decodes a JSON object. Empty input yields an empty mapping.
func ParseParams(data []byte) (*Params, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewParams(), nil
	}
	p := NewParams()
	if err := p.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Set stores v under key. A new key is appended; an existing key keeps its position.
func (p *Params) Set(key string, v Value) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// String returns the string stored under key, or "" when absent or not a string.
func (p *Params) String(key string) string {
	v, _ := p.Get(key)
	s, _ := v.AsString()
	return s
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates over the entries in insertion order.
func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeParams(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON object.
func (p *Params) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	m, ok := v.AsMap()
	if !ok {
		return ErrInvalidArguments
	}
	*p = *m
	return nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if v.num == "" {
			buf.WriteString("0")
			return nil
		}
		buf.WriteString(v.num.String())
	case KindString:
		return writeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		return writeParams(buf, v.obj)
	}
	return nil
}

func writeParams(buf *bytes.Buffer, p *Params) error {
	buf.WriteByte('{')
	i := 0
	for k, v := range p.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if err := writeString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			p := NewParams()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, zerr.With(zerr.New("unexpected object key"), "token", keyTok)
				}
				elem, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				p.Set(key, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Map(p), nil
		case '[':
			arr := []Value{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Array(arr...), nil
		default:
			return Value{}, zerr.With(zerr.New("unexpected delimiter"), "token", string(t))
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, zerr.With(zerr.New("unexpected token"), "token", tok)
	}
}
