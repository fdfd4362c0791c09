package feature

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named value of a Vector.
type Field struct {
	Name  string
	Value float64
}

// Vector is an ordered mapping from feature name to value. Fields keep
// the order in which they were first set; downstream consumers rely on
// that order, so a Vector never degrades to a plain map.
type Vector struct {
	fields []Field
	index  map[string]int
}

// NewVector creates an empty vector.
func NewVector() *Vector {
	return &Vector{index: make(map[string]int)}
}

// Set stores a value under name. Setting an existing name overwrites the
// value but keeps the field's position.
func (v *Vector) Set(name string, value float64) {
	if i, ok := v.index[name]; ok {
		v.fields[i].Value = value
		return
	}
	if v.index == nil {
		v.index = make(map[string]int)
	}
	v.index[name] = len(v.fields)
	v.fields = append(v.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (v *Vector) Get(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.fields[i].Value, true
}

// Len reports the number of fields.
func (v *Vector) Len() int {
	return len(v.fields)
}

// Fields returns the fields in order. The slice is a copy; mutating it
// does not affect the vector.
func (v *Vector) Fields() []Field {
	out := make([]Field, len(v.fields))
	copy(out, v.fields)
	return out
}

// Names returns the field names in order.
func (v *Vector) Names() []string {
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.Name
	}
	return names
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	c := &Vector{
		fields: make([]Field, len(v.fields)),
		index:  make(map[string]int, len(v.index)),
	}
	copy(c.fields, v.fields)
	for name, i := range v.index {
		c.index[name] = i
	}
	return c
}

// MarshalJSON encodes the vector as a JSON object whose keys appear in
// field order.
func (v *Vector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range v.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the
// document.
func (v *Vector) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("vector: expected object, got %v", tok)
	}

	v.fields = v.fields[:0]
	v.index = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("vector: expected string key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		value, ok := valTok.(float64)
		if !ok {
			return fmt.Errorf("vector: field %s: expected number, got %v", key, valTok)
		}
		v.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
