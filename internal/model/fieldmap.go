package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single labeled value in a FieldMap.
type Field struct {
	Label string
	Value string
}

// FieldMap is a string map that remembers insertion order. Parsed metadata
// labels must render in a fixed display order, which a plain map cannot
// guarantee, so both the HTML template and the JSON marshaller iterate this
// instead.
type FieldMap struct {
	labels []string
	values map[string]string
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]string)}
}

// Set adds or replaces a label. First insertion fixes the label's position.
func (m *FieldMap) Set(label, value string) {
	if _, ok := m.values[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.values[label] = value
}

// Get returns the value for a label and whether it is present.
func (m *FieldMap) Get(label string) (string, bool) {
	v, ok := m.values[label]
	return v, ok
}

// Len returns the number of labels.
func (m *FieldMap) Len() int {
	return len(m.labels)
}

// Labels returns the labels in insertion order.
func (m *FieldMap) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Items returns label/value pairs in insertion order, for template ranging.
func (m *FieldMap) Items() []Field {
	items := make([]Field, 0, len(m.labels))
	for _, l := range m.labels {
		items = append(items, Field{Label: l, Value: m.values[l]})
	}
	return items
}

// MarshalJSON serializes the map as a JSON object in insertion order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range m.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[l])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON fills the map from a JSON object. Key order follows the
// document order of the input.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	m.labels = nil
	m.values = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var val string
		if err := dec.Decode(&val); err != nil {
			return err
		}
		m.Set(key, val)
	}
	_, err = dec.Token()
	return err
}
