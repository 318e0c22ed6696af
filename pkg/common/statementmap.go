package common

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StatementMap is an insertion-ordered map from statement key (the
// provenance hash as a string) to Statement. The subgraph service emits
// statements as a JSON object; the order its keys appear in the document
// is significant downstream (first-occurrence dedup, merge representative
// selection, sort tie-breaking), so a plain Go map is not enough.
type StatementMap struct {
	keys  []string
	items map[string]*Statement
}

// NewStatementMap returns an empty statement map.
func NewStatementMap() *StatementMap {
	return &StatementMap{
		items: make(map[string]*Statement),
	}
}

// Len returns the number of statements. A nil map has length zero.
func (m *StatementMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the statement keys in insertion order.
func (m *StatementMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the statement stored under key.
func (m *StatementMap) Get(key string) (*Statement, bool) {
	if m == nil {
		return nil, false
	}
	stmt, ok := m.items[key]
	return stmt, ok
}

// Set stores stmt under key, appending the key if it is new.
func (m *StatementMap) Set(key string, stmt *Statement) {
	if m.items == nil {
		m.items = make(map[string]*Statement)
	}
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = stmt
}

// Delete removes the statement stored under key, if present.
func (m *StatementMap) Delete(key string) {
	if m == nil {
		return
	}
	if _, exists := m.items[key]; !exists {
		return
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy preserving insertion order.
func (m *StatementMap) Clone() *StatementMap {
	if m == nil {
		return nil
	}
	clone := NewStatementMap()
	for _, key := range m.keys {
		clone.Set(key, m.items[key].Clone())
	}
	return clone
}

// Equal reports whether both maps hold the same keys in the same order
// with equal statements.
func (m *StatementMap) Equal(other *StatementMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, key := range m.Keys() {
		if other.Keys()[i] != key {
			return false
		}
		left, _ := m.Get(key)
		right, _ := other.Get(key)
		leftJSON, err := json.Marshal(left)
		if err != nil {
			return false
		}
		rightJSON, err := json.Marshal(right)
		if err != nil {
			return false
		}
		if !bytes.Equal(leftJSON, rightJSON) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *StatementMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		stmtJSON, err := json.Marshal(m.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(stmtJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
func (m *StatementMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.items = make(map[string]*Statement)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("expected JSON object for stmts, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key in stmts, got %v", keyTok)
		}
		stmt := &Statement{}
		if err := dec.Decode(stmt); err != nil {
			return fmt.Errorf("decoding statement %s: %w", key, err)
		}
		m.Set(key, stmt)
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
