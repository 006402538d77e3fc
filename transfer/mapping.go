package transfer

import (
	"bytes"
	"encoding/json"
)

// Dictionary is the lookup side of a phrase table.
type Dictionary interface {
	Lookup(phrase string) (string, bool)
}

// entry is one resolved unit. Matched is false when the unit has no token.
type entry struct {
	Unit    string
	Token   string
	Matched bool
}

// Mapping holds the resolution of each distinct unit, in first-seen order.
type Mapping struct {
	entries []entry
	index   map[string]int
}

// Resolve looks every unit up in dict. Units without a token stay in the
// mapping as unmatched entries.
func Resolve(units []string, dict Dictionary) *Mapping {
	m := &Mapping{index: make(map[string]int, len(units))}
	for _, unit := range units {
		if _, seen := m.index[unit]; seen {
			continue
		}
		token, ok := dict.Lookup(unit)
		m.index[unit] = len(m.entries)
		m.entries = append(m.entries, entry{Unit: unit, Token: token, Matched: ok})
	}
	return m
}

// Get returns the token for unit. ok is false if the unit is unmatched or unknown.
func (m *Mapping) Get(unit string) (token string, ok bool) {
	i, found := m.index[unit]
	if !found {
		return "", false
	}
	e := m.entries[i]
	return e.Token, e.Matched
}

// Unmatched returns the keys that have no token, in order.
func (m *Mapping) Unmatched() []string {
	units := make([]string, 0, m.Len())
	for _, e := range m.entries {
		if !e.Matched {
			units = append(units, e.Unit)
		}
	}
	return units
}

// Len returns the number of distinct units.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// MarshalJSON writes the mapping as an object in unit order.
// Unmatched units are written as null.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Unit)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if !e.Matched {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(e.Token)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
