// Package domain contains the core domain models for resolving Vite manifests into HTML tags.
package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"iter"

	"go.trai.ch/zerr"
)

// Chunk is one record of the Vite build manifest.
type Chunk struct {
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	Name           string   `json:"name,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	IsDynamicEntry bool     `json:"isDynamicEntry,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Assets         []string `json:"assets,omitempty"`
	Integrity      string   `json:"integrity,omitempty"`

	// fields holds every string-valued member of the raw record, so that a
	// configurable integrity key can be looked up.
	fields map[string]string
}

// UnmarshalJSON decodes the typed members and keeps the raw string members.
func (c *Chunk) UnmarshalJSON(data []byte) error {
	type plain Chunk
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields[key] = s
		}
	}

	*c = Chunk(p)
	c.fields = fields
	return nil
}

// Field returns the string member stored under key.
// A nil chunk has no fields.
func (c *Chunk) Field(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	if c.fields == nil {
		if key == DefaultIntegrityKey && c.Integrity != "" {
			return c.Integrity, true
		}
		return "", false
	}
	v, ok := c.fields[key]
	return v, ok
}

// Manifest is the parsed Vite manifest.
// It keeps the key order of the source document and is immutable after parsing.
type Manifest struct {
	keys   []string
	chunks map[string]*Chunk
	byFile map[string]string
}

// ParseManifest decodes a manifest document, preserving key order.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.New("manifest is not a JSON object")
	}

	m := &Manifest{
		chunks: make(map[string]*Chunk),
		byFile: make(map[string]string),
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, zerr.New("manifest key is not a string")
		}

		chunk := &Chunk{}
		if err := dec.Decode(chunk); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid chunk record"), "key", key)
		}

		// A repeated key keeps its first position but takes the last value.
		if _, exists := m.chunks[key]; !exists {
			m.keys = append(m.keys, key)
		}
		m.chunks[key] = chunk
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.New("unexpected data after manifest object")
	}

	m.index()
	return m, nil
}

// index builds the reverse lookup from output file to the first key declaring it.
func (m *Manifest) index() {
	for _, key := range m.keys {
		file := m.chunks[key].File
		if _, taken := m.byFile[file]; !taken {
			m.byFile[file] = key
		}
	}
}

// Len returns the number of chunk records.
func (m *Manifest) Len() int {
	return len(m.keys)
}

// Keys returns the manifest keys in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Chunk returns the record stored under key.
func (m *Manifest) Chunk(key string) (*Chunk, bool) {
	chunk, ok := m.chunks[key]
	return chunk, ok
}

// ChunkByFile returns the first record, in document order, whose file equals file.
func (m *Manifest) ChunkByFile(file string) (string, *Chunk, bool) {
	key, ok := m.byFile[file]
	if !ok {
		return "", nil, false
	}
	return key, m.chunks[key], true
}

// All yields key and chunk pairs in document order.
func (m *Manifest) All() iter.Seq2[string, *Chunk] {
	return func(yield func(string, *Chunk) bool) {
		for _, key := range m.keys {
			if !yield(key, m.chunks[key]) {
				return
			}
		}
	}
}
