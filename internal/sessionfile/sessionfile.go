// Package sessionfile decodes session feeds handed over by the data layer.
//
// A feed is any of:
//   - a JSON array of sessions
//   - a list envelope: {"sessions": [...], "total": n, "has_more": false}
//   - a stream of session objects, one per line (JSONL) or concatenated
//   - YAML holding any of the above, one or more documents (.yaml, .yml)
//
// Every decoded session is validated before it is returned.
package sessionfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// Stdin is the path that selects standard input in ReadFile.
const Stdin = "-"

// envelope mirrors the upstream list response.
type envelope struct {
	Sessions []model.Session `json:"sessions"`
	Total    int             `json:"total,omitempty"`
	HasMore  bool            `json:"has_more,omitempty"`
}

// ReadFile reads a feed from path, or from stdin when path is "-".
// Files ending in .yaml or .yml are decoded as YAML.
func ReadFile(path string) ([]model.Session, error) {
	if path == Stdin {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := Read
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadYAML
	}
	sessions, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sessions, nil
}

// Read decodes and validates every session in r.
func Read(r io.Reader) ([]model.Session, error) {
	dec := json.NewDecoder(r)
	var out []model.Session
	for rec := 0; ; rec++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode record %d: %w", rec, err)
		}
		batch, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", rec, err)
		}
		out = append(out, batch...)
	}
	return validate(out)
}

// ReadYAML decodes and validates every session in a YAML stream. Each
// document may hold a list, an envelope or a single session.
func ReadYAML(r io.Reader) ([]model.Session, error) {
	dec := yaml.NewDecoder(r)
	var out []model.Session
	for doc := 0; ; doc++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode document %d: %w", doc, err)
		}
		if v == nil {
			continue
		}
		// Sessions only carry JSON tags, so documents go through JSON.
		raw, err := json.Marshal(jsonKeys(v))
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", doc, err)
		}
		batch, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", doc, err)
		}
		out = append(out, batch...)
	}
	return validate(out)
}

// jsonKeys rewrites mappings with non-string keys (e.g. "1: x" or "true: y"),
// which yaml.v3 decodes as map[any]any, into string-keyed maps so that they
// encode as JSON objects.
func jsonKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = jsonKeys(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = jsonKeys(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = jsonKeys(e)
		}
		return t
	}
	return v
}

func validate(out []model.Session) ([]model.Session, error) {
	for i := range out {
		if err := model.ValidateSession(&out[i]); err != nil {
			return nil, fmt.Errorf("session %d (%q): %w", i, out[i].ID, err)
		}
	}
	return out, nil
}

func decodeValue(raw json.RawMessage) ([]model.Session, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var list []model.Session
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, err
		}
		if _, ok := probe["sessions"]; ok {
			var env envelope
			if err := json.Unmarshal(trimmed, &env); err != nil {
				return nil, err
			}
			return env.Sessions, nil
		}
		var s model.Session
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return []model.Session{s}, nil
	}
	return nil, fmt.Errorf("unexpected JSON value starting with %q", trimmed[0])
}

// Write encodes sessions as JSONL, one session per line.
func Write(w io.Writer, sessions []model.Session) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, s := range sessions {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode session %s: %w", s.ID, err)
		}
	}
	return nil
}
