// Package document reads and writes function documents.
//
// A document holds one sketch.Function. JSON, YAML and TOML are supported,
// chosen by file extension. All formats share the JSON field names of
// sketch.Function; decoding goes through a generic map so that documents in
// the older flat schema can be migrated before they reach the model.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vdobler/sketch"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ErrFormat is returned for unknown formats and file extensions.
var ErrFormat = errors.New("document: unknown format")

// ParseFormat parses a format name as returned by String; "yml" is
// accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

// FormatOf returns the format for the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ----------------------------------------------------------------------------
// Decoding

// Decode reads one function in format f. Fields missing in the document
// keep the defaults of sketch.NewFunction.
func Decode(r io.Reader, f Format) (*sketch.Function, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	switch f {
	case JSON:
		err = json.Unmarshal(raw, &doc)
	case YAML:
		err = yaml.Unmarshal(raw, &doc)
	case TOML:
		err = toml.Unmarshal(raw, &doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", f, err)
	}

	changes, err := Migrate(doc)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		sketch.Logger().Debug("document migrated", "changes", changes)
	}

	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	fn := sketch.NewFunction("", sketch.Drawing)
	if err := json.Unmarshal(canonical, fn); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return fn, nil
}

// Load reads the function stored in path.
func Load(path string) (*sketch.Function, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fn, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fn, nil
}

// ----------------------------------------------------------------------------
// Migration

// Migrate rewrites doc from the flat schema into the canonical one and
// returns a description of every change:
//   - a scale {top, bottom} becomes {min: bottom, max: top}
//   - a mode given by name becomes its number
// A scale mixing both forms is an error.
func Migrate(doc map[string]any) ([]string, error) {
	var changes []string

	if scale, ok := doc["scale"].(map[string]any); ok {
		_, hasTop := scale["top"]
		_, hasBottom := scale["bottom"]
		_, hasMin := scale["min"]
		_, hasMax := scale["max"]
		if (hasTop || hasBottom) && (hasMin || hasMax) {
			return nil, fmt.Errorf("document: scale mixes top/bottom and min/max")
		}
		if hasTop || hasBottom {
			doc["scale"] = map[string]any{"min": scale["bottom"], "max": scale["top"]}
			changes = append(changes, "scale: top/bottom -> min/max")
		}
	}

	if name, ok := doc["mode"].(string); ok {
		mode, err := sketch.ParseFunctionMode(name)
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		doc["mode"] = int(mode)
		changes = append(changes, fmt.Sprintf("mode: %q -> %d", name, int(mode)))
	}

	sort.Strings(changes)
	return changes, nil
}

// ----------------------------------------------------------------------------
// Encoding

// Encode writes fn in format f. Absent optional fields are written as null
// in JSON and left out in YAML and TOML.
func Encode(w io.Writer, fn *sketch.Function, f Format) error {
	canonical, err := json.MarshalIndent(fn, "", "  ")
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if f == JSON {
		_, err := w.Write(append(canonical, '\n'))
		return err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(canonical, &doc); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	prune(doc)

	var out []byte
	switch f {
	case YAML:
		out, err = yaml.Marshal(doc)
	case TOML:
		out, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("%w: %v", ErrFormat, f)
	}
	if err != nil {
		return fmt.Errorf("document: encode %s: %w", f, err)
	}
	_, err = w.Write(out)
	return err
}

// Save writes fn to path in the format given by its extension.
func Save(path string, fn *sketch.Function) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, fn, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// prune removes null values from m and all maps nested in it.
func prune(m map[string]any) {
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			prune(v)
		case []any:
			for _, e := range v {
				if em, ok := e.(map[string]any); ok {
					prune(em)
				}
			}
		}
	}
}
