// SPDX-License-Identifier: MIT
// Package: attrgraph/codec
//
// format.go - wire formats, stream Encode/Decode and sentinel errors.
//
// Error policy:
//   • ErrUnknownFormat for unsupported Format values or file extensions.
//   • ErrDecode wraps any parser failure; the parser error is kept in the chain.

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/attrgraph/core"
)

// Format selects the wire encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const yamlIndent = 2

var (
	// ErrUnknownFormat indicates an unsupported Format or file extension.
	ErrUnknownFormat = errors.New("codec: unknown format")
	// ErrDecode indicates the input could not be parsed as a node-link document.
	ErrDecode = errors.New("codec: decode failed")
)

// ParseFormat maps a user-supplied name ("json", "yaml", "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}

	return f, nil
}

// Encode writes g as a node-link document to w.
func Encode[K comparable](w io.Writer, g *core.Graph[K], f Format) error {
	doc := Export(g)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("Encode(%q): %w", f, ErrUnknownFormat)
	}
}

// Decode reads one node-link document from r and builds a graph from it.
func Decode[K comparable](r io.Reader, f Format) (*core.Graph[K], error) {
	var doc Document[K]
	switch f {
	case FormatJSON:
		if err := decodeJSON(r, &doc); err != nil {
			return nil, fmt.Errorf("Decode(json): %w: %w", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode(yaml): %w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("Decode(%q): %w", f, ErrUnknownFormat)
	}

	return Import(doc), nil
}

// MarshalJSON is Encode to a byte slice in FormatJSON.
func MarshalJSON[K comparable](g *core.Graph[K]) ([]byte, error) {
	return json.Marshal(Export(g))
}

// UnmarshalJSON is Decode from a byte slice in FormatJSON.
func UnmarshalJSON[K comparable](data []byte) (*core.Graph[K], error) {
	var doc Document[K]
	if err := decodeJSON(bytes.NewReader(data), &doc); err != nil {
		return nil, fmt.Errorf("UnmarshalJSON: %w: %w", ErrDecode, err)
	}

	return Import(doc), nil
}

// MarshalYAML is Encode to a byte slice in FormatYAML.
func MarshalYAML[K comparable](g *core.Graph[K]) ([]byte, error) {
	return yaml.Marshal(Export(g))
}

// UnmarshalYAML is Decode from a byte slice in FormatYAML.
func UnmarshalYAML[K comparable](data []byte) (*core.Graph[K], error) {
	var doc Document[K]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("UnmarshalYAML: %w: %w", ErrDecode, err)
	}

	return Import(doc), nil
}

// decodeJSON decodes one document with json.Number enabled, then rewrites the
// numbers inside attribute maps: integral values that fit an int become int,
// everything else becomes float64. This matches what yaml.v3 yields for the
// same document.
func decodeJSON[K comparable](r io.Reader, doc *Document[K]) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(doc); err != nil {
		return err
	}

	normalizeAttrs(doc.Graph)
	for i := range doc.Nodes {
		normalizeAttrs(doc.Nodes[i].Attrs)
	}
	for i := range doc.Links {
		normalizeAttrs(doc.Links[i].Attrs)
	}

	return nil
}

func normalizeAttrs(a core.Attrs) {
	for k, v := range a {
		a[k] = normalizeValue(v)
	}
}

// normalizeValue walks nested maps and slices produced by encoding/json.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
		if f, err := x.Float64(); err == nil {
			return f
		}

		return x.String()
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeValue(e)
		}

		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeValue(e)
		}

		return x
	default:
		return v
	}
}
