// Package fixture decodes layout trees described in TOML or JSON and
// builds them into a layout.Tree.
//
// A document has a single root node; nodes nest through their children:
//
//	[root]
//	direction = "column"
//	width = 80
//
//	[[root.children]]
//	id = "header"
//	height = 3
//
//	[[root.children]]
//	id = "body"
//	grow = 1
//	content = [20, 10]
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid fixture")

// Format is the encoding of a fixture document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: unsupported fixture extension (want .toml or .json)", path)
	}
}

// Document is a decoded fixture file.
type Document struct {
	Root Node `toml:"root" json:"root"`
}

// Node is the configuration of one box. Enumerations are spelled as in
// CSS ("space-between"); the empty string selects the default.
type Node struct {
	ID string `toml:"id" json:"id"`

	Direction    string  `toml:"direction" json:"direction"`
	Reverse      bool    `toml:"reverse" json:"reverse"`
	Wrap         bool    `toml:"wrap" json:"wrap"`
	Justify      string  `toml:"justify" json:"justify"`
	AlignItems   string  `toml:"align_items" json:"align_items"`
	AlignContent string  `toml:"align_content" json:"align_content"`
	Gap          float64 `toml:"gap" json:"gap"`

	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`

	MinWidth  float64 `toml:"min_width" json:"min_width"`
	MinHeight float64 `toml:"min_height" json:"min_height"`
	MaxWidth  float64 `toml:"max_width" json:"max_width"`
	MaxHeight float64 `toml:"max_height" json:"max_height"`

	Grow      float64  `toml:"grow" json:"grow"`
	Shrink    *float64 `toml:"shrink" json:"shrink"` // nil means 1
	AlignSelf string   `toml:"align_self" json:"align_self"`
	Absolute  bool     `toml:"absolute" json:"absolute"`
	Hidden    bool     `toml:"hidden" json:"hidden"`

	// Padding and Margin take 1 (all), 2 (vertical, horizontal) or 4
	// (top, right, bottom, left) values.
	Padding []float64 `toml:"padding" json:"padding"`
	Margin  []float64 `toml:"margin" json:"margin"`

	// Content is the [width, height] intrinsic size of a leaf.
	Content []float64 `toml:"content" json:"content"`

	Children []Node `toml:"children" json:"children"`
}

var strictJSON = json.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// Decode reads one document in the given format. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, fmt.Errorf("decode toml: %s", strings.TrimSpace(strict.String()))
			}
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatJSON:
		if err := strictJSON.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown fixture format %q", format)
	}
	return &doc, nil
}

// Load reads and decodes the fixture at path. It does not validate.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
