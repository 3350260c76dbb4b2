// Package config loads chart settings from TOML, YAML or JSON files.
//
// Every field is optional. Absent fields keep the defaults of the layout,
// axis and render packages; present fields are applied through the same
// setters an embedding program would call, so padding below the floor is
// clamped exactly as it would be at runtime.
//
//	width = 800
//	height = 400
//	kind = "float64"
//
//	[layout]
//	padding = 30
//	reversed = true
//
//	[axis]
//	unit_step = 0.25
//	decimal_places = 2
//
//	[style.line]
//	width = 1.5
//	cap = "round"
//	color = "#00f0ff"
//
// Unknown keys are rejected so that typos surface instead of silently
// falling back to defaults.
package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Format is a config file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the decoded content of a config file.
type File struct {
	Width      *float64   `toml:"width" yaml:"width" json:"width,omitempty"`
	Height     *float64   `toml:"height" yaml:"height" json:"height,omitempty"`
	Kind       string     `toml:"kind" yaml:"kind" json:"kind,omitempty"`
	Layout     Layout     `toml:"layout" yaml:"layout" json:"layout"`
	Visibility Visibility `toml:"visibility" yaml:"visibility" json:"visibility"`
	Axis       Axis       `toml:"axis" yaml:"axis" json:"axis"`
	Style      Style      `toml:"style" yaml:"style" json:"style"`
}

// Layout is the [layout] section.
type Layout struct {
	Padding    *float64 `toml:"padding" yaml:"padding" json:"padding,omitempty"`
	MinPadding *float64 `toml:"min_padding" yaml:"min_padding" json:"min_padding,omitempty"`
	Top        *float64 `toml:"top" yaml:"top" json:"top,omitempty"`
	Right      *float64 `toml:"right" yaml:"right" json:"right,omitempty"`
	Bottom     *float64 `toml:"bottom" yaml:"bottom" json:"bottom,omitempty"`
	Left       *float64 `toml:"left" yaml:"left" json:"left,omitempty"`
	Reversed   *bool    `toml:"reversed" yaml:"reversed" json:"reversed,omitempty"`
}

// Visibility is the [visibility] section.
type Visibility struct {
	HideXAxis      bool `toml:"hide_x_axis" yaml:"hide_x_axis" json:"hide_x_axis,omitempty"`
	HideYAxis      bool `toml:"hide_y_axis" yaml:"hide_y_axis" json:"hide_y_axis,omitempty"`
	HideXGridlines bool `toml:"hide_x_gridlines" yaml:"hide_x_gridlines" json:"hide_x_gridlines,omitempty"`
	HideYGridlines bool `toml:"hide_y_gridlines" yaml:"hide_y_gridlines" json:"hide_y_gridlines,omitempty"`
	HideXLabels    bool `toml:"hide_x_labels" yaml:"hide_x_labels" json:"hide_x_labels,omitempty"`
	HideYLabels    bool `toml:"hide_y_labels" yaml:"hide_y_labels" json:"hide_y_labels,omitempty"`
}

// Axis is the [axis] section.
type Axis struct {
	UnitStep      *float64 `toml:"unit_step" yaml:"unit_step" json:"unit_step,omitempty"`
	DecimalPlaces *int     `toml:"decimal_places" yaml:"decimal_places" json:"decimal_places,omitempty"`
}

// Line configures one stroked element.
type Line struct {
	Width *float64  `toml:"width" yaml:"width" json:"width,omitempty"`
	Cap   string    `toml:"cap" yaml:"cap" json:"cap,omitempty"`
	Join  string    `toml:"join" yaml:"join" json:"join,omitempty"`
	Color string    `toml:"color" yaml:"color" json:"color,omitempty"`
	Dash  []float64 `toml:"dash" yaml:"dash" json:"dash,omitempty"`
}

// Text configures one kind of label.
type Text struct {
	Font  string   `toml:"font" yaml:"font" json:"font,omitempty"`
	Size  *float64 `toml:"size" yaml:"size" json:"size,omitempty"`
	Align string   `toml:"align" yaml:"align" json:"align,omitempty"`
	Color string   `toml:"color" yaml:"color" json:"color,omitempty"`
}

// Style is the [style] section.
type Style struct {
	Background  string   `toml:"background" yaml:"background" json:"background,omitempty"`
	Line        Line     `toml:"line" yaml:"line" json:"line"`
	MarkerSize  *float64 `toml:"marker_size" yaml:"marker_size" json:"marker_size,omitempty"`
	MarkerColor string   `toml:"marker_color" yaml:"marker_color" json:"marker_color,omitempty"`
	XAxis       Line     `toml:"x_axis" yaml:"x_axis" json:"x_axis"`
	YAxis       Line     `toml:"y_axis" yaml:"y_axis" json:"y_axis"`
	XGridlines  Line     `toml:"x_gridlines" yaml:"x_gridlines" json:"x_gridlines"`
	YGridlines  Line     `toml:"y_gridlines" yaml:"y_gridlines" json:"y_gridlines"`
	XLabels     Text     `toml:"x_labels" yaml:"x_labels" json:"x_labels"`
	YLabels     Text     `toml:"y_labels" yaml:"y_labels" json:"y_labels"`
}

// FormatOf picks the syntax from a path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported config extension %q (use .toml, .yaml or .json)", filepath.Ext(path))
}

// Load reads and decodes a config file.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return f, nil
}

// Parse decodes config text in the given syntax.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	return &f, nil
}
