// Package pipeline provides the load → plan → render pipeline shared by the
// CLI, the preview server and the terminal viewer.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a data table from CSV or JSON, optionally sorting labels
//  2. Plan: build a chart of the selected value kind and run one layout pass
//  3. Render: execute the plan through the sinks in every requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	table, err := pipeline.Load("prices.csv", true)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Table:   table,
//	    Kind:    "float64",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/cache"
	"github.com/matzehuels/linechart/pkg/config"
	"github.com/matzehuels/linechart/pkg/errors"
	lcio "github.com/matzehuels/linechart/pkg/io"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 400.0

	// DefaultKind is the default value kind.
	DefaultKind = numeric.KindFloat64

	// DefaultTextCols and DefaultTextRows size the txt format grid.
	DefaultTextCols = 100
	DefaultTextRows = 30
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatText: true,
}

// Formats lists the supported formats in display order.
func Formats() []string {
	return []string{FormatSVG, FormatJSON, FormatPNG, FormatPDF, FormatText}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Data
	Table      lcio.Table `json:"table"`
	SortLabels bool       `json:"sort_labels,omitempty"`

	// Chart settings. Config may be nil. Width, Height and Kind fall back to
	// Config and then to the defaults.
	Config *config.File `json:"config,omitempty"`
	Kind   string       `json:"kind,omitempty"`
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	TextCols int      `json:"text_cols,omitempty"`
	TextRows int      `json:"text_rows,omitempty"`
	Scale    float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-"`
	Logger  *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the draw plan, nil when every artifact came from cache.
	Plan *render.Plan

	// Ticks is the vertical axis of the plan.
	Ticks axis.TickSet

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Points     int
	Commands   int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields from Config and then from the package
// defaults. It is idempotent.
func (o *Options) SetDefaults() {
	f := o.config()
	if o.Width == 0 && f.Width != nil {
		o.Width = *f.Width
	}
	if o.Height == 0 && f.Height != nil {
		o.Height = *f.Height
	}
	if o.Kind == "" {
		o.Kind = f.Kind
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.TextCols == 0 {
		o.TextCols = DefaultTextCols
	}
	if o.TextRows == 0 {
		o.TextRows = DefaultTextRows
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the kind, viewport and formats. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := numeric.ValidKind(o.Kind); err != nil {
		return err
	}
	if err := errors.ValidateViewport(o.Width, o.Height); err != nil {
		return err
	}
	if o.TextCols <= 0 || o.TextRows <= 0 {
		return errors.New(errors.ErrCodeInvalidViewport, "text grid must be positive, got %dx%d", o.TextCols, o.TextRows)
	}
	return ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// config returns Config or an empty file.
func (o *Options) config() *config.File {
	if o.Config == nil {
		return &config.File{}
	}
	return o.Config
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format, configHash string) cache.ArtifactKeyOpts {
	key := cache.ArtifactKeyOpts{
		Kind:       o.Kind,
		Width:      o.Width,
		Height:     o.Height,
		Format:     format,
		ConfigHash: configHash,
		Sorted:     o.SortLabels,
	}
	switch format {
	case FormatText:
		key.Format = fmt.Sprintf("%s:%dx%d", format, o.TextCols, o.TextRows)
	case FormatPNG:
		key.Format = fmt.Sprintf("%s@%g", format, o.Scale)
	}
	return key
}
