package pipeline

import (
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/render"
	"github.com/matzehuels/linechart/pkg/render/sink"
)

// Render executes the plan through the sink of every requested format.
func Render(p render.Plan, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := RenderFormat(p, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat executes the plan through one sink.
func RenderFormat(p render.Plan, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(p)
	case FormatJSON:
		data, err = sink.RenderJSON(p)
	case FormatPNG:
		var pngOpts []sink.PNGOption
		if opts.Scale != 0 {
			pngOpts = append(pngOpts, sink.WithScale(opts.Scale))
		}
		data, err = sink.RenderPNG(p, pngOpts...)
	case FormatPDF:
		data, err = sink.RenderPDF(p)
	case FormatText:
		data, err = sink.RenderText(p, opts.TextCols, opts.TextRows)
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}
