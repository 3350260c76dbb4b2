package pipeline

import (
	"bytes"

	"github.com/matzehuels/linechart/pkg/errors"
	lcio "github.com/matzehuels/linechart/pkg/io"
)

// Load imports a data file and, when sortLabels is set, orders its rows
// naturally by label.
func Load(path string, sortLabels bool) (lcio.Table, error) {
	t, err := lcio.Import(path)
	if err != nil {
		return lcio.Table{}, err
	}
	return prepare(t, sortLabels)
}

// Decode reads a table from raw bytes in the named data format ("csv" or
// "json").
func Decode(data []byte, format string, sortLabels bool) (lcio.Table, error) {
	var (
		t   lcio.Table
		err error
	)
	switch format {
	case "csv":
		t, err = lcio.ReadCSV(bytes.NewReader(data))
	case "json":
		t, err = lcio.ReadJSON(bytes.NewReader(data))
	default:
		return lcio.Table{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported data format %q (use csv or json)", format)
	}
	if err != nil {
		return lcio.Table{}, err
	}
	return prepare(t, sortLabels)
}

func prepare(t lcio.Table, sortLabels bool) (lcio.Table, error) {
	if !sortLabels {
		return t, nil
	}
	return lcio.SortNatural(t)
}
