package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Import reads a table from a .csv or .json file.
func Import(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return Table{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(bytes.NewReader(data))
	case ".json":
		return ReadJSON(bytes.NewReader(data))
	default:
		return Table{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file extension %q (use .csv or .json)", ext)
	}
}

// ReadCSV decodes label,value rows from r. ReadCSV does not close r.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var (
		t   Table
		gap int // row of the first blank value, 0 if none
	)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv")
		}
		if len(rec) > 2 {
			return Table{}, errors.New(errors.ErrCodeInvalidInput, "row %d: expected label,value, got %d fields", row, len(rec))
		}

		lbl := strings.TrimSpace(rec[0])
		val := ""
		if len(rec) == 2 {
			val = strings.TrimSpace(rec[1])
		}
		if row == 1 && isHeader(val) {
			continue
		}

		t.Labels = append(t.Labels, lbl)
		switch {
		case val == "":
			if gap == 0 {
				gap = row
			}
		case gap != 0:
			return Table{}, errors.New(errors.ErrCodeInvalidInput, "row %d: value after blank value in row %d", row, gap)
		default:
			t.Values = append(t.Values, val)
		}
	}
	return t, nil
}

func isHeader(val string) bool {
	if val == "" {
		return false
	}
	_, err := strconv.ParseFloat(val, 64)
	return err != nil
}

// Document is the JSON shape of a series. Decoders should call UseNumber.
type Document struct {
	Labels []any `json:"labels"`
	Values []any `json:"values"`
}

// ReadJSON decodes {"labels": [...], "values": [...]} from r. ReadJSON does
// not close r.
func ReadJSON(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return doc.Table()
}

// Table converts decoded cells to label and value text.
func (d Document) Table() (Table, error) {
	t := Table{
		Labels: make([]string, len(d.Labels)),
		Values: make([]string, len(d.Values)),
	}
	for i, l := range d.Labels {
		s, err := cell(l)
		if err != nil {
			return Table{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "label %d", i+1)
		}
		t.Labels[i] = s
	}
	for i, v := range d.Values {
		s, err := cell(v)
		if err != nil || s == "" {
			return Table{}, errors.New(errors.ErrCodeInvalidInput, "value %d must be a number, got %v", i+1, v)
		}
		t.Values[i] = s
	}
	return t, nil
}

func cell(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return "", fmt.Errorf("unsupported type %T", v)
}
