// Package io reads chart series from CSV and JSON files.
//
// # Overview
//
// A [Table] keeps labels and raw value text side by side. Value text stays
// unparsed until the element kind is known, so an int64 column keeps every
// digit instead of passing through float64 first. [Values] parses a table
// into a concrete kind.
//
// # CSV Format
//
// Two columns, label then value. A header row is detected when the value
// cell of the first row is not a number:
//
//	month,price
//	Jan,19.10
//	Feb,19.34
//	Mar,
//
// A blank value cell ends the value sequence. Later rows still contribute
// labels, which yields a series with fewer values than labels. A value after
// the gap is an error.
//
// # JSON Format
//
//	{"labels": ["Jan", "Feb", "Mar"], "values": [19.10, 19.34]}
//
// Labels may be strings or numbers. Values may be numbers or numeric strings;
// quoting preserves precision for integers beyond 2^53.
//
// # Import
//
// Use [Import] to read a file by extension, or [ReadCSV] and [ReadJSON] to
// read from any io.Reader:
//
//	t, err := io.Import("prices.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	values, err := io.Values[numeric.Float64](t)
package io
