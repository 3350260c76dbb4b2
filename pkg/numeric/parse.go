package numeric

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Kind names accepted by [ValidKind] and the pipeline's kind option.
const (
	KindInt     = "int"
	KindInt8    = "int8"
	KindInt16   = "int16"
	KindInt32   = "int32"
	KindInt64   = "int64"
	KindUint    = "uint"
	KindUint8   = "uint8"
	KindUint16  = "uint16"
	KindUint32  = "uint32"
	KindUint64  = "uint64"
	KindFloat32 = "float32"
	KindFloat64 = "float64"
)

var kinds = []string{
	KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
	KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
	KindFloat32, KindFloat64,
}

// Kinds returns the names of the built-in kinds.
func Kinds() []string {
	return slices.Clone(kinds)
}

// ValidKind returns an INVALID_OPTION error unless name is a built-in kind.
func ValidKind(name string) error {
	if slices.Contains(kinds, name) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidOption, "unknown value kind %q (valid: %s)", name, strings.Join(kinds, ", "))
}

// KindOf returns the name of T, or "custom" for kinds defined outside this
// package.
func KindOf[T Value[T]]() string {
	var zero T
	switch any(zero).(type) {
	case Int:
		return KindInt
	case Int8:
		return KindInt8
	case Int16:
		return KindInt16
	case Int32:
		return KindInt32
	case Int64:
		return KindInt64
	case Uint:
		return KindUint
	case Uint8:
		return KindUint8
	case Uint16:
		return KindUint16
	case Uint32:
		return KindUint32
	case Uint64:
		return KindUint64
	case Float32:
		return KindFloat32
	case Float64:
		return KindFloat64
	}
	return "custom"
}

// Parse reads a value of kind T from text.
//
// Integer kinds parse natively so precision beyond 2^53 survives. Integer
// text written in float notation ("12.0", "1e3") is accepted when it is
// integral. Other kinds parse as float64 and convert through FromScalar.
func Parse[T Value[T]](text string) (T, error) {
	var zero T
	s := strings.TrimSpace(text)
	if s == "" {
		return zero, errors.New(errors.ErrCodeInvalidInput, "empty %s value", KindOf[T]())
	}

	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case Int:
		v, err = parseSigned[Int](s, strconv.IntSize)
	case Int8:
		v, err = parseSigned[Int8](s, 8)
	case Int16:
		v, err = parseSigned[Int16](s, 16)
	case Int32:
		v, err = parseSigned[Int32](s, 32)
	case Int64:
		v, err = parseSigned[Int64](s, 64)
	case Uint:
		v, err = parseUnsigned[Uint](s, strconv.IntSize)
	case Uint8:
		v, err = parseUnsigned[Uint8](s, 8)
	case Uint16:
		v, err = parseUnsigned[Uint16](s, 16)
	case Uint32:
		v, err = parseUnsigned[Uint32](s, 32)
	case Uint64:
		v, err = parseUnsigned[Uint64](s, 64)
	case Float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = Float32(f)
	default:
		var f float64
		f, err = strconv.ParseFloat(s, 64)
		v = zero.FromScalar(f)
	}
	if err != nil {
		return zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %q as %s", text, KindOf[T]())
	}
	return v.(T), nil
}

func parseSigned[N ~int | ~int8 | ~int16 | ~int32 | ~int64](s string, bits int) (N, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	if err == nil {
		return N(n), nil
	}
	f, ferr := integral(s, -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1))
	if ferr != nil {
		return 0, err
	}
	return N(f), nil
}

func parseUnsigned[N ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](s string, bits int) (N, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err == nil {
		return N(n), nil
	}
	f, ferr := integral(s, 0, math.Ldexp(1, bits))
	if ferr != nil {
		return 0, err
	}
	return N(f), nil
}

// integral parses s as a float that must be a whole number in [lo, hi).
func integral(s string, lo, hi float64) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < lo || f >= hi {
		return 0, strconv.ErrRange
	}
	return f, nil
}
