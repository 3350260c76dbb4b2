package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/linechart/pkg/errors"
)

// CapStyle is the shape of stroked line ends.
type CapStyle uint8

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

// JoinStyle is the shape of stroked path corners.
type JoinStyle uint8

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// Alignment is the horizontal anchoring of text at its origin.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var (
	capNames   = []string{"butt", "round", "square"}
	joinNames  = []string{"miter", "round", "bevel"}
	alignNames = []string{"left", "center", "right"}
)

// CapStyles, JoinStyles and Alignments list the recognized option names.
func CapStyles() []string  { return slices.Clone(capNames) }
func JoinStyles() []string { return slices.Clone(joinNames) }
func Alignments() []string { return slices.Clone(alignNames) }

func (c CapStyle) String() string  { return enumName("CapStyle", capNames, int(c)) }
func (j JoinStyle) String() string { return enumName("JoinStyle", joinNames, int(j)) }
func (a Alignment) String() string { return enumName("Alignment", alignNames, int(a)) }

func (c CapStyle) Valid() bool  { return int(c) < len(capNames) }
func (j JoinStyle) Valid() bool { return int(j) < len(joinNames) }
func (a Alignment) Valid() bool { return int(a) < len(alignNames) }

// ParseCapStyle parses "butt", "round" or "square", ignoring case.
func ParseCapStyle(s string) (CapStyle, error) {
	i, err := parseEnum("cap style", capNames, s)
	return CapStyle(i), err
}

// ParseJoinStyle parses "miter", "round" or "bevel", ignoring case.
func ParseJoinStyle(s string) (JoinStyle, error) {
	i, err := parseEnum("join style", joinNames, s)
	return JoinStyle(i), err
}

// ParseAlignment parses "left", "center" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	i, err := parseEnum("alignment", alignNames, s)
	return Alignment(i), err
}

func (c CapStyle) MarshalText() ([]byte, error)  { return marshalEnum("cap style", c.Valid(), c.String()) }
func (j JoinStyle) MarshalText() ([]byte, error) { return marshalEnum("join style", j.Valid(), j.String()) }
func (a Alignment) MarshalText() ([]byte, error) { return marshalEnum("alignment", a.Valid(), a.String()) }

func (c *CapStyle) UnmarshalText(b []byte) (err error) {
	*c, err = ParseCapStyle(string(b))
	return err
}

func (j *JoinStyle) UnmarshalText(b []byte) (err error) {
	*j, err = ParseJoinStyle(string(b))
	return err
}

func (a *Alignment) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAlignment(string(b))
	return err
}

func enumName(kind string, names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", kind, i)
}

func parseEnum(kind string, names []string, s string) (int, error) {
	if i := slices.Index(names, strings.ToLower(strings.TrimSpace(s))); i >= 0 {
		return i, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidOption, "unknown %s %q (valid: %s)", kind, s, strings.Join(names, ", "))
}

func marshalEnum(kind string, valid bool, name string) ([]byte, error) {
	if !valid {
		return nil, errors.New(errors.ErrCodeInvalidOption, "invalid %s %s", kind, name)
	}
	return []byte(name), nil
}
