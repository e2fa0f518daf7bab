package txt

import (
	"fmt"
	"sort"
	"strings"
)

// Field is the meaning of one column of a text record
type Field int

const (
	Skip Field = iota
	X
	Y
	Z
	ReturnNumber
	NumberOfReturns
	Classification
)

var fieldNames = [...]string{
	Skip:            "skip",
	X:               "x",
	Y:               "y",
	Z:               "z",
	ReturnNumber:    "return_number",
	NumberOfReturns: "number_of_returns",
	Classification:  "classification",
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Layout is a named column order. Columns past len(Fields) are ignored.
type Layout struct {
	Name        string
	Description string
	Fields      []Field
}

var (
	// LayoutXYZRNC is the canonical order:
	// x y z return_number number_of_returns classification
	LayoutXYZRNC = Layout{
		Name:        "xyzrnc",
		Description: "x y z return_number number_of_returns classification",
		Fields:      []Field{X, Y, Z, ReturnNumber, NumberOfReturns, Classification},
	}

	// LayoutXYZNRC matches `las2txt -parse xyznrc`:
	// x y z number_of_returns return_number classification
	LayoutXYZNRC = Layout{
		Name:        "xyznrc",
		Description: "x y z number_of_returns return_number classification (las2txt -parse xyznrc)",
		Fields:      []Field{X, Y, Z, NumberOfReturns, ReturnNumber, Classification},
	}

	// LayoutPDAL matches the default column set written by `pdal translate` to text
	LayoutPDAL = Layout{
		Name:        "pdal",
		Description: "X,Y,Z,Intensity,ReturnNumber,NumberOfReturns,ScanDirectionFlag,EdgeOfFlightLine,Classification,... (pdal translate)",
		Fields: []Field{
			X, Y, Z,
			Skip, // Intensity
			ReturnNumber, NumberOfReturns,
			Skip, // ScanDirectionFlag
			Skip, // EdgeOfFlightLine
			Classification,
		},
	}
)

var layouts = map[string]Layout{
	LayoutXYZRNC.Name: LayoutXYZRNC,
	LayoutXYZNRC.Name: LayoutXYZNRC,
	LayoutPDAL.Name:   LayoutPDAL,
}

// LayoutNames returns the names of the built-in layouts
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayoutByName looks up a built-in layout
func LayoutByName(name string) (Layout, error) {
	l, ok := layouts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (expected one of %s)", name, strings.Join(LayoutNames(), ", "))
	}
	return l, nil
}

// HeaderMode controls how the first line of the input is treated
type HeaderMode string

const (
	// HeaderAuto discards the first line only if it does not parse as a record
	HeaderAuto HeaderMode = "auto"
	// HeaderAlways discards the first line unconditionally
	HeaderAlways HeaderMode = "always"
	// HeaderNever treats the first line as data
	HeaderNever HeaderMode = "never"
)

// ParseHeaderMode normalizes a header mode name
func ParseHeaderMode(value string) (HeaderMode, error) {
	switch m := HeaderMode(strings.ToLower(strings.TrimSpace(value))); m {
	case HeaderAuto, HeaderAlways, HeaderNever:
		return m, nil
	case "":
		return HeaderAuto, nil
	default:
		return "", fmt.Errorf("unknown header mode %q (expected auto, always or never)", value)
	}
}
