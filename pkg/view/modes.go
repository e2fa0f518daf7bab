package view

import (
	"fmt"
	"strings"
)

// ReturnFilter selects points by their position within the pulse
type ReturnFilter int

const (
	ReturnsAll      ReturnFilter = iota // every return
	ReturnsFirst                        // return_number == 1
	ReturnsLast                         // return_number == number_of_returns
	ReturnsMultiple                     // number_of_returns > 1
	ReturnsSingle                       // number_of_returns == 1

	numReturnFilters
)

var returnFilterNames = [...]string{
	ReturnsAll:      "all",
	ReturnsFirst:    "first",
	ReturnsLast:     "last",
	ReturnsMultiple: "multiple",
	ReturnsSingle:   "single",
}

func (f ReturnFilter) String() string {
	if f >= 0 && f < numReturnFilters {
		return returnFilterNames[f]
	}
	return fmt.Sprintf("ReturnFilter(%d)", int(f))
}

// Next returns the following mode, wrapping around after ReturnsSingle
func (f ReturnFilter) Next() ReturnFilter {
	return (f + 1) % numReturnFilters
}

// ParseReturnFilter parses a return filter name such as "first"
func ParseReturnFilter(value string) (ReturnFilter, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for i, name := range returnFilterNames {
		if name == v {
			return ReturnFilter(i), nil
		}
	}
	return 0, fmt.Errorf("unknown return filter %q (expected one of %s)", value, strings.Join(returnFilterNames[:], ", "))
}

// ColorMode selects how visible points are colored
type ColorMode int

const (
	ColorUniform   ColorMode = iota // one color for every point
	ColorBySource                   // palette keyed by the classification read from the input
	ColorByDerived                  // palette keyed by the classifier's code

	numColorModes
)

var colorModeNames = [...]string{
	ColorUniform:   "uniform",
	ColorBySource:  "source",
	ColorByDerived: "derived",
}

func (m ColorMode) String() string {
	if m >= 0 && m < numColorModes {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// Next returns the following mode, wrapping around after ColorByDerived
func (m ColorMode) Next() ColorMode {
	return (m + 1) % numColorModes
}

// ParseColorMode parses a color mode name such as "source"
func ParseColorMode(value string) (ColorMode, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for i, name := range colorModeNames {
		if name == v {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q (expected one of %s)", value, strings.Join(colorModeNames[:], ", "))
}

// Projection is the camera projection used by render consumers
type Projection int

const (
	Perspective Projection = iota
	TopOrthographic
)

func (p Projection) String() string {
	if p == TopOrthographic {
		return "top"
	}
	return "perspective"
}
