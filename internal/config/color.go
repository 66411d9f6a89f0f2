package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	colorPrefix         = "#"
	shorthandColorWidth = 3
	fullColorWidth      = 6
	invalidColorFormat  = "invalid color %q: expected 3 or 6 hexadecimal digits with an optional leading #"
)

// ErrEmptyColor is returned when a color value is blank.
var ErrEmptyColor = errors.New("color value is empty")

// Color is a normalized RGB color: six upper-case hexadecimal digits without a leading #.
type Color string

// Hex returns the color in "#RRGGBB" form.
func (color Color) Hex() string {
	return colorPrefix + string(color)
}

// NormalizeHexColor validates a user supplied color and returns its normalized
// form. A leading # is optional and three-digit shorthand is expanded by
// doubling every digit, so "#F00" becomes "FF0000".
func NormalizeHexColor(input string) (Color, error) {
	trimmedInput := strings.TrimPrefix(strings.TrimSpace(input), colorPrefix)
	if trimmedInput == "" {
		return "", ErrEmptyColor
	}
	if !isHexadecimal(trimmedInput) {
		return "", fmt.Errorf(invalidColorFormat, input)
	}
	switch len(trimmedInput) {
	case shorthandColorWidth:
		var expanded strings.Builder
		for _, digit := range trimmedInput {
			expanded.WriteRune(digit)
			expanded.WriteRune(digit)
		}
		trimmedInput = expanded.String()
	case fullColorWidth:
	default:
		return "", fmt.Errorf(invalidColorFormat, input)
	}
	return Color(strings.ToUpper(trimmedInput)), nil
}

func isHexadecimal(value string) bool {
	for _, character := range value {
		switch {
		case character >= '0' && character <= '9':
		case character >= 'a' && character <= 'f':
		case character >= 'A' && character <= 'F':
		default:
			return false
		}
	}
	return true
}
