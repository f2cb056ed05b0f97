package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is the color of a placed cell or of the active piece. ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorBrown
)

// Colors lists the piece colors, ColorNone excluded.
var Colors = [...]Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorPurple,
	ColorBrown,
}

var colorNames = map[Color]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorOrange: "orange",
	ColorYellow: "yellow",
	ColorGreen:  "green",
	ColorBlue:   "blue",
	ColorPurple: "purple",
	ColorBrown:  "brown",
}

var colorLetters = map[Color]byte{
	ColorRed:    'R',
	ColorOrange: 'O',
	ColorYellow: 'Y',
	ColorGreen:  'G',
	ColorBlue:   'B',
	ColorPurple: 'P',
	ColorBrown:  'N',
}

func (that Color) IsSet() bool {
	return that != ColorNone
}

func (that Color) String() string {
	if name, ok := colorNames[that]; ok {
		return name
	}

	return fmt.Sprintf("color(%d)", uint8(that))
}

// Letter returns the one-letter code used by the text snapshot, a space for ColorNone.
func (that Color) Letter() byte {
	if letter, ok := colorLetters[that]; ok {
		return letter
	}

	return ' '
}

func (that Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(that))
	}

	return []byte(name), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	for color, name := range colorNames {
		if name == string(text) {
			*that = color
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownColor, text)
}
