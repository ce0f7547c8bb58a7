package rubiks

import "strings"

// Color is the colour of a face and of every sticker it started with.
type Color uint8

const (
	Blue   Color = 0 // Front face in the reference orientation
	Red    Color = 1 // Left
	Orange Color = 2 // Right
	White  Color = 3 // Top
	Green  Color = 4 // Back
	Yellow Color = 5 // Bottom
)

const numColors = 6

func (c Color) String() string {
	switch c {
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case White:
		return "W"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the lower-case colour name.
func (c Color) Name() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case White:
		return "white"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor accepts a colour name or its single-letter form.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Color(0); c < numColors; c++ {
		if s == c.Name() || s == strings.ToLower(c.String()) {
			return c, true
		}
	}
	return 0, false
}
