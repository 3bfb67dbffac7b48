package product

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Color of a product.
type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

var colorNames = map[Color]string{
	Red:   "RED",
	Green: "GREEN",
	Blue:  "BLUE",
}

// Colors returns every known Color in declaration order.
func Colors() []Color {
	return []Color{Red, Green, Blue}
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// ParseColor parses a color name, ignoring case.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownColor, "%q", s)
}

func (c Color) MarshalText() ([]byte, error) {
	if _, ok := colorNames[c]; !ok {
		return nil, errors.Wrapf(ErrUnknownColor, "%d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	return c.UnmarshalText([]byte(value.Value))
}
