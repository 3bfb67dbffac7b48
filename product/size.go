package product

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Size of a product.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "SMALL",
	Medium: "MEDIUM",
	Large:  "LARGE",
}

// Sizes returns every known Size in declaration order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return "Size(" + strconv.Itoa(int(s)) + ")"
}

// ParseSize parses a size name, ignoring case.
func ParseSize(s string) (Size, error) {
	for size, name := range sizeNames {
		if strings.EqualFold(name, s) {
			return size, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownSize, "%q", s)
}

func (s Size) MarshalText() ([]byte, error) {
	if _, ok := sizeNames[s]; !ok {
		return nil, errors.Wrapf(ErrUnknownSize, "%d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	return s.UnmarshalText([]byte(value.Value))
}
