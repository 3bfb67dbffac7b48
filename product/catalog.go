package product

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format is a catalog encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the catalog format from the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

type catalog struct {
	Products []Product `json:"products" yaml:"products"`
}

// LoadCatalog reads the products listed in the file at path.
func LoadCatalog(path string) ([]Product, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog")
	}
	defer f.Close()
	products, err := DecodeCatalog(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return products, nil
}

// DecodeCatalog reads a catalog document in the given format.
// Every product must carry a known color and size.
func DecodeCatalog(r io.Reader, format Format) ([]Product, error) {
	var c catalog
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(err, "failed to decode json catalog")
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to decode yaml catalog")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%s", format)
	}
	for i, p := range c.Products {
		if _, ok := colorNames[p.Color]; !ok {
			return nil, errors.Wrapf(ErrUnknownColor, "product %d (%s)", i, p.Name)
		}
		if _, ok := sizeNames[p.Size]; !ok {
			return nil, errors.Wrapf(ErrUnknownSize, "product %d (%s)", i, p.Name)
		}
	}
	return c.Products, nil
}

// EncodeCatalog writes products as an indented json catalog.
func EncodeCatalog(w io.Writer, products []Product) error {
	if products == nil {
		products = []Product{}
	}
	data, err := json.MarshalIndent(catalog{Products: products}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode catalog")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write catalog")
	}
	return nil
}
