package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-leo/solid/filter"
	"github.com/go-leo/solid/product"
	"github.com/go-leo/solid/specification"
)

func defaultProducts() []product.Product {
	return []product.Product{
		{Name: "Apple", Color: product.Green, Size: product.Small},
		{Name: "Tree", Color: product.Green, Size: product.Large},
		{Name: "House", Color: product.Blue, Size: product.Large},
	}
}

func (a *app) openClosedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-closed",
		Short: "Filter products with composable specifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOpenClosed(cmd)
		},
	}
}

func (a *app) products() ([]product.Product, error) {
	if a.config.Catalog == "" {
		return defaultProducts(), nil
	}
	return product.LoadCatalog(a.config.Catalog)
}

func (a *app) runOpenClosed(cmd *cobra.Command) error {
	products, err := a.products()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	f := filter.New[product.Product](filter.Logger(a.logger))
	logged := func(name string) specification.Decorator[product.Product] {
		return specification.Logged[product.Product](a.logger, name)
	}

	green := specification.Chain(product.ColorIs(product.Green), logged("green"))
	large := specification.Chain(product.SizeIs(product.Large), logged("large"))
	largeBlue := large.And(product.ColorIs(product.Blue))

	for _, section := range []struct {
		title  string
		spec   specification.Specification[product.Product]
		suffix string
	}{
		{title: "Green products:", spec: green, suffix: "is green"},
		{title: "Large products:", spec: large, suffix: "is large"},
		{title: "Large blue items:", spec: largeBlue, suffix: "is large and blue"},
	} {
		fmt.Fprintln(out, section.title)
		for p, err := range f.Filter(cmd.Context(), filter.Values(products), section.spec) {
			if err != nil {
				return err
			}
			fmt.Fprintf(out, " - %s %s\n", p.Name, section.suffix)
		}
	}

	fmt.Fprintln(out, "Green products (legacy filter):")
	for p := range (product.LegacyFilter{}).ByColor(products, product.Green) {
		fmt.Fprintf(out, " - %s\n", p.Describe())
	}
	return nil
}
