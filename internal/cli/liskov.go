package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-leo/solid/shape"
)

func (a *app) liskovCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liskov",
		Short: "Stretch shapes that can be substituted for one another",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLiskov(cmd)
		},
	}
}

func (a *app) runLiskov(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	rectangle := shape.NewRectangle(2, 3)
	fmt.Fprintln(out, rectangle)
	expected, got := shape.StretchHeight(rectangle, 10)
	fmt.Fprintf(out, "Expected an area of %d, got %d\n", expected, got)

	square := shape.NewSquare(5)
	var s shape.Shape = square
	if _, ok := s.(shape.Resizable); !ok {
		fmt.Fprintf(out, "%s cannot be stretched, area %d\n", square, square.Area())
	}
	return nil
}
