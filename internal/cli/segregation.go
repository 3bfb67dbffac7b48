package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-leo/solid/device"
)

func (a *app) segregationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segregation",
		Short: "Use devices through the capabilities they actually have",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSegregation(cmd)
		},
	}
}

func (a *app) runSegregation(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	doc := device.Document{Name: "memo", Content: "Printed memo"}

	printer := device.NewConsolePrinter(out)
	copier := device.NewPhotocopier(printer)
	fax := device.NewLineFax()
	machine, err := device.NewMultiFunctionMachine(printer, copier, fax)
	if err != nil {
		return err
	}

	for _, d := range []struct {
		name   string
		device any
	}{
		{name: "printer", device: printer},
		{name: "photocopier", device: copier},
		{name: "fax", device: fax},
		{name: "multi-function machine", device: machine},
	} {
		fmt.Fprintf(out, "%s can %v\n", d.name, device.Capabilities(d.device))
	}

	if err := printer.Print(ctx, doc); err != nil {
		return err
	}
	if err := copier.Copy(ctx, doc); err != nil {
		return err
	}
	scanned, err := machine.Scan(ctx, doc)
	if err != nil {
		return err
	}
	if err := machine.Fax(ctx, scanned, "555-0100"); err != nil {
		return err
	}
	for _, tx := range fax.Sent() {
		a.logger.Debug("fax sent", zap.String("number", tx.Number), zap.Stringer("document", tx.Document))
		fmt.Fprintf(out, "faxed %s to %s\n", tx.Document, tx.Number)
	}
	return nil
}
