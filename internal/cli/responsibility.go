package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-leo/solid/journal"
)

func (a *app) responsibilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "single-responsibility",
		Short: "Keep a journal and persist it separately",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runResponsibility(cmd)
		},
	}
}

func (a *app) runResponsibility(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	j := journal.New()
	for _, text := range []string{"I rode a bike.", "I ate a bug."} {
		if _, err := j.AddEntry(text); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Journal entries:\n%s\n\n", j)

	m := journal.NewPersistenceManager(journal.Logger(a.logger))
	if err := m.SaveToFile(ctx, j, a.config.Journal); err != nil {
		return err
	}
	loaded, err := m.LoadFromFile(ctx, a.config.Journal)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Read back from %s:\n%s\n", a.config.Journal, loaded)
	return nil
}
