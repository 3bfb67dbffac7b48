package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the solid command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	config Config
	logger *zap.Logger
}

// NewRootCmd returns the solid command with one subcommand per principle.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	v := newViper()

	cmd := &cobra.Command{
		Use:          "solid",
		Short:        "Walk through the SOLID principles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.config = loadConfig(v)
			if a.config.Debug {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				a.logger = logger
			}
			a.logger.Debug("config loaded",
				zap.String("catalog", a.config.Catalog),
				zap.String("journal", a.config.Journal),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	bindFlags(cmd)

	cmd.AddCommand(
		a.openClosedCmd(),
		a.liskovCmd(),
		a.segregationCmd(),
		a.responsibilityCmd(),
		a.allCmd(),
	)
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demonstration in turn",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, run := range []func(*cobra.Command) error{
				a.runOpenClosed,
				a.runLiskov,
				a.runSegregation,
				a.runResponsibility,
			} {
				if err := run(cmd); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
