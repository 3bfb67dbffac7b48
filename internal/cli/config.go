package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyCatalog = "catalog"
	keyJournal = "journal"
	keyDebug   = "debug"
)

// Config is read from flags, then SOLID_* environment variables.
type Config struct {
	// Catalog is a json or yaml product catalog. Empty means the built-in products.
	Catalog string
	// Journal is where the single responsibility demonstration saves its journal.
	Journal string
	Debug   bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("solid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyJournal, filepath.Join(os.TempDir(), "journal.txt"))
	return v
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(keyCatalog, "", "product catalog file (.json, .yaml or .yml)")
	flags.String(keyJournal, "", "journal file written by single-responsibility")
	flags.Bool(keyDebug, false, "enable development logging")
}

func loadConfig(v *viper.Viper) Config {
	return Config{
		Catalog: v.GetString(keyCatalog),
		Journal: v.GetString(keyJournal),
		Debug:   v.GetBool(keyDebug),
	}
}
