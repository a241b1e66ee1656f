package cmd

import (
	"log/slog"
	"os"

	"github.com/pubdex/pubdex/internal/ent/kv"
	"github.com/pubdex/pubdex/internal/io/kvio"
	"github.com/pubdex/pubdex/internal/io/mergeio"
	pubdex "github.com/pubdex/pubdex/pkg"
	"github.com/pubdex/pubdex/pkg/config"
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Folds research findings into the canonical dataset",
	Run: func(_ *cobra.Command, _ []string) {
		var err error
		var idx kv.KeyVal
		cfg := config.New(opts...)
		pd := pubdex.New(cfg)
		idx, err = kvio.New(cfg.IndexDir)
		if err != nil {
			slog.Error("Cannot create ID index.", "error", err)
			os.Exit(1)
		}
		m, err := mergeio.New(cfg, idx)
		if err != nil {
			slog.Error("Cannot create Merger.", "error", err)
			os.Exit(1)
		}
		err = pd.Merge(m)
		if err != nil {
			slog.Error("Cannot merge research findings", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
