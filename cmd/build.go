package cmd

import (
	"log/slog"
	"os"

	"github.com/pubdex/pubdex/internal/io/buildio"
	pubdex "github.com/pubdex/pubdex/pkg"
	"github.com/pubdex/pubdex/pkg/config"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Converts the publications CSV into the canonical dataset",
	Run: func(_ *cobra.Command, _ []string) {
		cfg := config.New(opts...)
		if cfg.FeaturedFile != "" {
			if err := cfg.LoadFeatured(); err != nil {
				slog.Error("Cannot load featured lists", "error", err)
				os.Exit(1)
			}
		}
		pd := pubdex.New(cfg)
		b, err := buildio.New(cfg)
		if err != nil {
			slog.Error("Cannot create Builder.", "error", err)
			os.Exit(1)
		}
		err = pd.Build(b)
		if err != nil {
			slog.Error("Cannot build dataset", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
