package cmd

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/lmittmann/tint"
	pubdex "github.com/pubdex/pubdex/pkg"
	"github.com/pubdex/pubdex/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:embed pubdex.yaml
var configText string

var (
	opts []config.Option
)

type cfgData struct {
	DataDir      string
	CSVFile      string
	DatasetFile  string
	ResearchDir  string
	FeaturedFile string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pubdex",
	Short: "Builds and enriches the publications dataset",
	Long: `pubdex maintains a structured dataset of newspaper and periodical
publications. The build command normalizes the publications CSV into
the canonical dataset JSON; the merge command folds research findings
into it, filling only the fields that are still empty.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := cmd.Flags().GetBool("version")
		if err != nil {
			slog.Error("Cannot get flag", "error", err)
			os.Exit(1)
		}
		if version {
			fmt.Printf("\nversion: %s\nbuild: %s\n\n", pubdex.Version, pubdex.Build)
			os.Exit(0)
		}

		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	rootCmd.Flags().BoolP("version", "V", false, "Returns version and build date")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	var homeDir, cfgDir string
	configFile := "pubdex"

	// Find home directory.
	homeDir, err = os.UserHomeDir()
	if err != nil {
		slog.Error("Cannot find home dir", "error", err)
		os.Exit(1)
	}
	cfgDir = filepath.Join(homeDir, ".config")

	// Search config in home directory with name "pubdex" (without extension).
	viper.AddConfigPath(cfgDir)
	viper.SetConfigName(configFile)

	configPath := filepath.Join(cfgDir, fmt.Sprintf("%s.yaml", configFile))
	touchConfigFile(configPath)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Config file pubdex.yaml not found", "error", err)
		os.Exit(1)
	}
	getOpts()
}

// getOpts imports data from the configuration file. Some of the settings can
// be overriden by command line flags.
func getOpts() []config.Option {
	cfg := cfgData{}
	err := viper.Unmarshal(&cfg)
	if err != nil {
		slog.Error("Cannot unmarshal config file", "error", err)
	}

	if cfg.DataDir != "" {
		opts = append(opts, config.OptDataDir(cfg.DataDir))
	}
	if cfg.CSVFile != "" {
		opts = append(opts, config.OptCSVFile(cfg.CSVFile))
	}
	if cfg.DatasetFile != "" {
		opts = append(opts, config.OptDatasetFile(cfg.DatasetFile))
	}
	if cfg.ResearchDir != "" {
		opts = append(opts, config.OptResearchDir(cfg.ResearchDir))
	}
	if cfg.FeaturedFile != "" {
		opts = append(opts, config.OptFeaturedFile(cfg.FeaturedFile))
	}
	return opts
}

// touchConfigFile checks if config file exists, and if not, it gets created.
func touchConfigFile(configPath string) {
	fileExists, _ := gnsys.FileExists(configPath)
	if fileExists {
		return
	}

	slog.Info("Creating config file", "path", configPath)
	createConfig(configPath)
}

// createConfig creates config file.
func createConfig(path string) {
	err := gnsys.MakeDir(filepath.Dir(path))
	if err != nil {
		slog.Error("Cannot create config dir", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(path, []byte(configText), 0644)
	if err != nil {
		slog.Error("Cannot write to config file", "error", err)
		os.Exit(1)
	}
}
