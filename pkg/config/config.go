package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

var (
	featuredHistoricAry = []string{
		"The Sentinel", "New Jersey Trumpet", "The New Jersey Guardian",
		"Newark Herald", "Black Newark", "Unity and Struggle", "The Black Voice",
		"Black Women's United Front Newsletter", "The Echo",
		"New Jersey Afro-American",
	}
	featuredContemporaryAry = []string{
		"Trenton Journal", "New Jersey Urban News", "NJ Urban News",
		"Ark Republic", "The Nubian News", "Black In Jersey",
	}
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// DataDir is the directory holding the CSV source, the canonical
	// dataset and the research findings.
	DataDir string

	// CSVFile is the path of the publications CSV source.
	CSVFile string

	// DatasetFile is the path of the canonical dataset JSON file.
	DatasetFile string

	// ResearchDir is the directory scanned for research finding files.
	ResearchDir string

	// IndexDir is the directory of the key-value ID index used by the
	// merge stage.
	IndexDir string

	// FeaturedFile is an optional YAML file overriding the built-in
	// featured publication lists.
	FeaturedFile string

	// FeaturedHistoric is the list of historic publications highlighted
	// by the site.
	FeaturedHistoric []string

	// FeaturedContemporary is the list of currently publishing
	// publications highlighted by the site.
	FeaturedContemporary []string
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptDataDir sets the directory for dataset, CSV and research files.
func OptDataDir(d string) Option {
	return func(cfg *Config) {
		cfg.DataDir = d
	}
}

// OptCSVFile sets the path of the publications CSV source.
func OptCSVFile(f string) Option {
	return func(cfg *Config) {
		cfg.CSVFile = f
	}
}

// OptDatasetFile sets the path of the canonical dataset file.
func OptDatasetFile(f string) Option {
	return func(cfg *Config) {
		cfg.DatasetFile = f
	}
}

// OptResearchDir sets the directory with research finding files.
func OptResearchDir(d string) Option {
	return func(cfg *Config) {
		cfg.ResearchDir = d
	}
}

// OptFeaturedFile sets a YAML file overriding the featured lists.
func OptFeaturedFile(f string) Option {
	return func(cfg *Config) {
		cfg.FeaturedFile = f
	}
}

func New(opts ...Option) Config {
	res := Config{
		FeaturedHistoric:     featuredHistoricAry,
		FeaturedContemporary: featuredContemporaryAry,
	}

	for _, opt := range opts {
		opt(&res)
	}

	if res.DataDir == "" {
		dataDir, err := os.UserCacheDir()
		if err != nil {
			dataDir = os.TempDir()
		}
		res.DataDir = filepath.Join(dataDir, "pubdex")
	}
	res.DataDir = expandHome(res.DataDir)

	if res.CSVFile == "" {
		res.CSVFile = filepath.Join(res.DataDir, "publications.csv")
	}
	if res.DatasetFile == "" {
		res.DatasetFile = filepath.Join(res.DataDir, "publications.json")
	}
	if res.ResearchDir == "" {
		res.ResearchDir = filepath.Join(res.DataDir, "research")
	}
	if res.IndexDir == "" {
		res.IndexDir = filepath.Join(res.DataDir, "index")
	}
	res.CSVFile = expandHome(res.CSVFile)
	res.DatasetFile = expandHome(res.DatasetFile)
	res.ResearchDir = expandHome(res.ResearchDir)
	res.FeaturedFile = expandHome(res.FeaturedFile)

	return res
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path
	}
	home, err := homedir.Dir()
	if err != nil {
		slog.Error("Cannot find home directory", "error", err)
		os.Exit(1)
	}
	return filepath.Join(home, path[2:])
}
