package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// featuredLists mirrors the YAML shape of a featured-lists file.
type featuredLists struct {
	Historic     []string `yaml:"historic"`
	Contemporary []string `yaml:"contemporary"`
}

// LoadFeatured replaces the built-in featured publication lists with
// the ones from FeaturedFile. Lists missing from the file keep their
// defaults.
func (cfg *Config) LoadFeatured() error {
	bs, err := os.ReadFile(cfg.FeaturedFile)
	if err != nil {
		return fmt.Errorf("cannot read featured lists: %w", err)
	}

	var lists featuredLists
	if err = yaml.Unmarshal(bs, &lists); err != nil {
		return fmt.Errorf("cannot parse featured lists: %w", err)
	}

	if len(lists.Historic) > 0 {
		cfg.FeaturedHistoric = lists.Historic
	}
	if len(lists.Contemporary) > 0 {
		cfg.FeaturedContemporary = lists.Contemporary
	}
	return nil
}
