package pubdex

import (
	"github.com/pubdex/pubdex/internal/ent/build"
	"github.com/pubdex/pubdex/internal/ent/merge"
	"github.com/pubdex/pubdex/pkg/config"
)

// pubdex is an implementation of Pubdex interface.
type pubdex struct {
	cfg config.Config
}

// New creates a new instance of Pubdex.
func New(
	cfg config.Config,
) Pubdex {
	res := pubdex{
		cfg: cfg}
	return &res
}

// Build converts the publications CSV into the canonical dataset.
func (p *pubdex) Build(b build.Builder) error {
	return b.Build()
}

// Merge folds research findings into the canonical dataset.
func (p *pubdex) Merge(m merge.Merger) error {
	return m.Merge()
}
