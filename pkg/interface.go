package pubdex

import (
	"github.com/pubdex/pubdex/internal/ent/build"
	"github.com/pubdex/pubdex/internal/ent/merge"
)

// Pubdex is an interface for building and enriching the publications
// dataset.
type Pubdex interface {
	// Build converts the publications CSV into the canonical dataset.
	Build(build.Builder) error

	// Merge folds research findings into the canonical dataset.
	Merge(merge.Merger) error
}
