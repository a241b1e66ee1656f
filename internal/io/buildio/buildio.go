package buildio

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnsys"
	"github.com/pubdex/pubdex/internal/ent/build"
	"github.com/pubdex/pubdex/internal/ent/publication"
	"github.com/pubdex/pubdex/pkg/config"
)

// buildio is a struct that implements build.Builder interface.
type buildio struct {
	cfg config.Config
}

// New returns a new instance of Builder.
func New(cfg config.Config) (build.Builder, error) {
	res := buildio{cfg: cfg}

	err := gnsys.MakeDir(filepath.Dir(cfg.DatasetFile))
	if err != nil {
		slog.Error("Cannot create dataset directory", "error", err)
		return nil, err
	}
	return &res, nil
}

// Build reads the publications CSV, normalizes its rows into canonical
// records and persists the assembled dataset.
func (b *buildio) Build() error {
	recs, err := b.readRecords()
	if err != nil {
		slog.Error("Cannot read publications", "error", err, "file", b.cfg.CSVFile)
		return err
	}

	ds := assemble(recs)

	if err = saveDataset(b.cfg.DatasetFile, ds); err != nil {
		slog.Error("Cannot save dataset", "error", err, "file", b.cfg.DatasetFile)
		return err
	}

	b.summary(ds)
	return nil
}

func (b *buildio) summary(ds publication.Dataset) {
	md := ds.Metadata
	fmt.Printf(
		"Generated %s with %s publications\n",
		filepath.Base(b.cfg.DatasetFile),
		humanize.Comma(int64(md.TotalCount)),
	)
	fmt.Printf("Active: %d, Ceased: %d\n", md.ActiveCount, md.CeasedCount)
	fmt.Printf(
		"Cities: %d, Decades: %d, Formats: %d\n",
		len(md.Cities), len(md.Decades), len(md.Formats),
	)
}
