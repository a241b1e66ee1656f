package mergeio

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/pubdex/pubdex/internal/ent/kv"
	"github.com/pubdex/pubdex/internal/ent/merge"
	"github.com/pubdex/pubdex/internal/ent/publication"
	"github.com/pubdex/pubdex/pkg/config"
)

// mergeio is a struct that implements merge.Merger interface.
type mergeio struct {
	cfg config.Config
	idx kv.KeyVal
}

// New returns a new instance of Merger.
func New(cfg config.Config, idx kv.KeyVal) (merge.Merger, error) {
	res := mergeio{cfg: cfg, idx: idx}

	exists, err := gnsys.FileExists(cfg.DatasetFile)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = fmt.Errorf("dataset file %s does not exist", cfg.DatasetFile)
		slog.Error("Cannot find dataset, run build first", "error", err)
		return nil, err
	}
	return &res, nil
}

// Merge folds research findings into the canonical dataset. Findings
// only fill currently-empty fields; the first source in sorted
// filename order wins each gap.
func (m *mergeio) Merge() error {
	ds, err := m.loadDataset()
	if err != nil {
		slog.Error("Cannot load dataset", "error", err, "file", m.cfg.DatasetFile)
		return err
	}

	files, err := m.researchFiles()
	if err != nil {
		slog.Error("Cannot scan research directory", "error", err)
		return err
	}
	fmt.Printf("Found %d research files\n", len(files))

	if err = m.indexPublications(ds); err != nil {
		slog.Error("Cannot index publications", "error", err)
		return err
	}
	defer m.idx.Close()

	st := newStats()
	for _, path := range files {
		var findings []publication.Finding
		findings, err = loadFindings(path)
		if err != nil {
			slog.Error("Cannot load research file", "error", err, "file", path)
			return err
		}
		for _, fd := range findings {
			m.applyFinding(ds, fd, st)
		}
	}

	recount(ds)

	if err = m.saveDataset(*ds); err != nil {
		slog.Error("Cannot save dataset", "error", err, "file", m.cfg.DatasetFile)
		return err
	}

	st.report()
	return nil
}

// applyFinding resolves one finding against the ID index and fills the
// gaps of its record. Findings without a matching record are expected
// and skipped without a report.
func (m *mergeio) applyFinding(
	ds *publication.Dataset,
	fd publication.Finding,
	st *stats,
) {
	if fd.ID == 0 {
		return
	}
	pos, ok := m.lookup(fd.ID)
	if !ok {
		return
	}

	filled := ds.Publications[pos].Fill(fd)
	if len(filled) == 0 {
		return
	}
	st.add(filled)

	name := "?"
	if fd.Name != nil {
		name = *fd.Name
	}
	fmt.Printf("  Updated ID %d (%s): %s\n", fd.ID, name, strings.Join(filled, ", "))

	for _, field := range filled {
		// format and languages feed the vocabulary sets during build;
		// merged values leave those sets as they were
		if field == "format" || field == "languages" {
			slog.Debug(
				"Merged field does not join vocabulary metadata",
				"field", field, "id", fd.ID,
			)
		}
	}
}

// recount refreshes the active and ceased counts over the full record
// set. The city, decade and format vocabularies stay as built.
func recount(ds *publication.Dataset) {
	var active int
	for _, p := range ds.Publications {
		if p.IsActive {
			active++
		}
	}
	ds.Metadata.ActiveCount = active
	ds.Metadata.CeasedCount = len(ds.Publications) - active
}
