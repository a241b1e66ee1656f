package mergeio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gnames/gnfmt"
	"github.com/pubdex/pubdex/internal/ent/publication"
)

// findingsDoc is the wrapper shape some research sources use instead
// of a bare array.
type findingsDoc struct {
	Findings []publication.Finding `json:"findings"`
}

// researchFiles returns the JSON files of the research directory in
// sorted filename order. A missing directory yields no files.
func (m *mergeio) researchFiles() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(m.cfg.ResearchDir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// loadFindings decodes one research file, either a bare array of
// findings or an object with a "findings" key. Malformed files abort
// the whole merge.
func loadFindings(path string) ([]publication.Finding, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	enc := gnfmt.GNjson{}
	var res []publication.Finding
	if err = enc.Decode(bs, &res); err == nil {
		return res, nil
	}

	var doc findingsDoc
	if err = enc.Decode(bs, &doc); err != nil {
		return nil, fmt.Errorf(
			"cannot parse research file %s: %w", filepath.Base(path), err,
		)
	}
	return doc.Findings, nil
}

// loadDataset reads the persisted canonical dataset.
func (m *mergeio) loadDataset() (*publication.Dataset, error) {
	bs, err := os.ReadFile(m.cfg.DatasetFile)
	if err != nil {
		return nil, err
	}

	enc := gnfmt.GNjson{}
	var ds publication.Dataset
	if err = enc.Decode(bs, &ds); err != nil {
		return nil, fmt.Errorf("cannot parse dataset: %w", err)
	}
	return &ds, nil
}

// saveDataset overwrites the canonical dataset file in full, through a
// temp file in the same directory.
func (m *mergeio) saveDataset(ds publication.Dataset) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(ds)
	if err != nil {
		return err
	}

	path := m.cfg.DatasetFile
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(bs); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
