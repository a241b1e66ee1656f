package buildio

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/pubdex/pubdex/internal/ent/publication"
)

// vocab accumulates the distinct city, decade and format values and
// the active count during a single pass over the records.
type vocab struct {
	cities  map[string]struct{}
	decades map[string]struct{}
	formats map[string]struct{}
	active  int
}

func newVocab() *vocab {
	return &vocab{
		cities:  make(map[string]struct{}),
		decades: make(map[string]struct{}),
		formats: make(map[string]struct{}),
	}
}

func (v *vocab) add(p publication.Publication) {
	if p.City != nil {
		v.cities[*p.City] = struct{}{}
	}
	if p.Decade != "Unknown" {
		v.decades[p.Decade] = struct{}{}
	}
	if p.Format != nil {
		v.formats[*p.Format] = struct{}{}
	}
	if p.IsActive {
		v.active++
	}
}

// assemble sorts the records by ID and folds them into the canonical
// dataset with its aggregate metadata.
func assemble(recs []publication.Publication) publication.Dataset {
	if recs == nil {
		recs = []publication.Publication{}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	acc := newVocab()
	for _, p := range recs {
		acc.add(p)
	}

	return publication.Dataset{
		Metadata: publication.Metadata{
			TotalCount:  len(recs),
			Cities:      sortedValues(acc.cities),
			Decades:     sortedDecades(acc.decades),
			Formats:     sortedValues(acc.formats),
			ActiveCount: acc.active,
			CeasedCount: len(recs) - acc.active,
		},
		Publications: recs,
	}
}

func sortedValues(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

// sortedDecades orders decade buckets by their numeric decade.
// "Unknown" never enters the set, but the rank function keeps it last
// should that exclusion ever be relaxed.
func sortedDecades(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool {
		return decadeRank(res[i]) < decadeRank(res[j])
	})
	return res
}

func decadeRank(decade string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(decade, "s"))
	if err != nil {
		return math.MaxInt
	}
	return n
}

// saveDataset rewrites the canonical dataset file in full. The temp
// file lands in the same directory so the final rename cannot leave a
// partial file behind.
func saveDataset(path string, ds publication.Dataset) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(ds)
	if err != nil {
		return err
	}

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
