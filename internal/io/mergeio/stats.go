package mergeio

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
)

// stats collects the update events of one merge run for the final
// report.
type stats struct {
	updated     int
	fieldCounts map[string]int
}

func newStats() *stats {
	return &stats{fieldCounts: make(map[string]int)}
}

// add records one updated publication and its filled fields.
func (s *stats) add(filled []string) {
	s.updated++
	for _, field := range filled {
		s.fieldCounts[field]++
	}
}

// report prints the aggregate fill counts, most-filled fields first.
func (s *stats) report() {
	fmt.Printf(
		"\nTotal publications updated: %s\n",
		humanize.Comma(int64(s.updated)),
	)
	fmt.Println("Fields filled:")

	fields := make([]string, 0, len(s.fieldCounts))
	for field := range s.fieldCounts {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		if s.fieldCounts[fields[i]] != s.fieldCounts[fields[j]] {
			return s.fieldCounts[fields[i]] > s.fieldCounts[fields[j]]
		}
		return fields[i] < fields[j]
	})
	for _, field := range fields {
		fmt.Printf("  %s: %d\n", field, s.fieldCounts[field])
	}
}
