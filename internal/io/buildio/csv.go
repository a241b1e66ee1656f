package buildio

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pubdex/pubdex/internal/ent/publication"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column headers of the publications CSV.
const (
	colID               = "ID"
	colName             = "Publication"
	colAlternateName    = "Alternate Name"
	colCity             = "Location (City)"
	colPublishers       = "Owners/Publishers"
	colYearFounded      = "Year founded"
	colYearCeased       = "Year ceased"
	colFrequency        = "Frequency of publication"
	colFormat           = "Format"
	colLanguages        = "Languages published"
	colArchiveURL       = "Archive/Call Number"
	colWebsiteURL       = "Website/Archive"
	colTargetAudience   = "HMerge:Target audience"
	colPrimaryFocus     = "Primary focus/Content areas"
	colMedium           = "Medium/Distribution method (e.g. Print, Digital)"
	colMissionStatement = "Mission statement or editorial philosophy"
	colKeyStaff         = "Key staff members"
	colHistoricalNotes  = "Historical notes + impact"
)

// row gives uniform access to one CSV row by column header. Missing
// columns, short rows and blank cells all read as empty strings.
type row struct {
	cols  map[string]int
	cells []string
}

func (r row) get(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// optional returns the trimmed cell value, nil when blank.
func (r row) optional(col string) *string {
	v := r.get(col)
	if v == "" {
		return nil
	}
	return &v
}

func (b *buildio) openCSV() (*csv.Reader, *os.File, error) {
	f, err := os.Open(b.cfg.CSVFile)
	if err != nil {
		return nil, nil, err
	}
	// spreadsheet exports often start with a UTF-8 byte-order marker
	bomless := transform.NewReader(
		f, unicode.BOMOverride(unicode.UTF8.NewDecoder()),
	)
	r := csv.NewReader(bomless)
	r.FieldsPerRecord = -1
	return r, f, nil
}

func (b *buildio) readRecords() ([]publication.Publication, error) {
	r, f, err := b.openCSV()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := r.Read()
	if err != nil {
		slog.Error("Cannot read CSV header", "error", err)
		return nil, err
	}
	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var res []publication.Publication
	for {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Error("Cannot read CSV row", "error", err)
			return nil, err
		}
		rec, ok := b.buildRecord(row{cols: cols, cells: cells})
		if !ok {
			continue
		}
		res = append(res, rec)
	}
	return res, nil
}
