// Package publication defines the canonical record set of the
// publications dataset and the research findings that enrich it.
package publication

// Medium values derived for every publication.
const (
	MediumPrint        = "Print"
	MediumDigital      = "Digital"
	MediumPrintDigital = "Print/Digital"
)

// Publication is one canonical record of the dataset. Optional text
// fields are nil when the source left them blank. Medium, Decade,
// IsActive and the featured flags are derived during the build stage
// and are always present.
type Publication struct {
	// ID is the stable identity of the record, assigned from the
	// source row and never regenerated.
	ID int `json:"id"`

	// Name is the publication title. Rows without it produce no record.
	Name string `json:"name"`

	AlternateName *string `json:"alternateName"`
	City          *string `json:"city"`
	Publishers    *string `json:"publishers"`

	// YearFounded and YearCeased are extracted from free-text year
	// fields and nil when no 4-digit year is present.
	YearFounded *int `json:"yearFounded"`
	YearCeased  *int `json:"yearCeased"`

	Frequency *string `json:"frequency"`
	Format    *string `json:"format"`

	// Languages defaults to "English" when the source field is blank.
	Languages string `json:"languages"`

	ArchiveURL     *string `json:"archiveUrl"`
	WebsiteURL     *string `json:"websiteUrl"`
	TargetAudience *string `json:"targetAudience"`
	PrimaryFocus   *string `json:"primaryFocus"`

	// Medium is one of the Medium constants above.
	Medium string `json:"medium"`

	MissionStatement *string `json:"missionStatement"`
	KeyStaff         *string `json:"keyStaff"`
	HistoricalNotes  *string `json:"historicalNotes"`

	// IsActive is false when the raw ceased-year text carried any
	// value other than blank or "?", even an unparseable one.
	IsActive bool `json:"isActive"`

	// Decade is "YYYY0s" from YearFounded, or "Unknown".
	Decade string `json:"decade"`

	IsFeaturedHistoric     bool `json:"isFeaturedHistoric"`
	IsFeaturedContemporary bool `json:"isFeaturedContemporary"`
}

// Metadata holds collection-level aggregates over the publications.
type Metadata struct {
	TotalCount int `json:"totalCount"`

	// Cities and Formats hold the distinct non-empty values present in
	// the records, sorted lexicographically. Decades holds the decade
	// buckets excluding "Unknown", sorted by numeric decade.
	Cities  []string `json:"cities"`
	Decades []string `json:"decades"`
	Formats []string `json:"formats"`

	ActiveCount int `json:"activeCount"`
	CeasedCount int `json:"ceasedCount"`
}

// Dataset is the persisted source of truth between pipeline stages.
// Publications are sorted ascending by ID.
type Dataset struct {
	Metadata     Metadata      `json:"metadata"`
	Publications []Publication `json:"publications"`
}

// Finding is a sparse partial record supplied by a research source.
// Only the ID is required; every other field contributes a value only
// when the matching record's field is still empty.
type Finding struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`

	ArchiveURL       *string `json:"archiveUrl"`
	WebsiteURL       *string `json:"websiteUrl"`
	MissionStatement *string `json:"missionStatement"`
	HistoricalNotes  *string `json:"historicalNotes"`
	PrimaryFocus     *string `json:"primaryFocus"`
	TargetAudience   *string `json:"targetAudience"`
	KeyStaff         *string `json:"keyStaff"`
	AlternateName    *string `json:"alternateName"`
	Frequency        *string `json:"frequency"`
	Format           *string `json:"format"`
	Languages        *string `json:"languages"`
}

// FillableFields is the fixed set of fields eligible for gap-filling
// during merge, in reporting order.
var FillableFields = []string{
	"archiveUrl",
	"websiteUrl",
	"missionStatement",
	"historicalNotes",
	"primaryFocus",
	"targetAudience",
	"keyStaff",
	"alternateName",
	"frequency",
	"format",
	"languages",
}

// value returns the finding's value for a fillable field, nil when the
// finding does not provide one.
func (f Finding) value(field string) *string {
	switch field {
	case "archiveUrl":
		return f.ArchiveURL
	case "websiteUrl":
		return f.WebsiteURL
	case "missionStatement":
		return f.MissionStatement
	case "historicalNotes":
		return f.HistoricalNotes
	case "primaryFocus":
		return f.PrimaryFocus
	case "targetAudience":
		return f.TargetAudience
	case "keyStaff":
		return f.KeyStaff
	case "alternateName":
		return f.AlternateName
	case "frequency":
		return f.Frequency
	case "format":
		return f.Format
	case "languages":
		return f.Languages
	}
	return nil
}

// setIfEmpty writes v into the named field when the current value is
// nil or empty. It reports whether the field changed.
func (p *Publication) setIfEmpty(field, v string) bool {
	fill := func(dst **string) bool {
		if *dst != nil && **dst != "" {
			return false
		}
		val := v
		*dst = &val
		return true
	}
	switch field {
	case "archiveUrl":
		return fill(&p.ArchiveURL)
	case "websiteUrl":
		return fill(&p.WebsiteURL)
	case "missionStatement":
		return fill(&p.MissionStatement)
	case "historicalNotes":
		return fill(&p.HistoricalNotes)
	case "primaryFocus":
		return fill(&p.PrimaryFocus)
	case "targetAudience":
		return fill(&p.TargetAudience)
	case "keyStaff":
		return fill(&p.KeyStaff)
	case "alternateName":
		return fill(&p.AlternateName)
	case "frequency":
		return fill(&p.Frequency)
	case "format":
		return fill(&p.Format)
	case "languages":
		if p.Languages != "" {
			return false
		}
		p.Languages = v
		return true
	}
	return false
}

// Fill copies the finding's values into currently-empty fields of the
// record. Populated fields are never overwritten. It returns the names
// of the fields that changed, in FillableFields order.
func (p *Publication) Fill(f Finding) []string {
	var filled []string
	for _, field := range FillableFields {
		v := f.value(field)
		if v == nil || *v == "" {
			continue
		}
		if p.setIfEmpty(field, *v) {
			filled = append(filled, field)
		}
	}
	return filled
}
