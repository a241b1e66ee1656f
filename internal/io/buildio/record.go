package buildio

import (
	"strconv"

	"github.com/pubdex/pubdex/internal/ent/publication"
	"github.com/pubdex/pubdex/internal/str"
)

// buildRecord converts one CSV row into a canonical record. Rows
// without a usable ID or a name are skipped, they carry no identity to
// merge against later.
func (b *buildio) buildRecord(r row) (publication.Publication, bool) {
	idTxt := r.get(colID)
	id, err := strconv.Atoi(idTxt)
	if idTxt == "" || err != nil || id < 0 {
		return publication.Publication{}, false
	}

	name := r.get(colName)
	if name == "" {
		return publication.Publication{}, false
	}

	languages := r.get(colLanguages)
	if languages == "" {
		languages = "English"
	}

	yearFounded := str.ParseYear(r.get(colYearFounded))
	yearCeasedRaw := r.get(colYearCeased)

	res := publication.Publication{
		ID:               id,
		Name:             name,
		AlternateName:    r.optional(colAlternateName),
		City:             r.optional(colCity),
		Publishers:       r.optional(colPublishers),
		YearFounded:      yearFounded,
		YearCeased:       str.ParseYear(yearCeasedRaw),
		Frequency:        r.optional(colFrequency),
		Format:           r.optional(colFormat),
		Languages:        languages,
		ArchiveURL:       r.optional(colArchiveURL),
		WebsiteURL:       r.optional(colWebsiteURL),
		TargetAudience:   r.optional(colTargetAudience),
		PrimaryFocus:     r.optional(colPrimaryFocus),
		Medium:           str.Medium(r.get(colMedium), r.get(colFormat)),
		MissionStatement: r.optional(colMissionStatement),
		KeyStaff:         r.optional(colKeyStaff),
		HistoricalNotes:  r.optional(colHistoricalNotes),

		// Activity follows the raw ceased-year text, not the parsed
		// year. "Unknown" or other unparseable text still means the
		// publication ceased at some point.
		IsActive: yearCeasedRaw == "" || yearCeasedRaw == "?",

		Decade:                 str.Decade(yearFounded),
		IsFeaturedHistoric:     str.Featured(name, b.cfg.FeaturedHistoric),
		IsFeaturedContemporary: str.Featured(name, b.cfg.FeaturedContemporary),
	}
	return res, true
}
