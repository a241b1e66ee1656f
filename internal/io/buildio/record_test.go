package buildio

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pubdex/pubdex/pkg/config"
)

// makeRow builds a row from header/value pairs the way readRecords
// does from a CSV line.
func makeRow(vals map[string]string) row {
	cols := make(map[string]int)
	cells := make([]string, 0, len(vals))
	for col, v := range vals {
		cols[col] = len(cells)
		cells = append(cells, v)
	}
	return row{cols: cols, cells: cells}
}

var _ = Describe("buildRecord", func() {
	b := &buildio{cfg: config.New()}

	It("builds a full record from a row", func() {
		rec, ok := b.buildRecord(makeRow(map[string]string{
			colID:          "12",
			colName:        "  Jersey City Times ",
			colCity:        "Jersey City",
			colYearFounded: "1950",
			colYearCeased:  "",
			colFormat:      "Newspaper",
			colMedium:      "Print",
			colLanguages:   "",
		}))

		Expect(ok).To(BeTrue())
		Expect(rec.ID).To(Equal(12))
		Expect(rec.Name).To(Equal("Jersey City Times"))
		Expect(*rec.City).To(Equal("Jersey City"))
		Expect(*rec.YearFounded).To(Equal(1950))
		Expect(rec.YearCeased).To(BeNil())
		Expect(rec.Languages).To(Equal("English"))
		Expect(rec.Medium).To(Equal("Print"))
		Expect(rec.Decade).To(Equal("1950s"))
		Expect(rec.IsActive).To(BeTrue())
		Expect(rec.IsFeaturedHistoric).To(BeFalse())
		Expect(rec.IsFeaturedContemporary).To(BeFalse())
	})

	It("skips rows without a usable ID", func() {
		_, ok := b.buildRecord(makeRow(map[string]string{
			colID:   "",
			colName: "No Identity Gazette",
		}))
		Expect(ok).To(BeFalse())

		_, ok = b.buildRecord(makeRow(map[string]string{
			colID:   "abc",
			colName: "No Identity Gazette",
		}))
		Expect(ok).To(BeFalse())

		_, ok = b.buildRecord(makeRow(map[string]string{
			colID:   "-3",
			colName: "No Identity Gazette",
		}))
		Expect(ok).To(BeFalse())
	})

	It("skips rows without a name", func() {
		_, ok := b.buildRecord(makeRow(map[string]string{
			colID:   "7",
			colName: "   ",
		}))
		Expect(ok).To(BeFalse())
	})

	It("turns blank optional fields into nil", func() {
		rec, ok := b.buildRecord(makeRow(map[string]string{
			colID:         "3",
			colName:       "Jersey City Times",
			colCity:       "  ",
			colPublishers: "",
		}))

		Expect(ok).To(BeTrue())
		Expect(rec.City).To(BeNil())
		Expect(rec.Publishers).To(BeNil())
		Expect(rec.Format).To(BeNil())
	})

	It("derives activity from the raw ceased-year text", func() {
		active := func(ceased string) bool {
			rec, ok := b.buildRecord(makeRow(map[string]string{
				colID:         "3",
				colName:       "Jersey City Times",
				colYearCeased: ceased,
			}))
			Expect(ok).To(BeTrue())
			return rec.IsActive
		}

		Expect(active("")).To(BeTrue())
		Expect(active("?")).To(BeTrue())
		Expect(active("1999")).To(BeFalse())
		// ceased with an unknown year is still ceased
		Expect(active("Unknown")).To(BeFalse())
		Expect(active("sometime in the 80s")).To(BeFalse())
	})

	It("parses the ceased year independently of activity", func() {
		rec, ok := b.buildRecord(makeRow(map[string]string{
			colID:         "3",
			colName:       "Jersey City Times",
			colYearCeased: "ceased by 1999 at the latest",
		}))

		Expect(ok).To(BeTrue())
		Expect(*rec.YearCeased).To(Equal(1999))
		Expect(rec.IsActive).To(BeFalse())
	})

	It("flags featured publications through fuzzy matching", func() {
		rec, ok := b.buildRecord(makeRow(map[string]string{
			colID:   "5",
			colName: "The Echo",
		}))

		Expect(ok).To(BeTrue())
		Expect(rec.IsFeaturedHistoric).To(BeTrue())
		Expect(rec.IsFeaturedContemporary).To(BeFalse())
	})

	It("classifies mixed medium from medium and format text", func() {
		rec, ok := b.buildRecord(makeRow(map[string]string{
			colID:     "6",
			colName:   "Jersey City Times",
			colMedium: "Print",
			colFormat: "Newspaper and website",
		}))

		Expect(ok).To(BeTrue())
		Expect(rec.Medium).To(Equal("Print/Digital"))
	})
})
