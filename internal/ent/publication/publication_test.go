package publication_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pubdex/pubdex/internal/ent/publication"
)

func strPtr(s string) *string { return &s }

var _ = Describe("Fill", func() {
	It("fills empty fields and reports them in fixed order", func() {
		p := publication.Publication{ID: 1, Name: "The Echo", Languages: "English"}
		f := publication.Finding{
			ID:         1,
			KeyStaff:   strPtr("J. Smith, editor"),
			WebsiteURL: strPtr("http://b.example"),
		}

		filled := p.Fill(f)

		Expect(filled).To(Equal([]string{"websiteUrl", "keyStaff"}))
		Expect(*p.WebsiteURL).To(Equal("http://b.example"))
		Expect(*p.KeyStaff).To(Equal("J. Smith, editor"))
	})

	It("never overwrites populated fields", func() {
		p := publication.Publication{
			ID:         1,
			Name:       "The Echo",
			WebsiteURL: strPtr("http://a.example"),
		}
		f := publication.Finding{ID: 1, WebsiteURL: strPtr("http://b.example")}

		filled := p.Fill(f)

		Expect(filled).To(BeEmpty())
		Expect(*p.WebsiteURL).To(Equal("http://a.example"))
	})

	It("is idempotent", func() {
		p := publication.Publication{ID: 1, Name: "The Echo"}
		f := publication.Finding{ID: 1, Frequency: strPtr("Weekly")}

		Expect(p.Fill(f)).To(Equal([]string{"frequency"}))
		Expect(p.Fill(f)).To(BeEmpty())
		Expect(*p.Frequency).To(Equal("Weekly"))
	})

	It("ignores empty finding values", func() {
		p := publication.Publication{ID: 1, Name: "The Echo"}
		f := publication.Finding{ID: 1, Format: strPtr(""), KeyStaff: nil}

		Expect(p.Fill(f)).To(BeEmpty())
		Expect(p.Format).To(BeNil())
	})

	It("treats languages like any other fillable field", func() {
		p := publication.Publication{ID: 1, Name: "The Echo", Languages: "English"}
		f := publication.Finding{ID: 1, Languages: strPtr("English, Spanish")}

		Expect(p.Fill(f)).To(BeEmpty())
		Expect(p.Languages).To(Equal("English"))

		p.Languages = ""
		Expect(p.Fill(f)).To(Equal([]string{"languages"}))
		Expect(p.Languages).To(Equal("English, Spanish"))
	})

	It("leaves non-fillable fields untouched", func() {
		p := publication.Publication{
			ID:       1,
			Name:     "The Echo",
			IsActive: true,
			Decade:   "1930s",
		}
		name := "A Different Name"
		f := publication.Finding{ID: 1, Name: &name}

		Expect(p.Fill(f)).To(BeEmpty())
		Expect(p.Name).To(Equal("The Echo"))
		Expect(p.IsActive).To(BeTrue())
		Expect(p.Decade).To(Equal("1930s"))
	})
})
