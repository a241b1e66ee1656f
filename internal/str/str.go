// Package str provides string normalization helpers for raw
// publication fields.
package str

import (
	"regexp"
	"strconv"
	"strings"
)

var yearRx = regexp.MustCompile(`\d{4}`)

// Markers that indicate a digital component in medium or format text.
var digitalMarkers = []string{"online", "digital", "website", "multimedia"}

// ParseYear extracts a year from free-form text. It returns nil for
// empty strings and for the "?" and "Unknown" sentinels; otherwise the
// first run of 4 consecutive digits wins.
func ParseYear(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "?" || trimmed == "Unknown" {
		return nil
	}
	match := yearRx.FindString(s)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

// Decade converts a founding year into its decade bucket, for example
// 1987 becomes "1980s". A nil year becomes "Unknown".
func Decade(year *int) string {
	if year == nil {
		return "Unknown"
	}
	return strconv.Itoa((*year/10)*10) + "s"
}

// Medium classifies a publication as "Print", "Digital", or
// "Print/Digital" from its medium and format descriptions. Digital
// markers are searched in both texts, "print" only in the medium text.
// No signal at all defaults to "Print".
func Medium(mediumText, formatText string) string {
	medium := strings.ToLower(mediumText)
	format := strings.ToLower(formatText)

	var hasDigital bool
	for _, marker := range digitalMarkers {
		if strings.Contains(medium, marker) || strings.Contains(format, marker) {
			hasDigital = true
			break
		}
	}
	hasPrint := strings.Contains(medium, "print")

	switch {
	case hasDigital && hasPrint:
		return "Print/Digital"
	case hasDigital:
		return "Digital"
	default:
		return "Print"
	}
}

// Featured reports whether a publication name matches one of the given
// titles. The match is case-insensitive fuzzy containment in either
// direction, so abbreviated and expanded forms of the same title match.
func Featured(name string, titles []string) bool {
	if name == "" {
		return false
	}
	nameClean := strings.ToLower(strings.TrimSpace(name))
	for _, title := range titles {
		titleLower := strings.ToLower(title)
		if strings.Contains(nameClean, titleLower) ||
			strings.Contains(titleLower, nameClean) {
			return true
		}
	}
	return false
}
