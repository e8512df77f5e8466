package render

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/edgard/tmdbot/internal/tmdb"
)

// regionalIndicatorA is U+1F1E6, the regional indicator symbol for "A".
const regionalIndicatorA = 0x1F1E6

// Flag returns the emoji flag for an ISO 3166-1 country code, or "" when the
// code does not name a country.
func Flag(code string) string {
	region, err := language.ParseRegion(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil || !region.IsCountry() {
		return ""
	}
	iso := region.String()
	if len(iso) != 2 {
		return ""
	}

	var b strings.Builder
	for _, r := range iso {
		b.WriteRune(regionalIndicatorA + (r - 'A'))
	}
	return b.String()
}

// Flags renders one flag per production country, space separated, skipping
// codes that are not countries.
func Flags(countries []tmdb.Country) string {
	flags := make([]string, 0, len(countries))
	for _, c := range countries {
		if f := Flag(c.ISO3166_1); f != "" {
			flags = append(flags, f)
		}
	}
	return strings.Join(flags, " ")
}
