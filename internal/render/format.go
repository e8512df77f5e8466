package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edgard/tmdbot/internal/tmdb"
)

const castLimit = 10

// FormatTV renders a TV show card body. It only reads its arguments.
func FormatTV(stub tmdb.SearchResult, d *tmdb.TV) string {
	if d == nil {
		d = &tmdb.TV{}
	}

	var b strings.Builder
	writeImage(&b, stub)
	writeHeading(&b, stub.DisplayTitle(), d.ProductionCountries)

	fmt.Fprintf(&b, "*Original title*: [%s](%s/tv/%d)", firstNonEmpty(stub.OriginalName, stub.Name), siteURL, stub.ID)
	if d.FirstAirDate != "" {
		fmt.Fprintf(&b, " (%s - {%s})", d.FirstAirDate, firstNonEmpty(d.LastAirDate, "?"))
	}
	b.WriteString("\n")

	if len(d.CreatedBy) > 0 {
		creators := make([]personRef, 0, len(d.CreatedBy))
		for _, c := range d.CreatedBy {
			creators = append(creators, personRef{id: c.ID, name: c.Name})
		}
		b.WriteString("*Created by*: " + joinLinks(creators) + "\n")
	}
	if d.NumberOfSeasons > 0 {
		b.WriteString("*Seasons*: " + strconv.Itoa(d.NumberOfSeasons) + "\n")
	}
	if d.NumberOfEpisodes > 0 {
		b.WriteString("*Episodes*: " + strconv.Itoa(d.NumberOfEpisodes) + "\n")
	}

	b.WriteString("\n" + escapeMarkdown(stub.Overview))
	return b.String()
}

// FormatMovie renders a movie card body. It only reads its arguments.
func FormatMovie(stub tmdb.SearchResult, d *tmdb.Movie) string {
	if d == nil {
		d = &tmdb.Movie{}
	}

	title := firstNonEmpty(stub.Title, stub.Name)

	var b strings.Builder
	writeImage(&b, stub)
	writeHeading(&b, title, d.ProductionCountries)

	fmt.Fprintf(&b, "*Original title*: [%s](%s/movie/%d)", firstNonEmpty(stub.OriginalTitle, title), siteURL, stub.ID)
	if year := releaseYear(d.ReleaseDate); year != "" {
		b.WriteString(" (" + year + ")")
	}
	b.WriteString("\n")

	if d.Runtime > 0 {
		b.WriteString("*Runtime*: " + strconv.Itoa(d.Runtime) + "mins\n")
	}

	if d.Credits != nil {
		b.WriteString("*Directed by*: " + joinLinks(directors(d.Credits.Crew)) + "\n")
		b.WriteString("*Story by*: " + joinLinks(writers(d.Credits.Crew)) + "\n")
		b.WriteString("\n")
		b.WriteString("*Cast*: " + joinLinks(billedCast(d.Credits.Cast)) + "\n")
		b.WriteString("\n")
	}

	b.WriteString("*Other sites:* [Letterboxd](" + letterboxdURL + strconv.Itoa(stub.ID) + ")")
	if d.IMDbID != "" {
		b.WriteString(", [IMDb](" + imdbURL + "title/" + d.IMDbID + ")")
	}
	b.WriteString("\n")

	b.WriteString("\n" + escapeMarkdown(stub.Overview))
	return b.String()
}

// FormatPerson renders a person card body. It only reads its arguments.
func FormatPerson(stub tmdb.SearchResult, d *tmdb.Person) string {
	if d == nil {
		d = &tmdb.Person{}
	}

	var b strings.Builder
	writeImage(&b, stub)
	b.WriteString("*" + stub.DisplayTitle() + "*\n\n")
	b.WriteString("[TMDB page](" + siteURL + "/person/" + strconv.Itoa(stub.ID) + ")\n\n")

	if d.Birthday != "" {
		b.WriteString("*Birth:* " + d.Birthday)
		if d.PlaceOfBirth != "" {
			b.WriteString(" (" + d.PlaceOfBirth + ")")
		}
		b.WriteString("\n")
	}
	if d.Deathday != "" {
		b.WriteString("*Death:* " + d.Deathday + "\n")
	}
	if d.IMDbID != "" {
		b.WriteString("Other sites: [IMDb](" + imdbURL + "name/" + d.IMDbID + ")")
	}

	known := make([]string, 0, len(stub.KnownFor))
	for _, k := range stub.KnownFor {
		known = append(known, k.Label())
	}
	b.WriteString("\n*Known for:* " + strings.Join(known, ", "))
	return b.String()
}

func releaseYear(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

func directors(crew []tmdb.CrewMember) []personRef {
	var out []personRef
	for _, c := range crew {
		if c.Job == "Director" || c.Job == "Co-Director" {
			out = append(out, personRef{id: c.ID, name: c.Name})
		}
	}
	return out
}

func writers(crew []tmdb.CrewMember) []personRef {
	var out []personRef
	for _, c := range crew {
		if c.Department == "Writing" {
			out = append(out, personRef{id: c.ID, name: c.Name})
		}
	}
	return out
}

func billedCast(cast []tmdb.CastMember) []personRef {
	var out []personRef
	for _, c := range cast {
		if c.Order < castLimit {
			out = append(out, personRef{id: c.ID, name: c.Name})
		}
	}
	return out
}
