package render

import (
	"strconv"
	"strings"

	"github.com/edgard/tmdbot/internal/tmdb"
)

const (
	siteURL       = "https://www.themoviedb.org"
	letterboxdURL = "http://letterboxd.com/tmdb/"
	imdbURL       = "https://www.imdb.com/"

	// Two zero-width non-joiners give the link a label Telegram accepts but
	// does not display, so only the preview image shows.
	hiddenLabel = "\u200c\u200c"
)

var legacyMarkdownEscapes = map[byte]bool{
	'_': true,
	'*': true,
	'`': true,
	'[': true,
}

// escapeMarkdown backslash-escapes the characters that open an entity in
// Telegram's legacy Markdown mode. Only valid outside entities.
func escapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if legacyMarkdownEscapes[ch] {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}

func writeImage(b *strings.Builder, stub tmdb.SearchResult) {
	path := stub.PosterPath
	if path == "" {
		path = stub.ProfilePath
	}
	if path == "" {
		return
	}
	b.WriteString("[" + hiddenLabel + "](" + tmdb.ImageURL("original", path) + ")")
}

func writeHeading(b *strings.Builder, title string, countries []tmdb.Country) {
	b.WriteString("*" + title + "*")
	if f := Flags(countries); f != "" {
		b.WriteString(" " + f)
	}
	b.WriteString("\n\n")
}

type personRef struct {
	id   int
	name string
}

func personLink(p personRef) string {
	return "[" + p.name + "](" + siteURL + "/person/" + strconv.Itoa(p.id) + ")"
}

func joinLinks(people []personRef) string {
	links := make([]string, 0, len(people))
	for _, p := range uniq(people) {
		links = append(links, personLink(p))
	}
	return strings.Join(links, ", ")
}

// uniq drops repeated values, keeping the first occurrence of each.
func uniq[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
