package render_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/edgard/tmdbot/internal/render"
	"github.com/edgard/tmdbot/internal/tmdb"
)

const (
	flagUS = "\U0001F1FA\U0001F1F8"
	flagGB = "\U0001F1EC\U0001F1E7"
	image  = "[\u200c\u200c](http://image.tmdb.org/t/p/original"
)

func matrixStub() tmdb.SearchResult {
	return tmdb.SearchResult{
		ID:            603,
		MediaType:     tmdb.MediaMovie,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		Overview:      "Set in the 22nd century, *The Matrix* follows a computer_hacker.",
		PosterPath:    "/m.jpg",
	}
}

func matrixDetails() *tmdb.Movie {
	return &tmdb.Movie{
		ID:                  603,
		ReleaseDate:         "1999-03-31",
		Runtime:             136,
		IMDbID:              "tt0133093",
		ProductionCountries: []tmdb.Country{{ISO3166_1: "US"}},
		Credits: &tmdb.Credits{
			Cast: []tmdb.CastMember{
				{ID: 6384, Name: "Keanu Reeves", Order: 0},
				{ID: 2975, Name: "Laurence Fishburne", Order: 1},
				{ID: 530, Name: "Carrie-Anne Moss", Order: 2},
				{ID: 999, Name: "Extra", Order: 10},
				{ID: 6384, Name: "Keanu Reeves", Order: 3},
			},
			Crew: []tmdb.CrewMember{
				{ID: 1, Name: "Lana Wachowski", Job: "Director", Department: "Directing"},
				{ID: 2, Name: "Lilly Wachowski", Job: "Director", Department: "Directing"},
				{ID: 3, Name: "Joel Silver", Job: "Producer", Department: "Production"},
				{ID: 1, Name: "Lana Wachowski", Job: "Screenplay", Department: "Writing"},
				{ID: 2, Name: "Lilly Wachowski", Job: "Screenplay", Department: "Writing"},
				{ID: 4, Name: "Co Director", Job: "Co-Director", Department: "Directing"},
				{ID: 5, Name: "First AD", Job: "First Assistant Director", Department: "Directing"},
				{ID: 1, Name: "Lana Wachowski", Job: "Writer", Department: "Writing"},
			},
		},
	}
}

func TestFormatMovie(t *testing.T) {
	t.Parallel()

	want := image + "/m.jpg)*The Matrix* " + flagUS + "\n\n" +
		"*Original title*: [The Matrix](https://www.themoviedb.org/movie/603) (1999)\n" +
		"*Runtime*: 136mins\n" +
		"*Directed by*: [Lana Wachowski](https://www.themoviedb.org/person/1), [Lilly Wachowski](https://www.themoviedb.org/person/2), [Co Director](https://www.themoviedb.org/person/4)\n" +
		"*Story by*: [Lana Wachowski](https://www.themoviedb.org/person/1), [Lilly Wachowski](https://www.themoviedb.org/person/2)\n" +
		"\n" +
		"*Cast*: [Keanu Reeves](https://www.themoviedb.org/person/6384), [Laurence Fishburne](https://www.themoviedb.org/person/2975), [Carrie-Anne Moss](https://www.themoviedb.org/person/530)\n" +
		"\n" +
		"*Other sites:* [Letterboxd](http://letterboxd.com/tmdb/603), [IMDb](https://www.imdb.com/title/tt0133093)\n" +
		"\n" +
		`Set in the 22nd century, \*The Matrix\* follows a computer\_hacker.`

	if got := render.FormatMovie(matrixStub(), matrixDetails()); got != want {
		t.Errorf("FormatMovie mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatMovieOptionalFields(t *testing.T) {
	t.Parallel()

	stub := tmdb.SearchResult{ID: 42, MediaType: tmdb.MediaMovie, Title: "Untitled"}

	tests := []struct {
		name        string
		details     *tmdb.Movie
		contains    []string
		notContains []string
	}{
		{
			name:        "no imdb id",
			details:     &tmdb.Movie{},
			contains:    []string{"*Other sites:* [Letterboxd](http://letterboxd.com/tmdb/42)\n"},
			notContains: []string{"IMDb", "*Directed by*", "*Runtime*", " ("},
		},
		{
			name:     "imdb id",
			details:  &tmdb.Movie{IMDbID: "tt1"},
			contains: []string{"[Letterboxd](http://letterboxd.com/tmdb/42), [IMDb](https://www.imdb.com/title/tt1)\n"},
		},
		{
			name:     "empty credits still print headers",
			details:  &tmdb.Movie{Credits: &tmdb.Credits{}},
			contains: []string{"*Directed by*: \n*Story by*: \n\n*Cast*: \n\n"},
		},
		{
			name:     "original title falls back to title",
			details:  &tmdb.Movie{ReleaseDate: "2020"},
			contains: []string{"*Original title*: [Untitled](https://www.themoviedb.org/movie/42) (2020)\n"},
		},
		{
			name:        "no poster means no image line",
			details:     nil,
			contains:    []string{"*Untitled*\n\n"},
			notContains: []string{"\u200c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := render.FormatMovie(stub, tc.details)
			for _, s := range tc.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output does not contain %q\n got: %q", s, got)
				}
			}
			for _, s := range tc.notContains {
				if strings.Contains(got, s) {
					t.Errorf("output unexpectedly contains %q\n got: %q", s, got)
				}
			}
		})
	}
}

func TestFormatMovieYear(t *testing.T) {
	t.Parallel()

	got := render.FormatMovie(matrixStub(), &tmdb.Movie{ReleaseDate: "1999-03-31"})
	if !strings.Contains(got, "(https://www.themoviedb.org/movie/603) (1999)\n") {
		t.Errorf("year not rendered: %q", got)
	}
}

func TestFormatTV(t *testing.T) {
	t.Parallel()

	stub := tmdb.SearchResult{
		ID:           1399,
		MediaType:    tmdb.MediaTV,
		Name:         "Game of Thrones",
		OriginalName: "Game of Thrones",
		Overview:     "Seven noble families fight for control.",
		PosterPath:   "/got.jpg",
	}
	details := &tmdb.TV{
		FirstAirDate:     "2015-01-01",
		NumberOfSeasons:  8,
		NumberOfEpisodes: 73,
		CreatedBy: []tmdb.Creator{
			{ID: 9813, Name: "David Benioff"},
			{ID: 228068, Name: "D. B. Weiss"},
		},
		ProductionCountries: []tmdb.Country{{ISO3166_1: "US"}, {ISO3166_1: "gb"}},
	}

	want := image + "/got.jpg)*Game of Thrones* " + flagUS + " " + flagGB + "\n\n" +
		"*Original title*: [Game of Thrones](https://www.themoviedb.org/tv/1399) (2015-01-01 - {?})\n" +
		"*Created by*: [David Benioff](https://www.themoviedb.org/person/9813), [D. B. Weiss](https://www.themoviedb.org/person/228068)\n" +
		"*Seasons*: 8\n" +
		"*Episodes*: 73\n" +
		"\n" +
		"Seven noble families fight for control."

	if got := render.FormatTV(stub, details); got != want {
		t.Errorf("FormatTV mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatTVAirDates(t *testing.T) {
	t.Parallel()

	stub := tmdb.SearchResult{ID: 7, MediaType: tmdb.MediaTV, Name: "Show"}

	tests := []struct {
		name    string
		details *tmdb.TV
		want    string
	}{
		{"open ended", &tmdb.TV{FirstAirDate: "2015-01-01"}, "(https://www.themoviedb.org/tv/7) (2015-01-01 - {?})\n"},
		{"finished", &tmdb.TV{FirstAirDate: "2015-01-01", LastAirDate: "2019-05-19"}, "(https://www.themoviedb.org/tv/7) (2015-01-01 - {2019-05-19})\n"},
		{"no first air date", &tmdb.TV{LastAirDate: "2019-05-19"}, "(https://www.themoviedb.org/tv/7)\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := render.FormatTV(stub, tc.details); !strings.Contains(got, tc.want) {
				t.Errorf("output does not contain %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestFormatPerson(t *testing.T) {
	t.Parallel()

	stub := tmdb.SearchResult{
		ID:          6384,
		MediaType:   tmdb.MediaPerson,
		Name:        "Keanu Reeves",
		ProfilePath: "/k.jpg",
		KnownFor: []tmdb.KnownFor{
			{ID: 603, MediaType: tmdb.MediaMovie, Title: "The Matrix"},
			{ID: 1, MediaType: tmdb.MediaTV, Name: "Swedish Dicks"},
		},
	}

	tests := []struct {
		name    string
		details *tmdb.Person
		want    string
	}{
		{
			name:    "alive with imdb",
			details: &tmdb.Person{Birthday: "1964-09-02", PlaceOfBirth: "Beirut, Lebanon", IMDbID: "nm0000206"},
			want: image + "/k.jpg)*Keanu Reeves*\n\n" +
				"[TMDB page](https://www.themoviedb.org/person/6384)\n\n" +
				"*Birth:* 1964-09-02 (Beirut, Lebanon)\n" +
				"Other sites: [IMDb](https://www.imdb.com/name/nm0000206)\n" +
				"*Known for:* The Matrix, Swedish Dicks",
		},
		{
			name:    "deceased without imdb or place",
			details: &tmdb.Person{Birthday: "1900-01-01", Deathday: "1980-12-31"},
			want: image + "/k.jpg)*Keanu Reeves*\n\n" +
				"[TMDB page](https://www.themoviedb.org/person/6384)\n\n" +
				"*Birth:* 1900-01-01\n" +
				"*Death:* 1980-12-31\n" +
				"\n*Known for:* The Matrix, Swedish Dicks",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := render.FormatPerson(stub, tc.details); got != tc.want {
				t.Errorf("FormatPerson mismatch\n got: %q\nwant: %q", got, tc.want)
			}
		})
	}
}

func TestFormattingIsPure(t *testing.T) {
	t.Parallel()

	stub := matrixStub()
	details := matrixDetails()
	first := render.FormatMovie(stub, details)

	if !reflect.DeepEqual(stub, matrixStub()) {
		t.Error("stub was modified")
	}
	if len(details.Credits.Crew) != 8 || len(details.Credits.Cast) != 5 {
		t.Error("credits were modified")
	}
	for i := 0; i < 3; i++ {
		if again := render.FormatMovie(stub, details); again != first {
			t.Fatalf("render %d differs from the first one", i)
		}
	}
}
