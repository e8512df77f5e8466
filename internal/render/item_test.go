package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/edgard/tmdbot/internal/render"
	"github.com/edgard/tmdbot/internal/tmdb"
)

type fakeFetcher struct {
	movie  *tmdb.Movie
	tv     *tmdb.TV
	person *tmdb.Person
	err    error
}

func (f fakeFetcher) Movie(context.Context, int) (*tmdb.Movie, error)   { return f.movie, f.err }
func (f fakeFetcher) TV(context.Context, int) (*tmdb.TV, error)         { return f.tv, f.err }
func (f fakeFetcher) Person(context.Context, int) (*tmdb.Person, error) { return f.person, f.err }

func TestNewItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mediaType tmdb.MediaType
		want      tmdb.MediaType
		wantErr   bool
	}{
		{tmdb.MediaMovie, tmdb.MediaMovie, false},
		{tmdb.MediaTV, tmdb.MediaTV, false},
		{tmdb.MediaPerson, tmdb.MediaPerson, false},
		{"collection", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(string(tc.mediaType), func(t *testing.T) {
			t.Parallel()
			item, err := render.NewItem(tmdb.SearchResult{ID: 1, MediaType: tc.mediaType})
			if tc.wantErr {
				if !errors.Is(err, render.ErrUnknownMediaType) {
					t.Fatalf("err = %v, want ErrUnknownMediaType", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.MediaType() != tc.want {
				t.Errorf("MediaType() = %q, want %q", item.MediaType(), tc.want)
			}
			if item.Stub().ID != 1 {
				t.Errorf("Stub().ID = %d, want 1", item.Stub().ID)
			}
		})
	}
}

func TestRendererDispatchesByType(t *testing.T) {
	t.Parallel()

	r := render.NewRenderer(fakeFetcher{
		movie:  &tmdb.Movie{Runtime: 90},
		tv:     &tmdb.TV{NumberOfSeasons: 2},
		person: &tmdb.Person{Birthday: "1970-01-01"},
	}, nil)

	tests := []struct {
		stub tmdb.SearchResult
		want string
	}{
		{tmdb.SearchResult{ID: 1, MediaType: tmdb.MediaMovie, Title: "M"}, "*Runtime*: 90mins"},
		{tmdb.SearchResult{ID: 2, MediaType: tmdb.MediaTV, Name: "T"}, "*Seasons*: 2"},
		{tmdb.SearchResult{ID: 3, MediaType: tmdb.MediaPerson, Name: "P"}, "*Birth:* 1970-01-01"},
	}

	for _, tc := range tests {
		item, err := render.NewItem(tc.stub)
		if err != nil {
			t.Fatalf("NewItem: %v", err)
		}
		got, err := r.Render(context.Background(), item)
		if err != nil {
			t.Fatalf("Render(%s): %v", tc.stub.MediaType, err)
		}
		if !strings.Contains(got, tc.want) {
			t.Errorf("Render(%s) = %q, want it to contain %q", tc.stub.MediaType, got, tc.want)
		}
	}
}

func TestRendererPropagatesFetchErrors(t *testing.T) {
	t.Parallel()

	r := render.NewRenderer(fakeFetcher{err: tmdb.ErrNotFound}, nil)
	item, err := render.NewItem(tmdb.SearchResult{ID: 99, MediaType: tmdb.MediaTV})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	out, err := r.Render(context.Background(), item)
	if !errors.Is(err, tmdb.ErrNotFound) {
		t.Fatalf("err = %v, want wrapped ErrNotFound", err)
	}
	if out != "" {
		t.Errorf("expected no output on error, got %q", out)
	}
	if !strings.Contains(err.Error(), "tv 99") {
		t.Errorf("error %q does not mention the item", err)
	}
}
