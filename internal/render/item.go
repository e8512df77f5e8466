// Package render turns TMDB search hits into the Markdown bodies sent as
// inline query results.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/edgard/tmdbot/internal/tmdb"
)

// ErrUnknownMediaType is returned for search hits that are not a movie, TV show or person.
var ErrUnknownMediaType = errors.New("unknown media type")

// Item is a search hit resolved to its category. The set of implementations is
// closed: MovieItem, TVItem and PersonItem.
type Item interface {
	Stub() tmdb.SearchResult
	MediaType() tmdb.MediaType
	item()
}

type MovieItem struct{ stub tmdb.SearchResult }

type TVItem struct{ stub tmdb.SearchResult }

type PersonItem struct{ stub tmdb.SearchResult }

func (i MovieItem) Stub() tmdb.SearchResult  { return i.stub }
func (i TVItem) Stub() tmdb.SearchResult     { return i.stub }
func (i PersonItem) Stub() tmdb.SearchResult { return i.stub }

func (MovieItem) MediaType() tmdb.MediaType  { return tmdb.MediaMovie }
func (TVItem) MediaType() tmdb.MediaType     { return tmdb.MediaTV }
func (PersonItem) MediaType() tmdb.MediaType { return tmdb.MediaPerson }

func (MovieItem) item()  {}
func (TVItem) item()     {}
func (PersonItem) item() {}

// NewItem resolves a search hit by its media type tag.
func NewItem(stub tmdb.SearchResult) (Item, error) {
	switch stub.MediaType {
	case tmdb.MediaMovie:
		return MovieItem{stub}, nil
	case tmdb.MediaTV:
		return TVItem{stub}, nil
	case tmdb.MediaPerson:
		return PersonItem{stub}, nil
	default:
		return nil, fmt.Errorf("%w: %q (id %d)", ErrUnknownMediaType, stub.MediaType, stub.ID)
	}
}

// DetailFetcher loads the per-category detail records. *tmdb.Client implements it.
type DetailFetcher interface {
	Movie(ctx context.Context, id int) (*tmdb.Movie, error)
	TV(ctx context.Context, id int) (*tmdb.TV, error)
	Person(ctx context.Context, id int) (*tmdb.Person, error)
}

// Renderer fetches details for an Item and formats its Markdown body.
type Renderer struct {
	fetcher DetailFetcher
	log     *slog.Logger
}

// NewRenderer creates a Renderer backed by fetcher.
func NewRenderer(fetcher DetailFetcher, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{
		fetcher: fetcher,
		log:     logger.With("component", "renderer"),
	}
}

// Render fetches the detail record for item and returns the formatted body.
// Fetch errors are returned as-is, wrapped with the item's type and id.
func (r *Renderer) Render(ctx context.Context, item Item) (string, error) {
	stub := item.Stub()
	r.log.DebugContext(ctx, "Rendering item", "media_type", item.MediaType(), "id", stub.ID)

	switch it := item.(type) {
	case MovieItem:
		d, err := r.fetcher.Movie(ctx, stub.ID)
		if err != nil {
			return "", fmt.Errorf("render movie %d: %w", stub.ID, err)
		}
		return FormatMovie(it.stub, d), nil
	case TVItem:
		d, err := r.fetcher.TV(ctx, stub.ID)
		if err != nil {
			return "", fmt.Errorf("render tv %d: %w", stub.ID, err)
		}
		return FormatTV(it.stub, d), nil
	case PersonItem:
		d, err := r.fetcher.Person(ctx, stub.ID)
		if err != nil {
			return "", fmt.Errorf("render person %d: %w", stub.ID, err)
		}
		return FormatPerson(it.stub, d), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownMediaType, item)
	}
}
