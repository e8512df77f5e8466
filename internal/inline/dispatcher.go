package inline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/edgard/tmdbot/internal/tmdb"
)

// Searcher runs a free-text multi search. *tmdb.Client implements it.
type Searcher interface {
	SearchMulti(ctx context.Context, query string) ([]tmdb.SearchResult, error)
}

// CardAssembler turns search results into cards. *Assembler implements it.
type CardAssembler interface {
	Assemble(ctx context.Context, results []tmdb.SearchResult) ([]Card, error)
}

// Dispatcher answers an inline query text with cards.
type Dispatcher struct {
	searcher  Searcher
	assembler CardAssembler
	log       *slog.Logger
}

// NewDispatcher wires a Searcher to a CardAssembler.
func NewDispatcher(searcher Searcher, assembler CardAssembler, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{
		searcher:  searcher,
		assembler: assembler,
		log:       logger.With("component", "dispatcher"),
	}
}

// Answer searches for query and renders the results. A blank query yields no
// cards and no search.
func (d *Dispatcher) Answer(ctx context.Context, query string) ([]Card, error) {
	if strings.TrimSpace(query) == "" {
		return []Card{}, nil
	}

	results, err := d.searcher.SearchMulti(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	d.log.DebugContext(ctx, "Search returned results", "query", query, "count", len(results))

	cards, err := d.assembler.Assemble(ctx, results)
	if err != nil {
		return nil, err
	}
	return cards, nil
}
