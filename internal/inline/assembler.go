package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/tmdbot/internal/metrics"
	"github.com/edgard/tmdbot/internal/render"
	"github.com/edgard/tmdbot/internal/tmdb"
)

// ItemRenderer renders a resolved search hit. *render.Renderer implements it.
type ItemRenderer interface {
	Render(ctx context.Context, item render.Item) (string, error)
}

// Assembler renders search results concurrently into cards.
type Assembler struct {
	renderer ItemRenderer
	log      *slog.Logger
}

// NewAssembler creates an Assembler using renderer for every result.
func NewAssembler(renderer ItemRenderer, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{
		renderer: renderer,
		log:      logger.With("component", "assembler"),
	}
}

// Assemble renders every result at once and returns the cards in input order.
// Results with an unknown media type are skipped. If any render fails the
// remaining ones are cancelled and the first error is returned.
func (a *Assembler) Assemble(ctx context.Context, results []tmdb.SearchResult) ([]Card, error) {
	items := make([]render.Item, 0, len(results))
	for _, r := range results {
		item, err := render.NewItem(r)
		if errors.Is(err, render.ErrUnknownMediaType) {
			a.log.WarnContext(ctx, "Skipping search result", "error", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	cards := make([]Card, len(items))
	g, gCtx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			start := time.Now()
			body, err := a.renderer.Render(gCtx, item)
			metrics.RenderDuration.WithLabelValues(string(item.MediaType())).Observe(time.Since(start).Seconds())
			if err != nil {
				return err
			}
			cards[i] = newCard(item.Stub(), body)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.log.ErrorContext(ctx, "Failed to assemble inline results", "results", len(items), "error", err)
		return nil, fmt.Errorf("assemble %d results: %w", len(items), err)
	}

	a.log.DebugContext(ctx, "Assembled inline results", "results", len(cards), "skipped", len(results)-len(items))
	return cards, nil
}
