// Package inline assembles TMDB search results into Telegram inline query
// answers.
package inline

import (
	"strconv"

	"github.com/go-telegram/bot/models"

	"github.com/edgard/tmdbot/internal/tmdb"
)

const thumbnailSize = "w92"

// Card is one rendered search result, ready to be offered as an inline result.
type Card struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Body         string `json:"body"`
}

func newCard(stub tmdb.SearchResult, body string) Card {
	thumb := stub.ProfilePath
	if thumb == "" {
		thumb = stub.PosterPath
	}
	return Card{
		ID:           string(stub.MediaType) + strconv.Itoa(stub.ID),
		Title:        "[" + string(stub.MediaType) + "] " + stub.DisplayTitle(),
		Description:  stub.Overview,
		ThumbnailURL: tmdb.ImageURL(thumbnailSize, thumb),
		Body:         body,
	}
}

// Article converts the card to a Telegram article result whose message is
// sent in legacy Markdown.
func (c Card) Article() *models.InlineQueryResultArticle {
	return &models.InlineQueryResultArticle{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		ThumbnailURL: c.ThumbnailURL,
		InputMessageContent: &models.InputTextMessageContent{
			MessageText: c.Body,
			ParseMode:   models.ParseModeMarkdownV1,
		},
	}
}

// Articles converts cards in order.
func Articles(cards []Card) []models.InlineQueryResult {
	results := make([]models.InlineQueryResult, 0, len(cards))
	for _, c := range cards {
		results = append(results, c.Article())
	}
	return results
}
