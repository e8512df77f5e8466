package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgard/tmdbot/internal/config"
	"github.com/edgard/tmdbot/internal/inline"
	"github.com/edgard/tmdbot/internal/logger"
)

func newSearchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the cards an inline query would return",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath(cmd), "Telegram.Token")
			if err != nil {
				return err
			}

			log := logger.New(os.Stderr, cfg.Logger.Level, cfg.Logger.JSON)
			_, dispatcher, err := newPipeline(cfg, log)
			if err != nil {
				return err
			}

			cards, err := dispatcher.Answer(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cards)
			}
			return printCards(cmd.OutOrStdout(), cards)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print cards as JSON")
	return cmd
}

func printCards(w io.Writer, cards []inline.Card) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, c := range cards {
		if _, err := fmt.Fprintf(w, "=== %s (%s)\n%s\n\n", c.Title, c.ID, c.Body); err != nil {
			return err
		}
	}
	return nil
}
