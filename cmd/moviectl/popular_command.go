package main

import (
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/jpp0ca/MovieCatalog-API/internal/config"
	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

func newPopularCommand(ctx *commandContext) *cobra.Command {
	var terms string
	var limit int

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List popular movies aggregated over the search terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") && limit < 1 {
				return errors.New("--limit must be a positive integer")
			}
			svc, err := ctx.ensureService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			selected := config.ParseList(terms)
			if len(selected) == 0 {
				selected = svc.DefaultTerms()
			}
			if limit < 1 {
				limit = svc.DefaultLimit()
			}

			stream := svc.FetchPopularMovies(cmd.Context(), selected, limit)
			return consume(cmd, stream, renderMovieList)
		},
	}

	cmd.Flags().StringVar(&terms, "terms", "", "Comma-separated search terms (defaults to SEARCH_TERMS)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of movies (defaults to MAX_MOVIES)")
	return cmd
}

func renderMovieList(movies []domain.Movie) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"#", "IMDb ID", "Title", "Year", "Poster"})
	for i, m := range movies {
		poster := "no"
		if m.HasPoster() {
			poster = "yes"
		}
		tw.AppendRow(table.Row{i + 1, m.ID, m.Title, m.ReleaseDate, poster})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
