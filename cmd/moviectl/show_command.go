package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <imdb-id>",
		Short: "Display the details of one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			stream := svc.FetchMovieDetails(cmd.Context(), strings.TrimSpace(args[0]))
			return consume(cmd, stream, renderMovieDetail)
		},
	}
}

func renderMovieDetail(m domain.Movie) string {
	poster := "-"
	if m.PosterURL != nil {
		poster = *m.PosterURL
	}
	return renderKeyValue([][2]string{
		{"IMDb ID", m.ID},
		{"Title", m.Title},
		{"Released", m.ReleaseDate},
		{"Rating", strconv.FormatFloat(m.VoteAverage, 'f', 1, 64)},
		{"Votes", strconv.Itoa(m.VoteCount)},
		{"Popularity", fmt.Sprintf("%.1f", m.Popularity)},
		{"Poster", poster},
		{"Overview", m.Overview},
	})
}
