package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

var errStreamIncomplete = errors.New("stream ended before a result was available")

// consume prints every emission of stream. Failures that are followed by more
// emissions are printed as warnings; a terminal failure is returned.
func consume[T any](cmd *cobra.Command, stream <-chan domain.Result[T], render func(T) string) error {
	stderr := cmd.ErrOrStderr()
	var pending *domain.Failure[T]
	var last domain.Result[T]

	for r := range stream {
		if pending != nil {
			fmt.Fprintf(stderr, "warning: %s\n", pending.Message)
			pending = nil
		}
		switch v := r.(type) {
		case domain.Loading[T]:
			fmt.Fprintln(stderr, "Loading...")
		case domain.Success[T]:
			fmt.Fprintln(cmd.OutOrStdout(), render(v.Data))
		case domain.Failure[T]:
			pending = &v
		}
		last = r
	}

	if pending != nil {
		return pending
	}
	if last == nil || last.Status() == domain.StatusLoading {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		return errStreamIncomplete
	}
	return nil
}
