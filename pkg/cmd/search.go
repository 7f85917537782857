// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/search"
	"github.com/pipenav/pipenav/pkg/version"
	"github.com/pipenav/pipenav/pkg/workspace"
)

type SearchOptions struct {
	Root       string
	Query      string
	MaxResults int
	Debug      bool
}

func NewSearchOptions() *SearchOptions {
	return &SearchOptions{MaxResults: 20}
}

func NewSearchCmd(o *SearchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fuzzy-search workspace files by path",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Root, "root", ".", "Workspace root directory")
	cmd.Flags().StringVarP(&o.Query, "query", "q", "", "Search query")
	cmd.Flags().IntVar(&o.MaxResults, "max-results", 20, "Maximum number of results")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("query")
	return cmd
}

func (o *SearchOptions) Run() error {
	tty := ui.NewTTY(o.Debug)

	ws, err := workspace.Open(o.Root, version.Version)
	if err != nil {
		return err
	}

	candidates, err := ws.Candidates()
	if err != nil {
		return err
	}

	for _, result := range search.Search(o.Query, candidates, o.MaxResults) {
		tty.Printf("%5d  %s\n", result.Score, result.RelPath)
	}

	return nil
}
