// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/graph"
	"github.com/pipenav/pipenav/pkg/version"
	"github.com/pipenav/pipenav/pkg/workspace"
)

type GraphOptions struct {
	Root    string
	SubPath string
	File    string
	Depth   int
	Format  string
	Debug   bool
}

func NewGraphOptions() *GraphOptions {
	return &GraphOptions{Depth: 3, Format: "json"}
}

func NewGraphCmd(o *GraphOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the template dependency graph (workspace-wide or around one file)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Root, "root", ".", "Workspace root directory")
	cmd.Flags().StringVar(&o.SubPath, "path", "", "Restrict scanning to a sub-path of the root")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Build a scoped graph around this file")
	cmd.Flags().IntVar(&o.Depth, "depth", 3, fmt.Sprintf("Scoped graph depth (1-%d)", graph.MaxScopedDepth))
	cmd.Flags().StringVar(&o.Format, "format", "json", "Output format (json|dot)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *GraphOptions) Run() error {
	tty := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		tty.Debugf("total: %s\n", time.Since(t1))
	}()

	ws, err := workspace.Open(o.Root, version.Version)
	if err != nil {
		return err
	}

	var result graph.Graph
	if o.File != "" {
		result, err = ws.ScopedGraph(o.File, o.Depth)
	} else {
		result, err = ws.Graph(o.SubPath)
	}
	if err != nil {
		return err
	}

	tty.Debugf("%d nodes, %d edges\n", len(result.Nodes), len(result.Edges))

	switch o.Format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		tty.Printf("%s\n", out)
	case "dot":
		tty.Printf("%s", result.AsDOT())
	default:
		return fmt.Errorf("Unknown format '%s' (expected json or dot)", o.Format)
	}

	return nil
}
