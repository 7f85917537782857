// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/resolve"
	"github.com/pipenav/pipenav/pkg/version"
	"github.com/pipenav/pipenav/pkg/workspace"
)

type ResolveOptions struct {
	Root  string
	File  string
	Ref   string
	Debug bool
}

func NewResolveOptions() *ResolveOptions {
	return &ResolveOptions{}
}

func NewResolveCmd(o *ResolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show how a template reference resolves from a given file",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Root, "root", ".", "Workspace root directory")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Including file")
	cmd.Flags().StringVar(&o.Ref, "ref", "", "Raw reference string (e.g. stages/build.yml@templates)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("ref")
	return cmd
}

func (o *ResolveOptions) Run() error {
	tty := ui.NewTTY(o.Debug)

	ws, err := workspace.Open(o.Root, version.Version)
	if err != nil {
		return err
	}

	text, err := ws.System().ReadFile(o.File)
	if err != nil {
		return err
	}

	resolved := resolve.NewResolver(ws.System()).Resolve(o.Ref, o.File, ws.AliasTable(text))
	switch {
	case resolved == nil:
		tty.Printf("empty reference\n")
	case resolved.UnknownAlias:
		tty.Printf("unknown alias '@%s'\n", resolved.Alias)
	default:
		tty.Printf("%s (%s)\n", resolved.AbsolutePath, resolved.Kind)
		if !ws.System().Exists(resolved.AbsolutePath) {
			tty.Warnf("warning: file does not exist\n")
		}
	}

	return nil
}
