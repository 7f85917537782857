// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/pipeline"
)

type InspectOptions struct {
	File  string
	Debug bool
}

func NewInspectOptions() *InspectOptions {
	return &InspectOptions{}
}

func NewInspectCmd(o *InspectOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a file's declared parameters, variables and repository aliases",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "File to inspect")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("file")
	return cmd
}

func (o *InspectOptions) Run() error {
	tty := ui.NewTTY(o.Debug)

	text, err := files.NewLocalSystem(nil).ReadFile(o.File)
	if err != nil {
		return err
	}

	params := pipeline.ParseParameters(text)
	if len(params) > 0 {
		tty.Printf("parameters:\n")
		for _, p := range params {
			switch {
			case p.Required():
				tty.Printf("  %s (%s, required) line %d\n", p.Name, p.Type, p.Pos.LineNum())
			default:
				tty.Printf("  %s (%s, default %q) line %d\n", p.Name, p.Type, *p.Default, p.Pos.LineNum())
			}
		}
	}

	vars := pipeline.ParseVariables(text)
	if len(vars.Variables) > 0 || len(vars.Groups) > 0 {
		tty.Printf("variables:\n")
		for _, v := range vars.Variables {
			tty.Printf("  %s = %s (line %d)\n", v.Name, v.Value, v.Pos.LineNum())
		}
		for _, g := range vars.Groups {
			tty.Printf("  group %s (line %d)\n", g.Name, g.Pos.LineNum())
		}
	}

	aliases := pipeline.ParseRepositoryAliases(text)
	if len(aliases) > 0 {
		tty.Printf("repository aliases:\n")
		for alias, folder := range aliases {
			tty.Printf("  %s -> %s\n", alias, folder)
		}
	}

	return nil
}
