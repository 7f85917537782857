// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/validate"
)

type UnusedOptions struct {
	File  string
	Debug bool
}

func NewUnusedOptions() *UnusedOptions {
	return &UnusedOptions{}
}

func NewUnusedCmd(o *UnusedOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unused",
		Short: "Report declared parameters that are never consumed",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Template file to check")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("file")
	return cmd
}

func (o *UnusedOptions) Run() error {
	tty := ui.NewTTY(o.Debug)

	text, err := files.NewLocalSystem(nil).ReadFile(o.File)
	if err != nil {
		return err
	}

	unused := validate.CheckUnusedParameters(text)
	if len(unused) == 0 {
		tty.Printf("all parameters used\n")
		return nil
	}

	for _, param := range unused {
		tty.Printf("%s:%d: parameter '%s' is never used\n", o.File, param.Pos.LineNum(), param.Name)
	}
	return nil
}
