// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cmd wires the analytical core into the pipenav CLI.
package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/version"
)

func NewDefaultPipenavCmd() *cobra.Command {
	return NewPipenavCmd()
}

func NewPipenavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pipenav",
		Version: version.Version,
		Short:   "pipenav analyzes YAML pipeline template workspaces",
		Long: `pipenav analyzes a workspace of YAML pipeline definitions: the template
dependency graph (including cross-repository references via aliases), the
argument contract of every template inclusion, and declared-but-unused
parameters.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewInspectCmd(NewInspectOptions()))
	cmd.AddCommand(NewValidateCmd(NewValidateOptions()))
	cmd.AddCommand(NewUnusedCmd(NewUnusedOptions()))
	cmd.AddCommand(NewGraphCmd(NewGraphOptions()))
	cmd.AddCommand(NewSearchCmd(NewSearchOptions()))
	cmd.AddCommand(NewResolveCmd(NewResolveOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
