// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pipenav/pipenav/pkg/cmd/ui"
	"github.com/pipenav/pipenav/pkg/validate"
	"github.com/pipenav/pipenav/pkg/version"
	"github.com/pipenav/pipenav/pkg/workspace"
)

type ValidateOptions struct {
	Root  string
	File  string
	Debug bool
}

func NewValidateOptions() *ValidateOptions {
	return &ValidateOptions{}
}

func NewValidateCmd(o *ValidateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate template inclusion call-sites against their parameter contracts",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Root, "root", ".", "Workspace root directory")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Validate a single file instead of the whole workspace")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ValidateOptions) Run() error {
	tty := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		tty.Debugf("total: %s\n", time.Since(t1))
	}()

	ws, err := workspace.Open(o.Root, version.Version)
	if err != nil {
		return err
	}

	var results []workspace.FileIssues

	if o.File != "" {
		issues, err := ws.ValidateFile(o.File)
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			results = append(results, workspace.FileIssues{Path: o.File, Issues: issues})
		}
	} else {
		results, err = ws.ValidateAll()
		if err != nil {
			return err
		}
	}

	errCount := 0
	for _, file := range results {
		for _, issue := range file.Issues {
			if issue.Severity == validate.SeverityError {
				errCount++
			}
			tty.Printf("%s:%d:%d: %s: %s\n", file.Path, issue.Span.LineNum(),
				issue.Span.StartCol+1, issue.Severity, issue.Message)
		}
	}

	if errCount > 0 {
		return fmt.Errorf("Found %d error(s)", errCount)
	}
	return nil
}
