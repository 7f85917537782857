// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/pipenav/pipenav/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultPipenavCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipenav: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
