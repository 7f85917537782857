// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
pipenav.

The codebase is organized into well-defined layers, top-down:

# Entry Point

pipenav is built into a single command-line tool:

	./cmd/pipenav

# Commands

Each subcommand (validate, unused, graph, search, resolve, inspect) is a thin
options struct that wires flags to the workspace layer.

	pkg/cmd
	pkg/cmd/ui

# The Workspace

A workspace is one directory tree of pipeline YAML files plus an optional
.pipenav.toml config. It ties the analytical core together and is the only
layer the commands talk to.

	pkg/workspace

# The Analytical Core

The core never evaluates templates; it extracts structure from raw lines and
reasons about it. Each concern is its own package:

	pkg/pipeline   // line-oriented extraction: parameters, arguments,
	               // template references, repository aliases, variables
	pkg/resolve    // template reference path resolution across repositories
	pkg/validate   // call-site diagnostics and unused-parameter detection
	pkg/graph      // workspace-wide and scoped dependency graphs
	pkg/search     // typo-tolerant path search

# Utilities

	pkg/files      // filesystem seam (local and in-memory)
	pkg/filepos    // 0-based positions and spans, 1-based display
	pkg/version
*/
package pkg
