// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides the filesystem services the analytical core depends on:
enumerating the YAML-like files under a workspace root and reading a complete
text snapshot of one file by path.

The rest of the codebase accesses the filesystem only through the System
interface, so tests can run against purely in-memory workspaces and callers
can substitute their own caching layer.
*/
package files
