// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"path/filepath"
	"strings"
)

var yamlExts = []string{".yaml", ".yml"}

// DefaultSkipDirs are directory names excluded from workspace enumeration.
var DefaultSkipDirs = []string{".git", "node_modules", "vendor", "bin", "obj", ".vs", ".idea"}

// System is the filesystem seam for the analytical core. Implementations must
// treat every ReadFile as a single synchronous snapshot read.
type System interface {
	ReadFile(path string) (string, error)
	Exists(path string) bool
	IsDir(path string) bool
	ListYAML(root string) ([]string, error)
}

var _ []System = []System{LocalSystem{}, &MemorySystem{}}

// IsYAMLPath reports whether path carries a YAML-ish extension.
func IsYAMLPath(path string) bool {
	name := filepath.Base(path)
	for _, ext := range yamlExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
