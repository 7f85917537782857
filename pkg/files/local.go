// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LocalSystem reads the real filesystem.
type LocalSystem struct {
	skipDirs []string
}

func NewLocalSystem(extraSkipDirs []string) LocalSystem {
	skip := append([]string{}, DefaultSkipDirs...)
	skip = append(skip, extraSkipDirs...)
	return LocalSystem{skipDirs: skip}
}

func (s LocalSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Reading file '%s': %s", path, err)
	}
	return string(data), nil
}

func (s LocalSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s LocalSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListYAML walks root and returns sorted absolute paths of all YAML-like
// files, skipping conventional non-source directories.
func (s LocalSystem) ListYAML(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(walkedPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if walkedPath != root && s.skipped(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsYAMLPath(walkedPath) {
			paths = append(paths, walkedPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files under '%s': %s", root, err)
	}

	sort.Strings(paths)

	return paths, nil
}

func (s LocalSystem) skipped(name string) bool {
	for _, dir := range s.skipDirs {
		if name == dir {
			return true
		}
	}
	return false
}
