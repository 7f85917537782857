// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// MemorySystem is an in-memory System used by tests. Paths are slash
// separated and expected to be absolute (e.g. "/ws/repo/azure-pipelines.yml").
type MemorySystem struct {
	files map[string]string
	dirs  map[string]struct{}
}

func NewMemorySystem() *MemorySystem {
	return &MemorySystem{files: map[string]string{}, dirs: map[string]struct{}{}}
}

// WriteFile registers a file and all its ancestor directories.
func (s *MemorySystem) WriteFile(filePath, contents string) {
	s.files[filePath] = contents
	for dir := path.Dir(filePath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		s.dirs[dir] = struct{}{}
	}
}

// MkdirAll registers a directory (e.g. a ".git" marker) and its ancestors.
func (s *MemorySystem) MkdirAll(dirPath string) {
	for dir := dirPath; dir != "/" && dir != "."; dir = path.Dir(dir) {
		s.dirs[dir] = struct{}{}
	}
}

func (s *MemorySystem) ReadFile(filePath string) (string, error) {
	contents, found := s.files[filePath]
	if !found {
		return "", fmt.Errorf("Reading file '%s': file not found", filePath)
	}
	return contents, nil
}

func (s *MemorySystem) Exists(filePath string) bool {
	_, found := s.files[filePath]
	return found
}

func (s *MemorySystem) IsDir(dirPath string) bool {
	_, found := s.dirs[dirPath]
	return found
}

func (s *MemorySystem) ListYAML(root string) ([]string, error) {
	prefix := strings.TrimSuffix(root, "/") + "/"

	var paths []string
	for filePath := range s.files {
		if !strings.HasPrefix(filePath, prefix) || !IsYAMLPath(filePath) {
			continue
		}
		if s.underSkippedDir(strings.TrimPrefix(filePath, prefix)) {
			continue
		}
		paths = append(paths, filePath)
	}

	sort.Strings(paths)

	return paths, nil
}

func (s *MemorySystem) underSkippedDir(relPath string) bool {
	for _, piece := range strings.Split(path.Dir(relPath), "/") {
		for _, dir := range DefaultSkipDirs {
			if piece == dir {
				return true
			}
		}
	}
	return false
}
