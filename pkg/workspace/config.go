// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	semver "github.com/hashicorp/go-version"

	"github.com/pipenav/pipenav/pkg/files"
)

// ConfigFileName is looked up at the workspace root.
const ConfigFileName = ".pipenav.toml"

// Config is the optional per-workspace configuration file.
type Config struct {
	// MinVersion rejects older tool binaries, like terraform's
	// required_version. Empty means any version.
	MinVersion string `toml:"min_version"`

	// Ignore lists directory names excluded from scanning, in addition to
	// the conventional defaults.
	Ignore []string `toml:"ignore"`

	// Aliases supplies repository aliases on top of the ones each file
	// declares in its resources block; a file's own declarations win.
	Aliases map[string]string `toml:"aliases"`
}

// LoadConfig reads the workspace config. A missing file yields the zero
// config; a present but unparseable file is an error.
func LoadConfig(fsys files.System, root string) (Config, error) {
	configPath := filepath.Join(root, ConfigFileName)
	if !fsys.Exists(configPath) {
		return Config{}, nil
	}

	text, err := fsys.ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	var config Config
	if _, err := toml.Decode(text, &config); err != nil {
		return Config{}, fmt.Errorf("Parsing '%s': %s", configPath, err)
	}
	return config, nil
}

// CheckVersion enforces the config's min_version against the running tool
// version.
func (c Config) CheckVersion(currentVersion string) error {
	if c.MinVersion == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(">= " + c.MinVersion)
	if err != nil {
		return fmt.Errorf("Parsing min_version '%s': %s", c.MinVersion, err)
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("Parsing current version '%s': %s", currentVersion, err)
	}

	if !constraint.Check(current) {
		return fmt.Errorf("Workspace requires pipenav >= %s, running %s", c.MinVersion, currentVersion)
	}
	return nil
}
