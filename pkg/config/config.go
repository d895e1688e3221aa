// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NVIDIA/fileversion/pkg/defaults"
	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/serializer"
	"github.com/NVIDIA/fileversion/pkg/version"
	"github.com/NVIDIA/fileversion/pkg/versionfile"
)

// Config holds CLI defaults read from a YAML or JSON file.
// Empty fields leave the built-in default in place.
type Config struct {
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
	Part      string `json:"part,omitempty" yaml:"part,omitempty"`
	Increment *int   `json:"increment,omitempty" yaml:"increment,omitempty"`
	Encoding  string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
	LogLevel  string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// source is the path the config was loaded from, empty when none was found.
	source string
}

// Source returns the path the configuration was loaded from.
func (c *Config) Source() string {
	return c.source
}

// Load reads the config file at path. The file must exist.
func Load(path string) (*Config, error) {
	cfg, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, fverrors.WrapWithContext(fverrors.ErrCodeInvalidRequest,
			"failed to load config", err, map[string]any{"path": path})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.source = path
	return cfg, nil
}

// Discover looks for the default config file in the working directory and
// then in the user's home directory. A missing file yields an empty Config.
func Discover() (*Config, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, defaults.ConfigFileName)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fverrors.WrapWithContext(fverrors.ErrCodeIO,
				"failed to stat config", err, map[string]any{"path": path})
		}
		if info.IsDir() {
			continue
		}
		slog.Debug("discovered config file", "path", path)
		return Load(path)
	}
	return &Config{}, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	// degrade gracefully when home is unavailable
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	}
	return dirs
}

// Validate checks every non-empty field against the values the CLI accepts.
func (c *Config) Validate() error {
	if c.Part != "" {
		if _, err := version.ParseComponent(c.Part); err != nil {
			return invalid("part", c.Part, err)
		}
	}
	if c.Encoding != "" {
		if _, err := versionfile.ResolveEncoding(c.Encoding); err != nil {
			return invalid("encoding", c.Encoding, err)
		}
	}
	if c.Format != "" {
		if _, err := serializer.ParseFormat(c.Format); err != nil {
			return invalid("format", c.Format, err)
		}
	}
	return nil
}

func invalid(key, value string, err error) error {
	return fverrors.WrapWithContext(fverrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid config value for %s", key), err,
		map[string]any{"key": key, "value": value})
}
