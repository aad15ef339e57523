// Copyright 2025 walteh LLC
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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/splicerc/pkg/region"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes; filename is used for diagnostics
	Parse(ctx context.Context, filename string, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ✂️ Job describes one region splice
type Job struct {
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`                         // Display name, defaults to File
	File            string `json:"file" yaml:"file"`                                             // Target path or doublestar glob, relative to the config file
	StartMarker     string `json:"start_marker" yaml:"start_marker"`                             // Substring of the line that opens the region
	EndMarker       string `json:"end_marker" yaml:"end_marker"`                                 // Substring of the line that closes the region
	Replacement     string `json:"replacement,omitempty" yaml:"replacement,omitempty"`           // Inline replacement block
	ReplacementFile string `json:"replacement_file,omitempty" yaml:"replacement_file,omitempty"` // File holding the replacement block
	Mode            string `json:"mode,omitempty" yaml:"mode,omitempty"`                         // "replace" (default) or "remove"
}

// Markers returns the job's markers.
func (j Job) Markers() region.Markers {
	return region.Markers{Start: j.StartMarker, End: j.EndMarker}
}

// RegionMode returns the parsed mode. Validate has already rejected unknown values.
func (j Job) RegionMode() region.Mode {
	mode, err := region.ParseMode(j.Mode)
	if err != nil {
		return region.ModeReplace
	}
	return mode
}

// 📚 Config represents the complete configuration
type Config struct {
	Async bool  `json:"async,omitempty" yaml:"async,omitempty"`
	Jobs  []Job `json:"jobs" yaml:"jobs"`

	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, path, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Int("jobs", len(cfg.Jobs)).Bool("async", cfg.Async).Msg("configuration loaded")
	return cfg, nil
}

// Location returns the path the config was loaded from, empty if built in code.
func (cfg *Config) Location() string {
	return cfg.location
}

// Dir is the directory relative job paths resolve against.
func (cfg *Config) Dir() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// Resolve joins a relative path onto Dir.
func (cfg *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Dir(), path)
}

// 🔍 Validate checks if the configuration is valid and fills defaults
func (cfg *Config) Validate() error {
	if len(cfg.Jobs) == 0 {
		return errors.Errorf("at least one job is required")
	}

	names := make(map[string]bool, len(cfg.Jobs))
	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]

		if strings.TrimSpace(job.File) == "" {
			return errors.Errorf("job %d: file is required", i)
		}
		if job.StartMarker == "" {
			return errors.Errorf("job %d: start_marker is required", i)
		}
		if job.EndMarker == "" {
			return errors.Errorf("job %d: end_marker is required", i)
		}

		mode, err := region.ParseMode(job.Mode)
		if err != nil {
			return errors.Errorf("job %d: %w", i, err)
		}
		job.Mode = string(mode)

		switch mode {
		case region.ModeReplace:
			if job.Replacement != "" && job.ReplacementFile != "" {
				return errors.Errorf("job %d: replacement and replacement_file are mutually exclusive", i)
			}
			if job.Replacement == "" && job.ReplacementFile == "" {
				return errors.Errorf("job %d: replacement or replacement_file is required", i)
			}
		case region.ModeRemove:
			if job.Replacement != "" || job.ReplacementFile != "" {
				return errors.Errorf("job %d: mode %q takes no replacement", i, mode)
			}
		}

		job.File = filepath.Clean(job.File)
		if job.ReplacementFile != "" {
			job.ReplacementFile = filepath.Clean(job.ReplacementFile)
		}

		if job.Name == "" {
			job.Name = job.File
			if names[job.Name] {
				job.Name = fmt.Sprintf("%s#%d", job.File, i+1)
			}
		}
		if names[job.Name] {
			return errors.Errorf("job %d: duplicate name %q", i, job.Name)
		}
		names[job.Name] = true
	}

	return nil
}

// 📝 String returns a string representation of the job
func (j Job) String() string {
	return fmt.Sprintf("%s: %q..%q (%s)", j.File, j.StartMarker, j.EndMarker, j.RegionMode())
}
