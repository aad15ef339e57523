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

package operation

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/splicerc/pkg/config"
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/region"
	"github.com/walteh/splicerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config holds the jobs to run
	Config *config.Config
	// Files reads and writes targets, defaults to a status.Manager rooted at the config dir
	Files status.FileManager
	// Reporter records per-file outcomes, defaults to Files when it implements status.StatusReporter
	Reporter status.StatusReporter
	// Console receives one line per target, optional
	Console *log.Logger
	// DryRun computes splices without writing
	DryRun bool
	// Async runs targets in different files concurrently
	Async bool
}

// 🎯 Target is one job resolved against one file
type Target struct {
	Job   config.Job
	Index int    // position of Job in the config
	Path  string // file path, already resolved against the config dir
}

// 📦 Result is the outcome of one target
type Result struct {
	Target        Target
	Match         region.Match
	Original      []byte
	Modified      []byte
	LinesRemoved  int
	LinesInserted int
	Written       bool
	Err           error
}

// Changed reports whether the splice succeeded and produced different content.
func (r *Result) Changed() bool {
	return r.Err == nil && !bytes.Equal(r.Original, r.Modified)
}

// Status maps the result onto a status.FileStatus.
func (r *Result) Status() status.FileStatus {
	switch {
	case r.Err != nil:
		return status.StatusFailed
	case !r.Changed():
		return status.StatusUnchanged
	case r.Written:
		return status.StatusSpliced
	default:
		return status.StatusPending
	}
}

// Label is the short status shown on the console.
func (r *Result) Label() string {
	switch {
	case errors.Is(r.Err, region.ErrMarkerNotFound):
		return "NOT FOUND"
	case errors.Is(r.Err, region.ErrInvertedRegion):
		return "INVERTED"
	case errors.Is(r.Err, ErrFileAborted):
		return "ABORTED"
	case r.Err != nil:
		return "ERROR"
	case !r.Changed():
		return "UNCHANGED"
	case r.Written:
		return "SPLICED"
	default:
		return "WOULD SPLICE"
	}
}

// 🔍 Resolve expands every job into targets. A job file containing glob
// metacharacters is matched with doublestar and must match at least one file.
func Resolve(cfg *config.Config) ([]Target, error) {
	var targets []Target
	for i, job := range cfg.Jobs {
		pattern := cfg.Resolve(job.File)

		if !strings.ContainsAny(job.File, "*?[{") {
			targets = append(targets, Target{Job: job, Index: i, Path: pattern})
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("job %q: matching %s: %w", job.Name, pattern, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("job %q: no files match %s", job.Name, pattern)
		}
		sort.Strings(matches)

		for _, match := range matches {
			targets = append(targets, Target{Job: job, Index: i, Path: match})
		}
	}
	return targets, nil
}

// 📄 LoadReplacement returns the block a job inserts
func LoadReplacement(ctx context.Context, files status.FileManager, cfg *config.Config, job config.Job) (string, error) {
	if job.RegionMode() == region.ModeRemove {
		return "", nil
	}
	if job.ReplacementFile == "" {
		return job.Replacement, nil
	}

	data, err := files.ReadFile(ctx, cfg.Resolve(job.ReplacementFile))
	if err != nil {
		return "", errors.Errorf("loading replacement for job %q: %w", job.Name, err)
	}
	return string(data), nil
}
