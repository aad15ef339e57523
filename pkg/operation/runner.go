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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/region"
	"github.com/walteh/splicerc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrFileAborted marks a job whose splice succeeded but was not written
// because another job on the same file failed.
var ErrFileAborted = errors.Base("another job on the file failed")

// 🏃 Runner executes the jobs of a config
type Runner struct {
	opts     Options
	files    status.FileManager
	reporter status.StatusReporter
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}

	files := opts.Files
	if files == nil {
		files = status.New(opts.Config.Dir())
	}

	reporter := opts.Reporter
	if reporter == nil {
		if r, ok := files.(status.StatusReporter); ok {
			reporter = r
		}
	}

	return &Runner{
		opts:     opts,
		files:    files,
		reporter: reporter,
	}, nil
}

// 🏃 Run applies every job and returns one result per target in config order.
// Targets in the same file run in config order against the content left by
// the previous job. A failed target never writes; the error returned joins
// every failure.
func (r *Runner) Run(ctx context.Context) ([]*Result, error) {
	logger := zerolog.Ctx(ctx)

	targets, err := Resolve(r.opts.Config)
	if err != nil {
		return nil, errors.Errorf("resolving targets: %w", err)
	}

	if r.opts.Console != nil {
		r.opts.Console.StartRun(ctx, log.RunOperation{
			Config: r.opts.Config.Location(),
			Jobs:   len(r.opts.Config.Jobs),
			Async:  r.opts.Async,
			DryRun: r.opts.DryRun,
		})
		defer r.opts.Console.EndRun(ctx)
	}

	blocks := make([]string, len(r.opts.Config.Jobs))
	blockErrs := make([]error, len(r.opts.Config.Jobs))
	for i, job := range r.opts.Config.Jobs {
		blocks[i], blockErrs[i] = LoadReplacement(ctx, r.files, r.opts.Config, job)
	}

	groups := groupByPath(targets)
	results := make([]*Result, len(targets))

	logger.Debug().
		Int("targets", len(targets)).
		Int("files", len(groups)).
		Bool("async", r.opts.Async).
		Bool("dry_run", r.opts.DryRun).
		Msg("running splices")

	if r.opts.Async {
		g, gctx := errgroup.WithContext(ctx)
		for _, group := range groups {
			group := group // per-iteration copy; module targets go 1.21 (pre-1.22 loopvar semantics)
			g.Go(func() error {
				r.runGroup(gctx, targets, group, blocks, blockErrs, results)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return results, errors.Errorf("running splices: %w", err)
		}
	} else {
		for _, group := range groups {
			r.runGroup(ctx, targets, group, blocks, blockErrs, results)
		}
	}

	var errs []error
	for _, res := range results {
		if r.opts.Console != nil {
			r.opts.Console.LogSpliceOperation(ctx, ConsoleOperation(res, r.opts.DryRun))
		}
		if res.Err != nil {
			errs = append(errs, errors.WithDetails(
				errors.Errorf("job %q on %s: %w", res.Target.Job.Name, res.Target.Path, res.Err),
				"job", res.Target.Job.Name,
				"path", res.Target.Path,
				"start", res.Match.Start,
				"end", res.Match.End,
			))
		}
	}

	return results, errors.Join(errs...)
}

// runGroup runs the targets of one file, indexes into targets, in order. The
// file is written once, after every job in the group succeeded.
func (r *Runner) runGroup(ctx context.Context, targets []Target, group []int, blocks []string, blockErrs []error, results []*Result) {
	path := targets[group[0]].Path

	original, readErr := r.files.ReadFile(ctx, path)
	if readErr != nil {
		readErr = errors.Errorf("reading target %s: %w", path, readErr)
	}

	content := original
	failed := false
	for _, idx := range group {
		target := targets[idx]

		var res *Result
		switch {
		case ctx.Err() != nil:
			res = failedResult(target, content, ctx.Err())
		case readErr != nil:
			res = failedResult(target, nil, readErr)
		case blockErrs[target.Index] != nil:
			res = failedResult(target, content, blockErrs[target.Index])
		default:
			res = spliceContent(ctx, target, content, blocks[target.Index])
		}

		if res.Err != nil {
			failed = true
		} else if res.Modified != nil {
			content = res.Modified
		}

		results[idx] = res
	}

	switch {
	case r.opts.DryRun:
	case failed:
		for _, idx := range group {
			if res := results[idx]; res.Err == nil && res.Changed() {
				res.Err = errors.Errorf("%w: %s", ErrFileAborted, path)
			}
		}
	case !bytes.Equal(original, content):
		if err := r.files.WriteFileAtomic(ctx, path, content); err != nil {
			err = errors.Errorf("writing target %s: %w", path, err)
			for _, idx := range group {
				if res := results[idx]; res.Changed() {
					res.Err = err
				}
			}
		} else {
			for _, idx := range group {
				if res := results[idx]; res.Changed() {
					res.Written = true
				}
			}
		}
	}

	for _, idx := range group {
		r.track(ctx, results[idx])
	}
}

func (r *Runner) track(ctx context.Context, res *Result) {
	if r.reporter == nil {
		return
	}
	content := res.Modified
	if res.Err != nil || content == nil {
		content = res.Original
	}
	r.reporter.TrackFile(ctx, res.Target.Path, status.FileInfo{
		Status:   res.Status(),
		Size:     int64(len(content)),
		Checksum: status.Checksum(content),
		Error:    res.Err,
	})
}

// groupByPath returns target indexes grouped by file, in order of first appearance
func groupByPath(targets []Target) [][]int {
	var groups [][]int
	byPath := map[string]int{}
	for i, t := range targets {
		g, ok := byPath[t.Path]
		if !ok {
			g = len(groups)
			byPath[t.Path] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// ConsoleOperation converts a result into a console line.
func ConsoleOperation(res *Result, dryRun bool) log.SpliceOperation {
	op := log.SpliceOperation{
		Path:          res.Target.Path,
		Job:           res.Target.Job.Name,
		Status:        res.Label(),
		LinesRemoved:  res.LinesRemoved,
		LinesInserted: res.LinesInserted,
		IsModified:    res.Changed(),
		IsFailed:      res.Err != nil,
		IsDryRun:      dryRun,
	}
	if res.Match.Start != region.NotFound {
		op.StartLine = res.Match.Start + 1
	}
	if res.Match.End != region.NotFound {
		op.EndLine = res.Match.End + 1
	}
	return op
}

// failedResult is a result for a target that never reached the scan
func failedResult(target Target, original []byte, err error) *Result {
	return &Result{
		Target:   target,
		Match:    region.Match{Markers: target.Job.Markers(), Start: region.NotFound, End: region.NotFound},
		Original: original,
		Err:      err,
	}
}

// Summary counts results by status.
func Summary(results []*Result) string {
	counts := map[status.FileStatus]int{}
	for _, res := range results {
		counts[res.Status()]++
	}
	return fmt.Sprintf("%d spliced, %d pending, %d unchanged, %d failed",
		counts[status.StatusSpliced], counts[status.StatusPending], counts[status.StatusUnchanged], counts[status.StatusFailed])
}
