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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/splicerc/cmd/splicerc/opts"
	"github.com/walteh/splicerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		async  bool
		dryRun bool
		diff   bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Splice every configured region",
		Long: `Apply rewrites each target file in place.
It will:
1. Resolve every job's file (globs allowed)
2. Locate the start and end markers
3. Replace the region, keeping the end marker line
4. Write the file atomically, or leave it untouched on any failure

Running apply twice fails the second time: the start marker line is gone
unless the replacement block re-emits it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			runner, err := operation.NewRunner(operation.Options{
				Config:  opts.Config,
				Console: opts.Console,
				DryRun:  dryRun,
				Async:   async || opts.Config.Async,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			results, runErr := runner.Run(ctx)

			if diff {
				for _, res := range results {
					if d := res.Diff(); d != "" {
						opts.Console.Raw(d)
					}
				}
			}

			if runErr != nil {
				opts.Console.Errorf("%s", operation.Summary(results))
				return errors.Errorf("applying splices: %w", runErr)
			}

			opts.Console.Successf("%s", operation.Summary(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "splice different files concurrently")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute splices without writing")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a diff of every change")

	return cmd
}
