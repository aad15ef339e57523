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
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var diff bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Locate every configured region without writing",
		Long: `Check runs every job as a dry run and prints where each region was found.
It exits non-zero when a marker is missing or a start marker does not
precede its end marker, so it can guard apply in scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			runner, err := operation.NewRunner(operation.Options{
				Config:  opts.Config,
				Console: opts.Console,
				DryRun:  true,
				Async:   opts.Config.Async,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			results, runErr := runner.Run(ctx)

			opts.Console.LogNewline()
			ops := make([]log.SpliceOperation, 0, len(results))
			for _, res := range results {
				ops = append(ops, operation.ConsoleOperation(res, true))
			}
			if err := opts.Console.Table(ops); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			if diff {
				for _, res := range results {
					if d := res.Diff(); d != "" {
						opts.Console.Raw(d)
					}
				}
			}

			if runErr != nil {
				return errors.Errorf("checking regions: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&diff, "diff", false, "print the diff apply would make")

	return cmd
}
