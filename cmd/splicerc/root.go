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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/splicerc/cmd/splicerc/commands"
	"github.com/walteh/splicerc/cmd/splicerc/opts"
	"github.com/walteh/splicerc/pkg/config"
	"github.com/walteh/splicerc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree. Config loading waits for flag parsing.
func newRootCmd() *cobra.Command {
	var (
		configFile string
		debug      bool
	)

	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "splicerc",
		Short: "Replace marker-delimited regions in text files",
		Long: `splicerc rewrites the lines between a start marker and an end marker in a file.
The start marker line is replaced by the block, the end marker line is kept.
Markers are plain substrings: the last start marker before the first end marker wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), debug)
			cmd.SetContext(ctx)

			if err := newRootOpts(ctx, rootOpts, configFile, cmd.OutOrStdout()); err != nil {
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".splicerc.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// newRootOpts loads the config and the console logger into o
func newRootOpts(ctx context.Context, o *opts.RootOpts, configFile string, console io.Writer) error {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// console lines are already on screen, mirror them only when debugging
	mirror := zerolog.Ctx(ctx).With().Str("component", "console").Logger()
	if mirror.GetLevel() > zerolog.DebugLevel {
		mirror = mirror.Level(zerolog.WarnLevel)
	}

	o.ConfigFile = configFile
	o.Config = cfg
	o.Console = log.NewWithZerolog(console, mirror)
	return nil
}

// setupLogging configures zerolog and returns ctx carrying the logger
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
