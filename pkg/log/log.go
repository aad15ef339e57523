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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	jobWidth    = 20 // Width for job name
	statusWidth = 15 // Width for status text
)

// ✂️ SpliceOperation represents one job applied to one file
type SpliceOperation struct {
	Path          string // Target file path
	Job           string // Job name
	Status        string // Operation status
	StartLine     int    // 1-based start marker line, 0 when not found
	EndLine       int    // 1-based end marker line, 0 when not found
	LinesRemoved  int    // Lines dropped from the original
	LinesInserted int    // Lines added from the replacement block
	IsModified    bool   // Whether the file content changed
	IsFailed      bool   // Whether the job failed
	IsDryRun      bool   // Whether the change was computed but not written
}

// Region formats the located line range for display.
func (op SpliceOperation) Region() string {
	start, end := "?", "?"
	if op.StartLine > 0 {
		start = fmt.Sprintf("%d", op.StartLine)
	}
	if op.EndLine > 0 {
		end = fmt.Sprintf("%d", op.EndLine)
	}
	return fmt.Sprintf("L%s-L%s", start, end)
}

// 📦 RunOperation represents a run over one config file
type RunOperation struct {
	Config string // Config file path
	Jobs   int    // Number of jobs in the config
	Async  bool   // Whether jobs run concurrently
	DryRun bool   // Whether writes are skipped
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []SpliceOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger that mirrors console lines to zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatSpliceOperation formats a splice operation for display
func (l *Logger) formatSpliceOperation(op SpliceOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsModified && op.IsDryRun:
		symbol = '~'
		symbolColor = color.FgYellow
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgMagenta).Sprint(fmt.Sprintf("%-*s", jobWidth, op.Job)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogSpliceOperation logs a splice operation
func (l *Logger) LogSpliceOperation(ctx context.Context, op SpliceOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatSpliceOperation(op))

	ev := l.zlog.Info()
	if op.IsFailed {
		ev = l.zlog.Warn()
	}
	ev.Str("file", op.Path).
		Str("job", op.Job).
		Str("status", op.Status).
		Int("start_line", op.StartLine).
		Int("end_line", op.EndLine).
		Int("lines_removed", op.LinesRemoved).
		Int("lines_inserted", op.LinesInserted).
		Bool("is_modified", op.IsModified).
		Bool("is_failed", op.IsFailed).
		Bool("is_dry_run", op.IsDryRun).
		Msg("splice operation")
}

// 📝 StartRun starts a new run
func (l *Logger) StartRun(ctx context.Context, run RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &run
	l.operations = nil

	verb := "splicing"
	if run.DryRun {
		verb = "checking"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb, color.New(color.FgCyan).Sprint(run.Config))

	l.zlog.Info().
		Str("config", run.Config).
		Int("jobs", run.Jobs).
		Bool("async", run.Async).
		Bool("dry_run", run.DryRun).
		Msg("starting run")
}

// 📝 EndRun ends the current run and returns the operations logged during it
func (l *Logger) EndRun(ctx context.Context) []SpliceOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return nil
	}

	ops := l.operations
	var failed, modified int
	for _, op := range ops {
		if op.IsFailed {
			failed++
		} else if op.IsModified {
			modified++
		}
	}

	l.zlog.Info().
		Str("config", l.currentRun.Config).
		Int("files", len(ops)).
		Int("modified", modified).
		Int("failed", failed).
		Msg("run complete")

	l.currentRun = nil
	l.operations = nil
	return ops
}

// 📊 Table renders operations as a table
func (l *Logger) Table(ops []SpliceOperation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{{"File", "Job", "Region", "Removed", "Inserted", "Status"}}
	for _, op := range ops {
		data = append(data, []string{
			op.Path,
			op.Job,
			op.Region(),
			fmt.Sprintf("%d", op.LinesRemoved),
			fmt.Sprintf("%d", op.LinesInserted),
			op.Status,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(l.console).Render()
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Raw writes text to the console as is
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("splicerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
