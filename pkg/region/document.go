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

package region

import (
	"bytes"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Mode selects what happens to a located region
type Mode string

const (
	// ModeReplace drops the start line through the line before the end marker
	// and inserts the replacement block in their place.
	ModeReplace Mode = "replace"
	// ModeRemove drops the region including both marker lines.
	ModeRemove Mode = "remove"
)

// ParseMode maps a config value to a Mode. An empty string means ModeReplace.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeReplace:
		return ModeReplace, nil
	case ModeRemove:
		return ModeRemove, nil
	default:
		return "", errors.Errorf("unknown mode %q (want %q or %q)", s, ModeReplace, ModeRemove)
	}
}

// 📄 Document is a text file held as lines that keep their own terminators,
// so unchanged lines are written back byte for byte.
type Document struct {
	lines []string
}

// Parse splits data after every "\n". A final line without a terminator is kept as is.
func Parse(data []byte) *Document {
	if len(data) == 0 {
		return &Document{}
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Document{lines: lines}
}

// Read loads the whole of r into a Document.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("reading document: %w", err)
	}
	return Parse(data), nil
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns the line text without terminators.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = trimEOL(line)
	}
	return out
}

// Bytes joins the lines back together with their original terminators.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, line := range d.lines {
		buf.WriteString(line)
	}
	return buf.Bytes()
}

// LineEnding returns "\r\n" when most terminated lines use it, "\n" otherwise.
func (d *Document) LineEnding() string {
	var crlf, lf int
	for _, line := range d.lines {
		switch {
		case strings.HasSuffix(line, "\r\n"):
			crlf++
		case strings.HasSuffix(line, "\n"):
			lf++
		}
	}
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}

// Locate runs Locate over the document's line text.
func (d *Document) Locate(markers Markers) Match {
	return Locate(d.Lines(), markers)
}

// Replace locates markers and splices block over the region. A non-empty
// block that does not end in a line terminator gets the document's line
// ending appended so the end marker line stays on its own line.
func (d *Document) Replace(markers Markers, block string) (*Document, Match, error) {
	match := d.Locate(markers)
	if block != "" && !strings.HasSuffix(block, "\n") {
		block += d.LineEnding()
	}
	out, err := Splice(d.lines, match, block)
	if err != nil {
		return nil, match, err
	}
	return Parse([]byte(strings.Join(out, ""))), match, nil
}

// RemoveRegion locates markers and drops the region including both marker lines.
func (d *Document) RemoveRegion(markers Markers) (*Document, Match, error) {
	match := d.Locate(markers)
	out, err := Remove(d.lines, match)
	if err != nil {
		return nil, match, err
	}
	return &Document{lines: out}, match, nil
}

// Apply dispatches to Replace or RemoveRegion. block is ignored for ModeRemove.
func (d *Document) Apply(mode Mode, markers Markers, block string) (*Document, Match, error) {
	switch mode {
	case ModeReplace, "":
		return d.Replace(markers, block)
	case ModeRemove:
		return d.RemoveRegion(markers)
	default:
		return nil, Match{Markers: markers, Start: NotFound, End: NotFound}, errors.Errorf("unknown mode %q", mode)
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
