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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// NotFound is the index recorded for a marker the scan never matched.
const NotFound = -1

// 📍 Markers are the literal substrings that bound a region
type Markers struct {
	Start string // contained in the line that opens the region (dropped on splice)
	End   string // contained in the line that closes the region (kept on splice)
}

// 🎯 Match is the result of a single Locate scan
type Match struct {
	Markers Markers
	Start   int // zero-based index of the last start marker line, or NotFound
	End     int // zero-based index of the first end marker line, or NotFound
}

// Found reports whether both markers matched.
func (m Match) Found() bool {
	return m.Start != NotFound && m.End != NotFound
}

// Validate returns a *MarkerNotFoundError when either marker is missing and
// an *InvertedRegionError when the start line does not precede the end line.
func (m Match) Validate() error {
	if !m.Found() {
		return &MarkerNotFoundError{Match: m}
	}
	if m.Start >= m.End {
		return &InvertedRegionError{Match: m}
	}
	return nil
}

// 🔍 Locate scans lines once, top to bottom.
//
// Every line containing the start marker overwrites Start, so the last one
// seen wins. The first line containing the end marker sets End and stops the
// scan; start markers below it are never seen. A line holding both markers
// records Start before the scan stops on it.
//
// Ambiguous markers are not an error. They resolve silently by the rules
// above, which can select the wrong line when a marker is not unique.
func Locate(lines []string, markers Markers) Match {
	match := Match{Markers: markers, Start: NotFound, End: NotFound}
	for i, line := range lines {
		if strings.Contains(line, markers.Start) {
			match.Start = i
		}
		if strings.Contains(line, markers.End) {
			match.End = i
			break
		}
	}
	return match
}

// ✂️ Splice returns lines[:Start] + block + lines[End:].
//
// The start marker line is dropped since the block is expected to re-emit
// it. The end marker line is kept verbatim as the first line of the tail.
// The input slice is not modified.
func Splice(lines []string, match Match, block string) ([]string, error) {
	if err := match.Validate(); err != nil {
		return nil, err
	}
	if match.End >= len(lines) {
		return nil, errors.Errorf("end marker index %d out of range for %d lines", match.End, len(lines))
	}

	out := make([]string, 0, match.Start+1+len(lines)-match.End)
	out = append(out, lines[:match.Start]...)
	out = append(out, block)
	out = append(out, lines[match.End:]...)
	return out, nil
}

// 🗑️ Remove returns lines with the region dropped, both marker lines included.
func Remove(lines []string, match Match) ([]string, error) {
	if err := match.Validate(); err != nil {
		return nil, err
	}
	if match.End >= len(lines) {
		return nil, errors.Errorf("end marker index %d out of range for %d lines", match.End, len(lines))
	}

	out := make([]string, 0, len(lines)-(match.End-match.Start+1))
	out = append(out, lines[:match.Start]...)
	out = append(out, lines[match.End+1:]...)
	return out, nil
}

// Candidates counts the start marker lines the scan visited and the end
// marker lines below the one it stopped at. starts above one means Locate
// resolved an ambiguous start marker. later end markers are never reached.
func Candidates(lines []string, markers Markers) (starts, laterEnds int) {
	stopped := false
	for _, line := range lines {
		if stopped {
			if strings.Contains(line, markers.End) {
				laterEnds++
			}
			continue
		}
		if strings.Contains(line, markers.Start) {
			starts++
		}
		if strings.Contains(line, markers.End) {
			stopped = true
		}
	}
	return starts, laterEnds
}
