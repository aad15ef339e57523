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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMarkerNotFound is returned when the scan finished without matching a marker.
	ErrMarkerNotFound = errors.Base("marker not found")

	// ErrInvertedRegion is returned when the start marker resolves at or after the end marker.
	ErrInvertedRegion = errors.Base("start marker does not precede end marker")
)

// 🔍 MarkerNotFoundError reports which markers the scan failed to match
type MarkerNotFoundError struct {
	Match Match
}

func (e *MarkerNotFoundError) Error() string {
	var missing []string
	if e.Match.Start == NotFound {
		missing = append(missing, fmt.Sprintf("start marker %q", e.Match.Markers.Start))
	}
	if e.Match.End == NotFound {
		missing = append(missing, fmt.Sprintf("end marker %q", e.Match.Markers.End))
	}
	return fmt.Sprintf("%s: %s (start=%d end=%d)", ErrMarkerNotFound.Error(), strings.Join(missing, ", "), e.Match.Start, e.Match.End)
}

// Is lets errors.Is match ErrMarkerNotFound.
func (e *MarkerNotFoundError) Is(target error) bool {
	return target == ErrMarkerNotFound
}

// StartMissing reports whether the start marker never matched.
func (e *MarkerNotFoundError) StartMissing() bool {
	return e.Match.Start == NotFound
}

// EndMissing reports whether the end marker never matched.
func (e *MarkerNotFoundError) EndMissing() bool {
	return e.Match.End == NotFound
}

// 🔄 InvertedRegionError reports a located pair that cannot bound a region
type InvertedRegionError struct {
	Match Match
}

func (e *InvertedRegionError) Error() string {
	return fmt.Sprintf("%s: start marker %q at line %d, end marker %q at line %d",
		ErrInvertedRegion.Error(), e.Match.Markers.Start, e.Match.Start+1, e.Match.Markers.End, e.Match.End+1)
}

// Is lets errors.Is match ErrInvertedRegion.
func (e *InvertedRegionError) Is(target error) bool {
	return target == ErrInvertedRegion
}
