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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/splicerc/pkg/region"
)

// ✂️ spliceContent applies one target's job to content in memory
func spliceContent(ctx context.Context, target Target, content []byte, block string) *Result {
	logger := zerolog.Ctx(ctx).With().
		Str("job", target.Job.Name).
		Str("file", target.Path).
		Logger()

	result := &Result{
		Target:   target,
		Original: content,
	}

	doc := region.Parse(content)
	markers := target.Job.Markers()
	mode := target.Job.RegionMode()

	out, match, err := doc.Apply(mode, markers, block)
	result.Match = match

	starts, laterEnds := region.Candidates(doc.Lines(), markers)
	if starts > 1 {
		logger.Warn().
			Int("start_candidates", starts).
			Int("start", match.Start).
			Int("end", match.End).
			Msg("ambiguous start marker, using the last one before the first end marker")
	}
	if laterEnds > 0 {
		logger.Debug().
			Int("later_end_markers", laterEnds).
			Int("end", match.End).
			Msg("end marker repeats below the region")
	}

	if err != nil {
		logger.Debug().Err(err).Int("start", match.Start).Int("end", match.End).Msg("splice failed")
		result.Err = err
		return result
	}

	result.Modified = out.Bytes()
	switch mode {
	case region.ModeRemove:
		result.LinesRemoved = match.End - match.Start + 1
	default:
		result.LinesRemoved = match.End - match.Start
		result.LinesInserted = region.Parse([]byte(block)).Len()
	}

	logger.Debug().
		Int("start", match.Start).
		Int("end", match.End).
		Int("lines_removed", result.LinesRemoved).
		Int("lines_inserted", result.LinesInserted).
		Msg("spliced region")

	return result
}
