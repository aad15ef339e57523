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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines []string
	}{
		{
			name:      "lf",
			content:   "a\nb\nc\n",
			wantLines: []string{"a", "b", "c"},
		},
		{
			name:      "crlf",
			content:   "a\r\nb\r\n",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "no_trailing_newline",
			content:   "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "mixed_endings",
			content:   "a\r\nb\nc",
			wantLines: []string{"a", "b", "c"},
		},
		{
			name:      "blank_lines",
			content:   "\n\n",
			wantLines: []string{"", ""},
		},
		{
			name:      "empty",
			content:   "",
			wantLines: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			assert.Equal(t, tt.wantLines, doc.Lines())
			assert.Equal(t, len(tt.wantLines), doc.Len())
			assert.Equal(t, tt.content, string(doc.Bytes()), "bytes should round trip")
		})
	}
}

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, doc.Lines())
}

func TestLineEnding(t *testing.T) {
	assert.Equal(t, "\n", Parse([]byte("a\nb\n")).LineEnding())
	assert.Equal(t, "\r\n", Parse([]byte("a\r\nb\r\nc\n")).LineEnding())
	assert.Equal(t, "\n", Parse([]byte("a")).LineEnding())
	assert.Equal(t, "\n", Parse(nil).LineEnding())
}

func TestDocumentReplace(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		markers   Markers
		block     string
		want      string
		wantMatch Match
	}{
		{
			name:      "appends_line_ending_to_block",
			content:   "A\nstart X\nB\nend Y\nC\n",
			markers:   Markers{Start: "start", End: "end"},
			block:     "REPL",
			want:      "A\nREPL\nend Y\nC\n",
			wantMatch: Match{Start: 1, End: 3},
		},
		{
			name:      "multi_line_block_kept_verbatim",
			content:   "A\nstart X\nB\nend Y\n",
			markers:   Markers{Start: "start", End: "end"},
			block:     "start X\n  one\n  two\n",
			want:      "A\nstart X\n  one\n  two\nend Y\n",
			wantMatch: Match{Start: 1, End: 3},
		},
		{
			name:      "crlf_document",
			content:   "A\r\nstart\r\nB\r\nend\r\n",
			markers:   Markers{Start: "start", End: "end"},
			block:     "X",
			want:      "A\r\nX\r\nend\r\n",
			wantMatch: Match{Start: 1, End: 3},
		},
		{
			name:      "end_line_without_terminator",
			content:   "start\nold\nend",
			markers:   Markers{Start: "start", End: "end"},
			block:     "new",
			want:      "new\nend",
			wantMatch: Match{Start: 0, End: 2},
		},
		{
			name:      "empty_block_drops_region",
			content:   "A\nstart\nB\nend\n",
			markers:   Markers{Start: "start", End: "end"},
			block:     "",
			want:      "A\nend\n",
			wantMatch: Match{Start: 1, End: 3},
		},
		{
			name:      "unicode_payload",
			content:   "head\nstart\nend\n",
			markers:   Markers{Start: "start", End: "end"},
			block:     `const label = "บันทึกแผน (0/1)";`,
			want:      "head\nconst label = \"บันทึกแผน (0/1)\";\nend\n",
			wantMatch: Match{Start: 1, End: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			out, match, err := doc.Replace(tt.markers, tt.block)
			require.NoError(t, err)

			tt.wantMatch.Markers = tt.markers
			assert.Equal(t, tt.wantMatch, match)
			assert.Equal(t, tt.want, string(out.Bytes()))
			assert.Equal(t, tt.content, string(doc.Bytes()), "source document should be unchanged")
		})
	}
}

func TestDocumentReplaceIsNotIdempotent(t *testing.T) {
	markers := Markers{Start: "start", End: "end"}
	doc := Parse([]byte("A\nstart X\nB\nend Y\nC\n"))

	first, _, err := doc.Replace(markers, "REPL")
	require.NoError(t, err)

	_, match, err := first.Replace(markers, "REPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.Equal(t, NotFound, match.Start)
	assert.Equal(t, 2, match.End)
}

func TestDocumentReplaceNotFound(t *testing.T) {
	doc := Parse([]byte("A\nB\nC\n"))

	out, match, err := doc.Replace(Markers{Start: "start", End: "end"}, "REPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.Nil(t, out)
	assert.False(t, match.Found())
}

func TestDocumentRemoveRegion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantIs  error
	}{
		{
			name:    "inclusive_of_both_markers",
			content: "A\nstart\nB\nend\nC\n",
			want:    "A\nC\n",
		},
		{
			name:    "region_at_end_of_file",
			content: "A\nstart\nend",
			want:    "A\n",
		},
		{
			name:    "inverted",
			content: "start end\nB\n",
			wantIs:  ErrInvertedRegion,
		},
		{
			name:    "missing_end",
			content: "start\nB\n",
			wantIs:  ErrMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Parse([]byte(tt.content)).RemoveRegion(Markers{Start: "start", End: "end"})
			if tt.wantIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out.Bytes()))
		})
	}
}

func TestDocumentApply(t *testing.T) {
	doc := Parse([]byte("A\nstart\nB\nend\n"))
	markers := Markers{Start: "start", End: "end"}

	out, _, err := doc.Apply(ModeReplace, markers, "X")
	require.NoError(t, err)
	assert.Equal(t, "A\nX\nend\n", string(out.Bytes()))

	out, _, err = doc.Apply(ModeRemove, markers, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "A\n", string(out.Bytes()))

	_, _, err = doc.Apply(Mode("rewrite"), markers, "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "rewrite"`)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in        string
		want      Mode
		wantError string
	}{
		{in: "", want: ModeReplace},
		{in: "replace", want: ModeReplace},
		{in: " Remove ", want: ModeRemove},
		{in: "delete", wantError: `unknown mode "delete"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
