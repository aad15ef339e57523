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
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffContext is the number of unchanged lines kept around each change.
const DiffContext = 3

// 📝 Diff renders the change as a unified diff with DiffContext lines of
// context. It is empty when the result failed or changed nothing.
func (r *Result) Diff() string {
	if !r.Changed() {
		return ""
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(string(r.Original)),
		B:        diffLines(string(r.Modified)),
		FromFile: r.Target.Path,
		ToFile:   r.Target.Path,
		Context:  DiffContext,
	})
	if err != nil {
		return ""
	}
	return out
}

// diffLines splits text into lines that all end in a newline
func diffLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n"
	return lines
}
