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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestResultDiff(t *testing.T) {
	res := &Result{
		Target:   Target{Path: "page.tsx"},
		Original: []byte("A\nstart X\nB\nend Y\nC\n"),
		Modified: []byte("A\nREPL\nend Y\nC\n"),
	}

	want := "--- page.tsx\n+++ page.tsx\n@@ -1,5 +1,4 @@\n A\n-start X\n-B\n+REPL\n end Y\n C\n"
	assert.Equal(t, want, res.Diff())
}

func TestResultDiffCollapsesContext(t *testing.T) {
	var head, tail []string
	for i := 0; i < 10; i++ {
		head = append(head, fmt.Sprintf("h%d\n", i))
		tail = append(tail, fmt.Sprintf("t%d\n", i))
	}
	original := strings.Join(head, "") + "start\nold\nend\n" + strings.Join(tail, "")
	modified := strings.Join(head, "") + "new\nend\n" + strings.Join(tail, "")

	res := &Result{Target: Target{Path: "f"}, Original: []byte(original), Modified: []byte(modified)}

	want := "--- f\n+++ f\n@@ -8,8 +8,7 @@\n h7\n h8\n h9\n-start\n-old\n+new\n end\n t0\n t1\n"
	assert.Equal(t, want, res.Diff())
}

func TestResultDiffManyUniqueLines(t *testing.T) {
	var before, after []string
	for i := 0; i < 40; i++ {
		before = append(before, fmt.Sprintf("line %d\n", i))
	}
	after = append(after, before[:25]...)
	after = append(after, "spliced\n")
	after = append(after, before[26:]...)

	res := &Result{Target: Target{Path: "f"}, Original: []byte(strings.Join(before, "")), Modified: []byte(strings.Join(after, ""))}

	want := "--- f\n+++ f\n@@ -23,7 +23,7 @@\n line 22\n line 23\n line 24\n-line 25\n+spliced\n line 26\n line 27\n line 28\n"
	assert.Equal(t, want, res.Diff())
}

func TestResultDiffSeparateHunks(t *testing.T) {
	var before []string
	for i := 0; i < 20; i++ {
		before = append(before, fmt.Sprintf("l%d\n", i))
	}
	after := append([]string{}, before...)
	after[1] = "first\n"
	after[18] = "second\n"

	res := &Result{Target: Target{Path: "f"}, Original: []byte(strings.Join(before, "")), Modified: []byte(strings.Join(after, ""))}

	want := "--- f\n+++ f\n" +
		"@@ -1,5 +1,5 @@\n l0\n-l1\n+first\n l2\n l3\n l4\n" +
		"@@ -16,5 +16,5 @@\n l15\n l16\n l17\n-l18\n+second\n l19\n"
	assert.Equal(t, want, res.Diff())
}

func TestResultDiffEmpty(t *testing.T) {
	same := &Result{Original: []byte("a\n"), Modified: []byte("a\n")}
	assert.Empty(t, same.Diff(), "unchanged results have no diff")

	failed := &Result{Original: []byte("a\n"), Err: errors.New("boom")}
	assert.Empty(t, failed.Diff(), "failed results have no diff")
}
