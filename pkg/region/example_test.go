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

package region_test

import (
	"fmt"
	"strings"

	"github.com/walteh/splicerc/pkg/region"
)

func ExampleSplice() {
	lines := []string{"A", "start X", "B", "end Y", "C"}

	match := region.Locate(lines, region.Markers{Start: "start", End: "end"})
	out, err := region.Splice(lines, match, "REPL")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Match: start=%d end=%d\n", match.Start, match.End)
	fmt.Printf("Output: %s\n", strings.Join(out, ","))

	// Output:
	// Match: start=1 end=3
	// Output: A,REPL,end Y,C
}

func ExampleDocument_Replace() {
	doc := region.Parse([]byte("A\nB\nC\n"))

	_, _, err := doc.Replace(region.Markers{Start: "start", End: "C"}, "REPL")
	fmt.Printf("Error: %v\n", err)

	// Output:
	// Error: marker not found: start marker "start" (start=-1 end=2)
}
