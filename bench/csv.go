/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package bench

import (
	"bufio"
	"fmt"
	"io"
)

// WriteHeader writes the column header line: "description", the
// zero value's own Header(), then "time_seconds".
func WriteHeader[I SolvingInfo](w io.Writer, zero I) error {
	_, err := fmt.Fprintf(w, "description %s time_seconds\n", zero.Header())
	return err
}

// WriteResult writes a single result line: description, the info's
// own rendering, then the duration in seconds.
func WriteResult[I SolvingInfo](w io.Writer, description string, r Result[I]) error {
	_, err := fmt.Fprintf(w, "%s %s %g\n", description, r.Info.String(), r.Duration.Seconds())
	return err
}

// readDescriptions returns the set of description values already
// present as the first column of every non-header line of r.
func readDescriptions(r io.Reader) map[string]bool {
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		line := scanner.Text()
		var desc string
		if _, err := fmt.Sscanf(line, "%s", &desc); err == nil {
			seen[desc] = true
		}
	}
	return seen
}
