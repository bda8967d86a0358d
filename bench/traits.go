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
	"fmt"
	"time"
)

// Header names the space-separated columns a SolvingInfo renders.
type Header interface {
	Header() string
}

// SolvingInfo is the per-instance outcome of a solve: it renders its
// own result line and names its own column header, so callers never
// need to special-case a particular solver's result type.
type SolvingInfo interface {
	fmt.Stringer
	Header
}

// Solver produces a SolvingInfo for a single instance.
type Solver[I SolvingInfo] interface {
	Solve() I
}

// Result pairs a solve's wall-clock duration with its SolvingInfo.
type Result[I SolvingInfo] struct {
	Duration time.Duration
	Info     I
}

// Run times a single Solve call.
func Run[I SolvingInfo](s Solver[I]) Result[I] {
	start := time.Now()
	info := s.Solve()
	return Result[I]{Duration: time.Since(start), Info: info}
}
