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

package monitor

import (
	"sync"
	"time"

	"github.com/flxj/mstdc/bb"
)

// Run tracks the live and final state of solving a single instance.
// It satisfies bb.StatusPublisher[int], so it can be handed directly
// to bb.WithStatusPublisher or bench.InstanceSolver.
type Run struct {
	mu          sync.RWMutex
	description string
	snapshot    bb.StatusSnapshot[int]
	done        bool
	feasible    bool
	cost        int
	startedAt   time.Time
	finishedAt  time.Time
}

// NewRun starts tracking a run named description.
func NewRun(description string) *Run {
	return &Run{description: description, startedAt: time.Now()}
}

// Publish satisfies bb.StatusPublisher[int].
func (r *Run) Publish(s bb.StatusSnapshot[int]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}

// Finish records the final outcome of the run.
func (r *Run) Finish(feasible bool, cost int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = true
	r.feasible = feasible
	r.cost = cost
	r.finishedAt = time.Now()
}

// RunInfo is the JSON-serializable snapshot of a Run.
type RunInfo struct {
	Description     string  `json:"description"`
	Done            bool    `json:"done"`
	Feasible        bool    `json:"feasible"`
	Cost            int     `json:"cost,omitempty"`
	LowerBound      *int    `json:"lower_bound,omitempty"`
	UpperBound      *int    `json:"upper_bound,omitempty"`
	OpenSubproblems int     `json:"open_subproblems"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
}

// Info returns the current state of r.
func (r *Run) Info() RunInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	elapsed := r.snapshot.Elapsed
	if r.done {
		elapsed = r.finishedAt.Sub(r.startedAt)
	}
	return RunInfo{
		Description:     r.description,
		Done:            r.done,
		Feasible:        r.feasible,
		Cost:            r.cost,
		LowerBound:      r.snapshot.LowerBound,
		UpperBound:      r.snapshot.UpperBound,
		OpenSubproblems: r.snapshot.OpenSubproblems,
		ElapsedSeconds:  elapsed.Seconds(),
	}
}
