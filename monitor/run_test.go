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
	"testing"

	"github.com/flxj/mstdc/bb"
)

func TestRunPublishUpdatesSnapshot(t *testing.T) {
	r := NewRun("instance-1")
	lb, ub := 3, 9
	r.Publish(bb.StatusSnapshot[int]{LowerBound: &lb, UpperBound: &ub, OpenSubproblems: 4})

	info := r.Info()
	if info.Done {
		t.Fatalf("a published run should not be marked done")
	}
	if info.LowerBound == nil || *info.LowerBound != 3 {
		t.Fatalf("LowerBound = %v, want 3", info.LowerBound)
	}
	if info.OpenSubproblems != 4 {
		t.Fatalf("OpenSubproblems = %d, want 4", info.OpenSubproblems)
	}
}

func TestRunFinishMarksDone(t *testing.T) {
	r := NewRun("instance-2")
	r.Finish(true, 42)

	info := r.Info()
	if !info.Done || !info.Feasible || info.Cost != 42 {
		t.Fatalf("Info() = %+v, want done feasible cost 42", info)
	}
}

func TestServiceBeginAndEndCurrentMovesToHistory(t *testing.T) {
	s := NewService("127.0.0.1", 0)

	r := s.Begin("instance-3")
	r.Finish(true, 7)
	s.EndCurrent()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil {
		t.Fatalf("current run should be cleared after EndCurrent")
	}
	if len(s.history) != 1 || s.history[0].Description != "instance-3" {
		t.Fatalf("history = %+v, want one entry for instance-3", s.history)
	}
}
