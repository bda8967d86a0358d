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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flxj/mstdc/graph"
	"github.com/flxj/mstdc/instance"
)

func writeSampleTriple(t *testing.T, dir, suffix string) {
	t.Helper()
	wg := graph.NewWeighted(3)
	wg.AddEdge(0, 1)
	wg.SetEdgeWeight(0, 1, 1)
	wg.AddEdge(1, 2)
	wg.SetEdgeWeight(1, 2, 2)
	d := graph.NewDigraph(wg.NumEdges())
	lb, ub := instance.Bounds{}, instance.Bounds{}
	for _, e := range wg.Edges() {
		lb[e] = 0
		ub[e] = 2
	}
	ins, err := instance.New(wg, d, lb, ub)
	if err != nil {
		t.Fatalf("instance.New: %v", err)
	}
	if err := ins.ToFiles(
		filepath.Join(dir, graphPrefix+suffix),
		filepath.Join(dir, digraphPrefix+suffix),
		filepath.Join(dir, boundsPrefix+suffix),
	); err != nil {
		t.Fatalf("ToFiles: %v", err)
	}
}

func TestDiscoverInstancesFindsCompleteTriplesOnly(t *testing.T) {
	dir := t.TempDir()
	writeSampleTriple(t, dir, "30_0.5_2-0")

	// an incomplete triple missing its bounds file
	os.WriteFile(filepath.Join(dir, graphPrefix+"incomplete"), []byte("1\n"), 0o644)
	os.WriteFile(filepath.Join(dir, digraphPrefix+"incomplete"), []byte("0\n"), 0o644)

	suffixes, err := DiscoverInstances(dir)
	if err != nil {
		t.Fatalf("DiscoverInstances: %v", err)
	}
	if len(suffixes) != 1 || suffixes[0] != "30_0.5_2-0" {
		t.Fatalf("suffixes = %v, want exactly [30_0.5_2-0]", suffixes)
	}
}

func TestRunSuiteWritesHeaderAndSkipsAlreadyPresent(t *testing.T) {
	dir := t.TempDir()
	writeSampleTriple(t, dir, "a")
	writeSampleTriple(t, dir, "b")

	outputCSV := filepath.Join(dir, "results.csv")
	solved, err := RunSuite(dir, outputCSV, 1, nil)
	if err != nil {
		t.Fatalf("RunSuite: %v", err)
	}
	if solved != 2 {
		t.Fatalf("solved = %d, want 2", solved)
	}

	content, err := os.ReadFile(outputCSV)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want a header plus 2 results: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "description status solution_cost time_seconds") {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	// a second run over the same directory and output must re-solve
	// nothing, since both suffixes are already recorded.
	solved, err = RunSuite(dir, outputCSV, 1, nil)
	if err != nil {
		t.Fatalf("second RunSuite: %v", err)
	}
	if solved != 0 {
		t.Fatalf("second run solved = %d, want 0", solved)
	}

	content, err = os.ReadFile(outputCSV)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	count := 0
	for scanner.Scan() {
		count++
	}
	if count != 3 {
		t.Fatalf("line count after second run = %d, want 3 (no duplicate appends)", count)
	}
}
