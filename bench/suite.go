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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flxj/mstdc/instance"
	"github.com/flxj/mstdc/monitor"
)

const (
	graphPrefix   = "G_"
	digraphPrefix = "D_"
	boundsPrefix  = "B_"
)

// DiscoverInstances scans dir for filename triples G_<suffix>,
// D_<suffix> and B_<suffix> sharing the same suffix, returning the
// suffixes for which all three files are present, sorted.
func DiscoverInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	have := map[string]map[string]bool{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasPrefix(name, graphPrefix):
			mark(have, strings.TrimPrefix(name, graphPrefix), graphPrefix)
		case strings.HasPrefix(name, digraphPrefix):
			mark(have, strings.TrimPrefix(name, digraphPrefix), digraphPrefix)
		case strings.HasPrefix(name, boundsPrefix):
			mark(have, strings.TrimPrefix(name, boundsPrefix), boundsPrefix)
		}
	}

	var suffixes []string
	for suffix, prefixes := range have {
		if prefixes[graphPrefix] && prefixes[digraphPrefix] && prefixes[boundsPrefix] {
			suffixes = append(suffixes, suffix)
		}
	}
	sort.Strings(suffixes)
	return suffixes, nil
}

func mark(have map[string]map[string]bool, suffix, prefix string) {
	if have[suffix] == nil {
		have[suffix] = map[string]bool{}
	}
	have[suffix][prefix] = true
}

// RunSuite discovers every complete instance triple in dir, skips any
// suffix already recorded in outputCSV, solves the rest with
// numWorkers workers and appends their results to outputCSV. It
// returns the number of instances it solved. When mon is non-nil,
// each instance is tracked as the service's current run for the
// duration of its solve.
func RunSuite(dir, outputCSV string, numWorkers int, mon *monitor.Service) (int, error) {
	suffixes, err := DiscoverInstances(dir)
	if err != nil {
		return 0, err
	}

	already := map[string]bool{}
	needsHeader := true
	if existing, err := os.Open(outputCSV); err == nil {
		already = readDescriptions(existing)
		needsHeader = false
		existing.Close()
	} else if !os.IsNotExist(err) {
		return 0, err
	}

	out, err := os.OpenFile(outputCSV, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	if needsHeader {
		if err := WriteHeader[mstdcSolvingInfo](out, mstdcSolvingInfo{}); err != nil {
			return 0, err
		}
	}

	solved := 0
	for _, suffix := range suffixes {
		if already[suffix] {
			continue
		}
		ins, err := instance.FromFiles(
			filepath.Join(dir, graphPrefix+suffix),
			filepath.Join(dir, digraphPrefix+suffix),
			filepath.Join(dir, boundsPrefix+suffix),
		)
		if err != nil {
			return solved, fmt.Errorf("loading instance %s: %w", suffix, err)
		}

		solver := InstanceSolver{Instance: ins, NumWorkers: numWorkers}
		var run *monitor.Run
		if mon != nil {
			run = mon.Begin(suffix)
			solver.Publisher = run
		}

		result := Run[mstdcSolvingInfo](solver)

		if run != nil {
			run.Finish(result.Info.feasible, result.Info.cost)
			mon.EndCurrent()
		}

		if err := WriteResult(out, suffix, result); err != nil {
			return solved, fmt.Errorf("writing result for %s: %w", suffix, err)
		}
		solved++
	}
	return solved, nil
}
