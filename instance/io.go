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

package instance

import (
	"bufio"
	"fmt"
	"os"

	"github.com/flxj/mstdc/graph"
)

// ToFiles writes the instance as three text files: graphFile holds
// the weighted graph, depFile holds the dependency digraph, and
// boundsFile holds one "u v l u" line per edge of G.
func (ins *Instance) ToFiles(graphFile, depFile, boundsFile string) error {
	if err := ins.g.ToFile(graphFile); err != nil {
		return err
	}
	if err := ins.d.ToFile(depFile); err != nil {
		return err
	}

	f, err := os.Create(boundsFile)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range ins.g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", e.U, e.V, ins.LowerBound(e), ins.UpperBound(e)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// FromFiles reads an instance written by (*Instance).ToFiles.
func FromFiles(graphFile, depFile, boundsFile string) (*Instance, error) {
	g, err := graph.WeightedGraphFromFile(graphFile)
	if err != nil {
		return nil, fmt.Errorf("instance: reading graph file %s: %w", graphFile, err)
	}
	d, err := graph.DigraphFromFile(depFile)
	if err != nil {
		return nil, fmt.Errorf("instance: reading dependency file %s: %w", depFile, err)
	}

	f, err := os.Open(boundsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lb, ub := make(Bounds), make(Bounds)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var u, v, l, up int
		if _, err := fmt.Sscanf(line, "%d %d %d %d", &u, &v, &l, &up); err != nil {
			return nil, fmt.Errorf("instance: parsing %s: %w", boundsFile, err)
		}
		e := graph.NewEdge(u, v)
		lb[e] = l
		ub[e] = up
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(g, d, lb, ub)
}
