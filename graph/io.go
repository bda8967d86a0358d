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

package graph

import (
	"bufio"
	"fmt"
	"os"
)

// ToFile writes g as UTF-8 text: a first line with the vertex count,
// then one "u v" line per edge.
func (g *Graph) ToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, g.numVerts); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return err
		}
	}
	return w.Flush()
}

// GraphFromFile reads a Graph written by (*Graph).ToFile.
func GraphFromFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n, err := scanFirstLineInt(scanner, path)
	if err != nil {
		return nil, err
	}

	g := New(n)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var u, v int
		if _, err := fmt.Sscanf(line, "%d %d", &u, &v); err != nil {
			return nil, fmt.Errorf("graph: parsing %s: %w", path, err)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graph: parsing %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// ToFile writes d as UTF-8 text: a first line with the vertex count,
// then one "i j" line per arc i -> j.
func (d *Digraph) ToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, d.numVerts); err != nil {
		return err
	}
	for _, e := range d.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return err
		}
	}
	return w.Flush()
}

// DigraphFromFile reads a Digraph written by (*Digraph).ToFile.
func DigraphFromFile(path string) (*Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n, err := scanFirstLineInt(scanner, path)
	if err != nil {
		return nil, err
	}

	d := NewDigraph(n)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var i, j int
		if _, err := fmt.Sscanf(line, "%d %d", &i, &j); err != nil {
			return nil, fmt.Errorf("digraph: parsing %s: %w", path, err)
		}
		if err := d.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("digraph: parsing %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// ToFile writes w as UTF-8 text: a first line with the vertex count,
// then one "u v weight" line per edge.
func (w *WeightedGraph) ToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(bw, w.NumVerts()); err != nil {
		return err
	}
	for _, e := range w.Edges() {
		weight, _ := w.GetEdgeWeight(e.U, e.V)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WeightedGraphFromFile reads a WeightedGraph written by
// (*WeightedGraph).ToFile.
func WeightedGraphFromFile(path string) (*WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n, err := scanFirstLineInt(scanner, path)
	if err != nil {
		return nil, err
	}

	wg := NewWeighted(n)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var u, v, weight int
		if _, err := fmt.Sscanf(line, "%d %d %d", &u, &v, &weight); err != nil {
			return nil, fmt.Errorf("weighted graph: parsing %s: %w", path, err)
		}
		if err := wg.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("weighted graph: parsing %s: %w", path, err)
		}
		wg.SetEdgeWeight(u, v, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return wg, nil
}

func scanFirstLineInt(scanner *bufio.Scanner, path string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%s: missing vertex count line", path)
	}
	var n int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &n); err != nil {
		return 0, fmt.Errorf("%s: invalid vertex count: %w", path, err)
	}
	return n, nil
}
