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

package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/flxj/mstdc/graph"
	"github.com/flxj/mstdc/instance"
	"github.com/flxj/mstdc/mstdc"
)

var dotTpl = template.Must(template.New("dot").Parse(dotTemplate))

type dotGraph struct {
	Attr  []string
	Nodes []string
	Edges []string
}

// DOT renders g as Graphviz DOT text, one undirected edge per entry
// of g.Edges() labelled with its weight. Every edge present in
// highlight is drawn red and bold; every other edge is left at the
// default style.
func DOT(g *graph.WeightedGraph, highlight []graph.Edge) []byte {
	tree := make(map[graph.Edge]bool, len(highlight))
	for _, e := range highlight {
		tree[e] = true
	}

	d := dotGraph{Attr: []string{"rankdir=LR", "node [shape=circle]"}}
	for v := 0; v < g.NumVerts(); v++ {
		d.Nodes = append(d.Nodes, fmt.Sprintf("%d", v))
	}
	for _, e := range g.Edges() {
		w, _ := g.GetEdgeWeight(e.U, e.V)
		attrs := []string{fmt.Sprintf("label=%d", w)}
		if tree[e] {
			attrs = append(attrs, "color=red", "penwidth=2")
		}
		d.Edges = append(d.Edges, fmt.Sprintf("%d -- %d [%s]", e.U, e.V, strings.Join(attrs, ",")))
	}

	var buf bytes.Buffer
	_ = dotTpl.Execute(&buf, d)
	return buf.Bytes()
}

// SolutionDOT renders ins's graph with sol's chosen edges highlighted.
func SolutionDOT(ins *instance.Instance, sol mstdc.Solution) []byte {
	return DOT(ins.Graph(), sol.Edges())
}
