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
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/flxj/mstdc/graph"
	"github.com/flxj/mstdc/instance"
	"github.com/flxj/mstdc/mstdc"
)

type d3Node struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type d3Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
	Color  string `json:"color"`
}

type d3NetworkData struct {
	ShowWeight bool      `json:"show_weight"`
	Nodes      []*d3Node `json:"nodes"`
	Links      []*d3Link `json:"links"`
}

type d3Network struct {
	Data *d3NetworkData `json:"data"`
}

var htmlTpl = template.Must(template.New("html").Parse(graphHTML))

// HTML renders g as a force-directed D3 graph, coloring every edge in
// highlight red and every other edge black.
func HTML(g *graph.WeightedGraph, highlight []graph.Edge) ([]byte, error) {
	tree := make(map[graph.Edge]bool, len(highlight))
	for _, e := range highlight {
		tree[e] = true
	}

	data := &d3NetworkData{ShowWeight: true}
	for v := 0; v < g.NumVerts(); v++ {
		data.Nodes = append(data.Nodes, &d3Node{ID: fmt.Sprintf("%d", v), Name: fmt.Sprintf("%d", v), Color: "steelblue"})
	}
	for _, e := range g.Edges() {
		w, _ := g.GetEdgeWeight(e.U, e.V)
		color := "black"
		if tree[e] {
			color = "red"
		}
		data.Links = append(data.Links, &d3Link{
			Source: fmt.Sprintf("%d", e.U),
			Target: fmt.Sprintf("%d", e.V),
			Weight: w,
			Color:  color,
		})
	}

	encoded, err := json.Marshal(d3Network{Data: data})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := htmlTpl.Execute(&buf, string(encoded)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SolutionHTML renders ins's graph with sol's chosen edges highlighted.
func SolutionHTML(ins *instance.Instance, sol mstdc.Solution) ([]byte, error) {
	return HTML(ins.Graph(), sol.Edges())
}
