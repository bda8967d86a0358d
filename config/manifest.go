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

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// InstanceManifest records the generator parameters used to build a
// random instance, written alongside its G_/D_/B_ files as
// "<suffix>.meta.yaml".
type InstanceManifest struct {
	Suffix          string  `yaml:"suffix"`
	NumVerts        int     `yaml:"num_verts"`
	Density         float64 `yaml:"density"`
	DigraphKind     string  `yaml:"digraph_kind"`
	BranchingFactor int     `yaml:"branching_factor,omitempty"`
	DigraphDensity  float64 `yaml:"digraph_density,omitempty"`
	WeightKind      string  `yaml:"weight_kind"`
	BoundsKind      string  `yaml:"bounds_kind"`
}

// SaveManifest writes m as YAML to path.
func SaveManifest(path string, m InstanceManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadManifest reads and parses a YAML InstanceManifest file.
func LoadManifest(path string) (InstanceManifest, error) {
	var m InstanceManifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = yaml.Unmarshal(data, &m)
	return m, err
}
