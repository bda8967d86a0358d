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

// Config overrides the benchmark CLI's positional arguments when
// loaded via --config. Zero-valued fields leave the corresponding
// command-line value in place.
type Config struct {
	NumWorkers   int    `yaml:"num_workers"`
	OutputCSV    string `yaml:"output_csv"`
	InstancesDir string `yaml:"instances_dir"`
	MonitorAddr  string `yaml:"monitor_addr"`
}

// Load reads and parses a YAML Config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults overwrites numWorkers, outputCSV, instancesDir and
// monitorAddr with c's fields wherever c sets a non-zero value.
func (c *Config) ApplyDefaults(numWorkers int, outputCSV, instancesDir, monitorAddr string) (int, string, string, string) {
	if c == nil {
		return numWorkers, outputCSV, instancesDir, monitorAddr
	}
	if c.NumWorkers != 0 {
		numWorkers = c.NumWorkers
	}
	if c.OutputCSV != "" {
		outputCSV = c.OutputCSV
	}
	if c.InstancesDir != "" {
		instancesDir = c.InstancesDir
	}
	if c.MonitorAddr != "" {
		monitorAddr = c.MonitorAddr
	}
	return numWorkers, outputCSV, instancesDir, monitorAddr
}
