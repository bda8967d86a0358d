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

// mstdc-bench batch-solves every MSTDC instance found in a directory
// and writes one CSV result line per instance.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/flxj/mstdc/bench"
	"github.com/flxj/mstdc/config"
	"github.com/flxj/mstdc/monitor"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mstdc-bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file overriding the positional arguments below")
	monitorAddr := fs.String("monitor-addr", "", "host:port to publish live search status on")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	positional := fs.Args()
	if len(positional) != 3 {
		fmt.Fprintln(os.Stderr, "usage: mstdc-bench [--config file] [--monitor-addr host:port] <num_workers> <output_csv> <instances_dir>")
		return 2
	}

	numWorkers, err := strconv.Atoi(positional[0])
	if err != nil {
		log.Printf("invalid num_workers %q: %v", positional[0], err)
		return 1
	}
	outputCSV := positional[1]
	instancesDir := positional[2]
	addr := *monitorAddr

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Printf("loading config %q: %v", *configPath, err)
			return 1
		}
		numWorkers, outputCSV, instancesDir, addr = cfg.ApplyDefaults(numWorkers, outputCSV, instancesDir, addr)
	}

	var mon *monitor.Service
	if addr != "" {
		mon, err = startMonitor(addr)
		if err != nil {
			log.Printf("starting monitor on %q: %v", addr, err)
			return 1
		}
	}

	solved, err := bench.RunSuite(instancesDir, outputCSV, numWorkers, mon)
	if err != nil {
		log.Printf("benchmark run failed: %v", err)
		return 1
	}
	log.Printf("solved %d instance(s), results written to %s", solved, outputCSV)
	return 0
}

func startMonitor(addr string) (*monitor.Service, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("port %q: %w", portStr, err)
	}
	mon := monitor.NewService(host, port)
	go func() {
		if err := mon.Run(); err != nil {
			log.Printf("monitor server stopped: %v", err)
		}
	}()
	return mon, nil
}
