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
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
)

// Service is a small HTTP status server a batch benchmark run
// publishes to: GET /status reports the run currently in progress,
// GET /runs reports every run completed so far.
type Service struct {
	host string
	port int

	mu      sync.RWMutex
	current *Run
	history []RunInfo
	svc     *gin.Engine
}

// NewService returns a Service listening on host:port once Run is
// called.
func NewService(host string, port int) *Service {
	return &Service{host: host, port: port}
}

// Begin starts tracking a new run and makes it the current one
// reported by GET /status.
func (s *Service) Begin(description string) *Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := NewRun(description)
	s.current = r
	return r
}

// EndCurrent moves the current run into the completed history.
func (s *Service) EndCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.history = append(s.history, s.current.Info())
	s.current = nil
}

// Run starts the HTTP server and blocks until it exits.
func (s *Service) Run() error {
	gin.SetMode(gin.ReleaseMode)
	s.svc = gin.Default()
	s.router()
	return s.svc.Run(fmt.Sprintf("%s:%d", s.host, s.port))
}

func (s *Service) router() {
	s.svc.GET("/status", func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.current == nil {
			c.JSON(200, gin.H{"running": false})
			return
		}
		c.JSON(200, gin.H{"running": true, "run": s.current.Info()})
	})

	s.svc.GET("/runs", func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		c.JSON(200, gin.H{"runs": s.history})
	})
}
