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

import "errors"

var (
	errEdgeExists    = errors.New("graph: attempt to add an existent edge")
	errEdgeNotExists = errors.New("graph: attempt to remove a nonexistent edge")
	errNoWeight      = errors.New("graph: edge has no recorded weight")
)

// IsAlreadyExists reports whether err was returned because an edge
// already existed.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, errEdgeExists)
}

// IsNotExists reports whether err was returned because an edge did not
// exist.
func IsNotExists(err error) bool {
	return errors.Is(err, errEdgeNotExists)
}
