// Copyright 2011 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ibuild

import "strings"

// edgeEnv implements Env for a single edge's command/description
// evaluation: @in and $out are computed from the edge's node lists, and
// every other reference falls through to the edge's enclosing environment
// (its bindings, then the owning State).
type edgeEnv struct {
	edge *Edge
}

// Lookup implements Env.
func (e *edgeEnv) Lookup(name string) string {
	switch name {
	case "@in":
		paths := make([]string, len(e.edge.inputs))
		for i, n := range e.edge.inputs {
			paths[i] = n.Path()
		}
		return strings.Join(paths, " ")
	case "$out":
		if len(e.edge.outputs) == 0 {
			return ""
		}
		return e.edge.outputs[0].Path()
	default:
		if len(name) >= 2 && e.edge.bindings != nil {
			if v, ok := e.edge.bindings[name[1:]]; ok {
				return v
			}
		}
		if e.edge.env != nil {
			return e.edge.env.Lookup(name)
		}
		return ""
	}
}
