// Copyright 2012 Google Inc. All Rights Reserved.
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

import (
	"fmt"
	"io"
)

// Process-wide debug/retention flags. g_explaining is set through
// SetExplaining, which the CLI's -d flag drives; the CLI has no flags for
// the others, which keep their defaults. g_keep_depfile, g_keep_dynout and g_keep_rsp are inert parity switches:
// this module generates no depfiles, dyn-output files or response files of
// its own (those are excluded features), so nothing in the core ever
// branches on them. g_experimental_statcache is likewise always
// effectively on: StatCache is the only stat-caching strategy this module
// implements.
var (
	g_explaining             = false
	g_keep_depfile           = false
	g_keep_dynout            = false
	g_keep_rsp               = false
	g_experimental_statcache = true
)

// explanation is one recorded reason a node was judged dirty, keyed by
// the edge that would rebuild it.
type explanation struct {
	node   *Node
	format string
	args   []interface{}
}

var explanations []explanation

// SetExplaining turns the explain facility on or off; the CLI's -d flag
// drives this.
func SetExplaining(v bool) {
	g_explaining = v
}

// explain records why node is dirty when g_explaining is set; it is a
// no-op otherwise, so call sites need no guard of their own.
func explain(node *Node, format string, args ...interface{}) {
	if !g_explaining {
		return
	}
	explanations = append(explanations, explanation{node: node, format: format, args: args})
}

// PrintExplanations writes every recorded explanation to w, grouped by
// the node they were recorded against, matching ninja's "-d explain"
// output.
func PrintExplanations(w io.Writer) {
	for _, e := range explanations {
		fmt.Fprintf(w, "ibuild explain: %s: "+e.format+"\n", append([]interface{}{e.node.Path()}, e.args...)...)
	}
}

// ResetExplanations discards any recorded explanations; exposed for tests
// and for a CLI that runs more than one build in a process.
func ResetExplanations() {
	explanations = nil
}
