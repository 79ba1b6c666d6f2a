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

// Node is a single vertex in the build graph: the file named by stat,
// whether it is currently considered out of date, the one edge that
// produces it (nil for a source file), and the edges that consume it as
// an input.
type Node struct {
	stat *FileStat

	dirty    bool
	inEdge   *Edge
	outEdges []*Edge
}

// Path returns the file path this node tracks.
func (n *Node) Path() string {
	return n.stat.Path
}

// Stat returns the node's cached FileStat.
func (n *Node) Stat() *FileStat {
	return n.stat
}

// Dirty reports whether this node's file must be regenerated before its
// consumers may run.
func (n *Node) Dirty() bool {
	return n.dirty
}

// InEdge returns the edge that produces this node, or nil if this is a
// source node.
func (n *Node) InEdge() *Edge {
	return n.inEdge
}

// OutEdges returns the edges that consume this node as an input.
func (n *Node) OutEdges() []*Edge {
	return n.outEdges
}

// MarkClean resets the node's dirty bit once its producing edge has run
// successfully. Called by Builder after a Shell invocation succeeds, on
// every output of the edge that just ran.
func (n *Node) MarkClean() {
	n.dirty = false
}

// MarkDirty marks this node as out of date and cascades to every edge
// that consumes it. It is idempotent: already-dirty nodes are untouched,
// and source nodes (no producing edge) never become dirty through graph
// propagation — their absence is a build error, reported by Builder
// through Edge.MissingSourceInput, not a reason to propagate dirtiness
// into an unbuildable target.
func (n *Node) MarkDirty() {
	if n.dirty {
		return
	}
	if n.inEdge == nil {
		return
	}
	n.dirty = true
	for _, e := range n.outEdges {
		e.markDirty(n)
	}
}
