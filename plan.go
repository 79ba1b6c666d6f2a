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

// Plan schedules the edges needed to bring a set of wanted nodes up to
// date. It is single-threaded and cooperative: FindWork hands out one
// edge at a time, and the caller reports completion through EdgeFinished.
type Plan struct {
	want map[*Node]bool
	// ready holds edges whose inputs are all up to date (or already
	// finished) and that have not yet been handed out. enqueued dedups
	// against an edge landing in ready twice, fixing the double-enqueue
	// condition the original implementation's own comments flagged.
	ready    []*Edge
	enqueued map[*Edge]bool

	// pending counts, per wanted edge, how many of its dirty inputs are
	// still outstanding. An edge enters ready when this reaches zero.
	pending map[*Edge]int
}

// NewPlan returns an empty Plan.
func NewPlan() *Plan {
	return &Plan{
		want:     make(map[*Node]bool),
		enqueued: make(map[*Edge]bool),
		pending:  make(map[*Edge]int),
	}
}

// AddTarget walks node's dependency graph and records every dirty edge
// needed to produce it. It reports whether node needs building (false
// means node was already clean, or had no producing edge); a node that an
// earlier call already wanted also reports true. AddTarget is
// safe to call repeatedly for overlapping targets — an edge already
// wanted by an earlier target is visited once.
func (p *Plan) AddTarget(node *Node) bool {
	if !node.Dirty() {
		return false
	}
	edge := node.InEdge()
	if edge == nil {
		return false
	}
	if p.want[node] {
		return true
	}
	p.want[node] = true

	if _, seen := p.pending[edge]; !seen {
		need := 0
		for _, in := range edge.inputs {
			if in.Dirty() {
				need++
				p.AddTarget(in)
			}
		}
		p.pending[edge] = need
		if need == 0 {
			p.enqueue(edge)
		}
	}
	return true
}

func (p *Plan) enqueue(edge *Edge) {
	if p.enqueued[edge] {
		return
	}
	p.enqueued[edge] = true
	p.ready = append(p.ready, edge)
}

// FindWork returns the next edge ready to run, or nil if none is
// currently available (either every wanted edge is finished, or every
// remaining edge is still blocked on an upstream edge).
func (p *Plan) FindWork() *Edge {
	if len(p.ready) == 0 {
		return nil
	}
	edge := p.ready[0]
	p.ready = p.ready[1:]
	return edge
}

// EdgeFinished marks edge as complete and releases any wanted edge whose
// last outstanding input was one of edge's outputs.
func (p *Plan) EdgeFinished(edge *Edge) {
	delete(p.pending, edge)
	for _, out := range edge.outputs {
		p.NodeFinished(out)
	}
}

// NodeFinished records that node is now up to date, decrementing the
// pending count of every wanted edge that consumes it and enqueueing any
// that reach zero.
func (p *Plan) NodeFinished(node *Node) {
	for _, e := range node.outEdges {
		n, ok := p.pending[e]
		if !ok {
			continue
		}
		n--
		p.pending[e] = n
		if n == 0 {
			p.enqueue(e)
		}
	}
}

// Done reports whether every wanted edge has finished.
func (p *Plan) Done() bool {
	return len(p.pending) == 0 && len(p.ready) == 0
}

// Count returns the number of distinct edges this plan knows it needs to
// run. Every edge in ready also has an entry in pending until it
// finishes, so pending alone is the total. It is informational (used by
// a status printer's "[n/total]" display) and has no effect on
// scheduling.
func (p *Plan) Count() int {
	return len(p.pending)
}
