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

// State is the top-level owner of a build graph: the stat cache (and
// through it every FileStat and Node), the named rules, the full edge
// list, and the top-level bindings consulted by edges that do not
// override a variable themselves. No other type owns a Rule, Edge,
// FileStat or Node.
type State struct {
	Stats    *StatCache
	rules    map[string]*Rule
	edges    []*Edge
	bindings map[string]string
}

// NewState returns an empty State ready to have rules and edges added to
// it by a manifest parser.
func NewState() *State {
	return &State{
		Stats:    NewStatCache(),
		rules:    make(map[string]*Rule),
		bindings: make(map[string]string),
	}
}

// AddRule registers rule under its own name. It is an *InvariantViolation
// to register two rules with the same name.
func (s *State) AddRule(rule *Rule) error {
	if _, ok := s.rules[rule.Name()]; ok {
		return &InvariantViolation{Msg: "duplicate rule " + rule.Name()}
	}
	s.rules[rule.Name()] = rule
	return nil
}

// LookupRule returns the rule registered under name, or nil.
func (s *State) LookupRule(name string) *Rule {
	return s.rules[name]
}

// AddEdge creates and registers a new edge for rule, returning it so the
// caller can populate its inputs/outputs via AddInOut.
func (s *State) AddEdge(rule *Rule) *Edge {
	e := &Edge{rule: rule, env: s}
	s.edges = append(s.edges, e)
	return e
}

// Edges returns every edge owned by this state, in the order they were
// added.
func (s *State) Edges() []*Edge {
	return s.edges
}

// edgeInOutKind distinguishes ordinary edge inputs/outputs from order-only
// inputs for AddInOut.
type edgeInOutKind int

const (
	// EdgeIn is a regular (implicit or explicit) input: it participates in
	// both MarkDirty propagation and RecomputeDirty's mtime comparison.
	EdgeIn edgeInOutKind = iota
	// EdgeOut is an edge output.
	EdgeOut
	// EdgeOrderOnlyIn is an order-only input (after "||" in a build
	// statement): it participates in MarkDirty propagation only.
	EdgeOrderOnlyIn
)

// AddInOut attaches node to edge in the given role, maintaining the
// Node.InEdge / Node.OutEdges invariants. Declaring a second producer for
// an output node is an *InvariantViolation.
func (s *State) AddInOut(edge *Edge, kind edgeInOutKind, node *Node) error {
	switch kind {
	case EdgeOut:
		if node.inEdge != nil {
			return &InvariantViolation{Msg: "multiple rules generate " + node.Path()}
		}
		node.inEdge = edge
		edge.outputs = append(edge.outputs, node)
	case EdgeOrderOnlyIn:
		edge.inputs = append(edge.inputs, node)
		edge.orderOnly++
		node.outEdges = append(node.outEdges, edge)
	default:
		if edge.orderOnly > 0 {
			// Regular inputs must precede order-only ones; AddInOut is only
			// ever driven by the manifest parser, which enforces this by
			// construction (it emits all "|"-inputs before any "||"-inputs).
			return &InvariantViolation{Msg: "regular input added after order-only inputs on edge for " + edge.rule.Name()}
		}
		edge.inputs = append(edge.inputs, node)
		node.outEdges = append(node.outEdges, edge)
	}
	return nil
}

// AddBinding sets a top-level variable, consulted by any edge that does
// not itself override the name.
func (s *State) AddBinding(name, value string) {
	s.bindings[name] = value
}

// GetNode returns the Node for path, creating its backing FileStat on
// first reference.
func (s *State) GetNode(path string) *Node {
	return s.Stats.GetFile(path).node
}

// Lookup implements Env for the top-level bindings map. name carries its
// sigil (e.g. "$cflags"); bindings are keyed by the bare variable name.
func (s *State) Lookup(name string) string {
	if len(name) < 2 {
		return ""
	}
	return s.bindings[name[1:]]
}
