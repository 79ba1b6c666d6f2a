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

// Edge is a build step: a Rule run with a fixed set of input and output
// nodes. The first output is distinguished as $out; input order is
// preserved for @in expansion.
type Edge struct {
	rule    *Rule
	inputs  []*Node
	outputs []*Node

	// bindings holds per-edge variable overrides declared in the manifest
	// (indentation-scoped lines following a build statement). env is the
	// enclosing environment consulted when a name is absent from bindings.
	bindings map[string]string
	env      Env

	// orderOnly is the number of trailing entries in inputs that are
	// order-only: they participate in MarkDirty propagation like any other
	// input, but RecomputeDirty does not compare their mtime against the
	// outputs (see SPEC_FULL.md §4.8).
	orderOnly int

	enqueued bool // not read or written: Plan keeps its own enqueued set; see plan.go
}

// Rule returns the edge's rule.
func (e *Edge) Rule() *Rule { return e.rule }

// Inputs returns the edge's input nodes in declared order.
func (e *Edge) Inputs() []*Node { return e.inputs }

// Outputs returns the edge's output nodes in declared order.
func (e *Edge) Outputs() []*Node { return e.outputs }

// SetBinding overrides name to value for this edge alone, taking priority
// over the enclosing environment. Used by the manifest parser for
// indentation-scoped bindings under a build statement.
func (e *Edge) SetBinding(name, value string) {
	if e.bindings == nil {
		e.bindings = make(map[string]string)
	}
	e.bindings[name] = value
}

// EvaluateCommand evaluates the edge's rule command against an edge-scoped
// environment that resolves @in and $out before falling back to the
// edge's enclosing environment.
func (e *Edge) EvaluateCommand() string {
	return e.rule.command.Evaluate(&edgeEnv{edge: e})
}

// Description evaluates the rule's optional description binding, or
// returns the empty string if the rule set none. A caller that wants a
// label regardless falls back to EvaluateCommand itself.
func (e *Edge) Description() string {
	if e.rule.description.Empty() {
		return ""
	}
	return e.rule.description.Evaluate(&edgeEnv{edge: e})
}

// MissingSourceInput returns the first input node that is a source (no
// producing edge) whose file does not exist, or nil if every source this
// edge depends on is present. A build can only make an edge's own
// outputs; it cannot conjure a missing source, so Builder checks this
// before running the edge's command rather than letting the command fail
// on a file that was never going to exist.
func (e *Edge) MissingSourceInput() *Node {
	for _, in := range e.inputs {
		if in.InEdge() == nil && in.Stat().Mtime == 0 {
			return in
		}
	}
	return nil
}

// markDirty is called when input became dirty. If input is genuinely one
// of this edge's inputs, every output is marked dirty in turn (which
// cascades further through Node.MarkDirty); otherwise this is a no-op.
func (e *Edge) markDirty(input *Node) {
	found := false
	for _, in := range e.inputs {
		if in == input {
			found = true
			break
		}
	}
	if !found {
		return
	}
	for _, out := range e.outputs {
		out.MarkDirty()
	}
}

// RecomputeDirty is called on a leaf edge (one consuming at least one
// source node) during StatCache.Reload. It marks the edge's outputs dirty
// if the file is missing (mtime 0) or if any non-order-only input is newer
// than the oldest output.
func (e *Edge) RecomputeDirty(disk DiskInterface) error {
	if len(e.outputs) == 0 {
		return nil
	}

	minMtime := e.outputs[0].stat.Mtime
	missingOutput := e.outputs[0].stat.Mtime == 0
	for _, out := range e.outputs[1:] {
		if out.stat.Mtime < minMtime {
			minMtime = out.stat.Mtime
		}
		if out.stat.Mtime == 0 {
			missingOutput = true
		}
	}

	dirty := missingOutput
	if missingOutput {
		explain(e.outputs[0], "output %s does not exist", e.outputs[0].Path())
	}
	if !dirty {
		regularInputs := e.inputs
		if e.orderOnly > 0 {
			regularInputs = e.inputs[:len(e.inputs)-e.orderOnly]
		}
		for _, in := range regularInputs {
			if in.stat.Mtime > minMtime {
				dirty = true
				explain(e.outputs[0], "%s is newer than the output", in.Path())
				break
			}
		}
	}

	if dirty {
		for _, out := range e.outputs {
			out.MarkDirty()
		}
	}
	return nil
}
