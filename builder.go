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

// Shell runs an edge's command and reports whether it succeeded. A dry
// run or test implementation can substitute for the real subprocess-
// invoking one without changing Builder at all.
type Shell interface {
	RunCommand(edge *Edge) bool
}

// Builder drives a Plan to completion against a Shell, one edge at a
// time, matching the single-threaded cooperative execution model: no
// edge starts until every edge it depends on has finished.
type Builder struct {
	state *State
	plan  *Plan
}

// NewBuilder returns a Builder for state using plan.
func NewBuilder(state *State, plan *Plan) *Builder {
	return &Builder{state: state, plan: plan}
}

// Build repeatedly pulls ready work from the plan and runs it through
// shell until the plan is done. It returns *NoWork if the plan had
// nothing to build, *MissingSource if an edge's input is an absent source
// file (the edge cannot run without it), *ShellFailure on the first
// failing command, and *StuckPlan if FindWork returns nothing while work
// is still outstanding (a scheduling or graph-consistency bug, not a
// normal condition).
func (b *Builder) Build(shell Shell) error {
	if b.plan.Done() {
		return &NoWork{}
	}
	for !b.plan.Done() {
		edge := b.plan.FindWork()
		if edge == nil {
			return &StuckPlan{}
		}
		if missing := edge.MissingSourceInput(); missing != nil {
			return &MissingSource{Path: missing.Path()}
		}
		if !shell.RunCommand(edge) {
			return &ShellFailure{Command: edge.EvaluateCommand()}
		}
		for _, out := range edge.outputs {
			out.MarkClean()
		}
		b.plan.EdgeFinished(edge)
	}
	return nil
}
