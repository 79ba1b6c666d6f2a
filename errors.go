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

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is raised when an EvalString template (a rule command or
// description, or a binding value) fails to parse. Syntax errors in a
// manifest statement itself are plain errors from manifest.Lexer.Error.
type ParseError struct {
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	return errors.Wrapf(e.Err, "parse error in %s", e.Context).Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantViolation is raised when the graph-building API is asked to
// break one of its structural invariants: a second producer for a node,
// a second rule with the same name, or a regular input added after an
// edge's order-only inputs. Plan.AddTarget does not raise it: given a
// node with no producing edge it returns false.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Msg
}

// StatError wraps an underlying stat(2) failure that was not "file does
// not exist". Per spec §7 this is logged and treated as "file absent" for
// graph purposes; it is still a distinct type so callers that do want to
// surface it (e.g. a verbose CLI) can.
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return errors.Wrapf(e.Err, "stat(%s)", e.Path).Error()
}

func (e *StatError) Unwrap() error { return e.Err }

// MissingSource is raised when an edge is handed to the builder but one
// of its inputs is a source node (no producing edge) whose file does not
// exist: per §9's source-absence policy, that is a build error, not
// something graph propagation can fix by running the edge's command.
type MissingSource struct {
	Path string
}

func (e *MissingSource) Error() string {
	return "missing source file: " + e.Path
}

// ShellFailure is raised when a Shell reports that an edge's command
// failed.
type ShellFailure struct {
	Command string
}

func (e *ShellFailure) Error() string {
	return fmt.Sprintf("command %q failed", e.Command)
}

// NoWork is not really an error: it is returned by Builder.Build when the
// plan's want set was empty at build start. It is reported as a success
// with an informational message, per spec §7.
type NoWork struct{}

func (e *NoWork) Error() string { return "no work to do" }

// StuckPlan is raised when FindWork returns nothing while the plan still
// has wanted nodes outstanding: a graph consistency or scheduling bug.
type StuckPlan struct{}

func (e *StuckPlan) Error() string { return "ran out of work" }
