// Copyright 2016 Google Inc. All Rights Reserved.
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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gobuildtools/ibuild"
)

// statusPrinter tracks build progress and prints one "[finished/total]"
// line per finished edge. On a smart terminal it also shows the running
// edge on a line that the finished line then overprints; a dumb terminal
// or a pipe gets only the finished lines.
type statusPrinter struct {
	out      io.Writer
	smart    bool
	total    int
	done     int
	inFlight string
}

// newStatusPrinter detects whether out is an interactive terminal via
// isatty, falling back to the dumb line-per-edge mode for pipes and
// redirected output.
func newStatusPrinter(out *os.File, total int) *statusPrinter {
	return &statusPrinter{
		out:   out,
		smart: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
		total: total,
	}
}

func (s *statusPrinter) edgeStarted(edge *ibuild.Edge) {
	s.inFlight = describeEdge(edge)
	if s.smart {
		fmt.Fprintf(s.out, "\r[%d/%d] %s\033[K", s.done, s.total, s.inFlight)
	}
}

func (s *statusPrinter) edgeFinished(edge *ibuild.Edge, success bool, output string) {
	s.done++
	switch {
	case s.smart:
		fmt.Fprintf(s.out, "\r[%d/%d] %s\033[K\n", s.done, s.total, describeEdge(edge))
	default:
		fmt.Fprintf(s.out, "[%d/%d] %s\n", s.done, s.total, describeEdge(edge))
	}
	if !success && output != "" {
		fmt.Fprintln(s.out, output)
	} else if output != "" {
		fmt.Fprint(s.out, output)
	}
}

// describeEdge returns the rule's description binding if it set one,
// falling back to the evaluated command line.
func describeEdge(edge *ibuild.Edge) string {
	d := edge.Description()
	if d != "" {
		return d
	}
	return edge.EvaluateCommand()
}
