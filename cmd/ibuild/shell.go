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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/gobuildtools/ibuild"
)

// execShell runs one edge's command at a time through the platform shell,
// matching the single-threaded cooperative model: there is no subprocess
// pool here, unlike a modern parallel build tool.
type execShell struct {
	status *statusPrinter
}

func newExecShell(status *statusPrinter) *execShell {
	return &execShell{status: status}
}

// RunCommand implements ibuild.Shell.
func (s *execShell) RunCommand(edge *ibuild.Edge) bool {
	command := edge.EvaluateCommand()
	s.status.edgeStarted(edge)

	shell, flag := "/bin/sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd.exe", "/c"
	}
	cmd := exec.Command(shell, flag, command)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	success := err == nil
	s.status.edgeFinished(edge, success, out.String())
	return success
}

// dryRunShell prints each edge's command instead of running it, backing
// the CLI's -n/--dry-run flag. Ninja's own -n does the same: walk the
// plan, print what would run, touch nothing.
type dryRunShell struct {
	w io.Writer
}

func newDryRunShell(w io.Writer) *dryRunShell {
	return &dryRunShell{w: w}
}

// RunCommand implements ibuild.Shell.
func (s *dryRunShell) RunCommand(edge *ibuild.Edge) bool {
	fmt.Fprintln(s.w, edge.EvaluateCommand())
	return true
}
