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

package manifest

import (
	"testing"

	"github.com/gobuildtools/ibuild"
)

func TestParse_RuleAndBuild(t *testing.T) {
	input := `
cflags = -Wall

rule cc
  command = gcc $cflags -c @in -o $out
  description = CC $out

build out.o: cc in.c
`
	s := ibuild.NewState()
	if _, err := Parse(s, "test.ibuild", input); err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	edges := s.Edges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	got := edges[0].EvaluateCommand()
	want := "gcc -Wall -c in.c -o out.o"
	if got != want {
		t.Errorf("EvaluateCommand() = %q, want %q", got, want)
	}
}

func TestParse_DefaultStatement(t *testing.T) {
	input := `
rule cc
  command = gcc -c @in -o $out

build a.o: cc a.c
build b.o: cc b.c
default a.o b.o
`
	s := ibuild.NewState()
	p, err := Parse(s, "test.ibuild", input)
	if err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	want := []string{"a.o", "b.o"}
	got := p.Defaults()
	if len(got) != len(want) {
		t.Fatalf("Defaults() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Defaults()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_ImplicitAndOrderOnlyInputs(t *testing.T) {
	input := `
rule cc
  command = gcc @in -o $out

build out.o: cc in.c | header.h || generated.stamp
`
	s := ibuild.NewState()
	if _, err := Parse(s, "test.ibuild", input); err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	edge := s.Edges()[0]
	if len(edge.Inputs()) != 3 {
		t.Fatalf("expected 3 inputs (regular + implicit + order-only), got %d", len(edge.Inputs()))
	}
	// @in joins every input including the order-only one, per the core's
	// edge-scoped environment rules.
	got := edge.EvaluateCommand()
	want := "gcc in.c header.h generated.stamp -o out.o"
	if got != want {
		t.Errorf("EvaluateCommand() = %q, want %q", got, want)
	}
}

func TestParse_UnknownRuleIsError(t *testing.T) {
	input := "build out.o: missing in.c\n"
	s := ibuild.NewState()
	if _, err := Parse(s, "test.ibuild", input); err == nil {
		t.Fatal("Parse() = nil, want an error for an undeclared rule")
	}
}

func TestParse_BuildLevelBindingOverridesTopLevel(t *testing.T) {
	input := `
cflags = -Wall

rule cc
  command = gcc $cflags @in -o $out

build special.o: cc special.c
  cflags = -O2
`
	s := ibuild.NewState()
	if _, err := Parse(s, "test.ibuild", input); err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	got := s.Edges()[0].EvaluateCommand()
	want := "gcc -O2 special.c -o special.o"
	if got != want {
		t.Errorf("EvaluateCommand() = %q, want %q", got, want)
	}
}

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	input := `
# a comment
rule cc
  # indented comment
  command = gcc @in -o $out # trailing comment is not special-cased here

build out.o: cc in.c
`
	s := ibuild.NewState()
	if _, err := Parse(s, "test.ibuild", input); err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	if len(s.Edges()) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(s.Edges()))
	}
}
