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

import "testing"

type mapEnv map[string]string

func (m mapEnv) Lookup(name string) string { return m[name] }

func TestEvalString_ParseSimple(t *testing.T) {
	var e EvalString
	if err := e.Parse("gcc @in -o $out"); err != nil {
		t.Fatal(err)
	}
	if got, want := e.Serialize(), "[gcc ][@in][ -o ][$out]"; got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestEvalString_AdjacentSpecials(t *testing.T) {
	var e EvalString
	if err := e.Parse("$a@b"); err != nil {
		t.Fatal(err)
	}
	if got, want := e.Serialize(), "[$a][@b]"; got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestEvalString_ParseErrors(t *testing.T) {
	for _, input := range []string{"foo $", "foo $1", "foo @"} {
		var e EvalString
		if err := e.Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestEvalString_Evaluate(t *testing.T) {
	var e EvalString
	if err := e.Parse("gcc $cflags @in -o $out"); err != nil {
		t.Fatal(err)
	}
	env := mapEnv{"$cflags": "-O2", "@in": "m.c n.c", "$out": "m.o"}
	if got, want := e.Evaluate(env), "gcc -O2 m.c n.c -o m.o"; got != want {
		t.Fatalf("Evaluate() = %q, want %q", got, want)
	}
}

func TestEvalString_MissingVariableIsEmpty(t *testing.T) {
	var e EvalString
	if err := e.Parse("$missing"); err != nil {
		t.Fatal(err)
	}
	if got := e.Evaluate(mapEnv{}); got != "" {
		t.Fatalf("Evaluate() = %q, want empty", got)
	}
}

func TestEvalString_RoundTrip(t *testing.T) {
	// For any template that parses successfully, evaluating against an
	// environment that returns the variable name (including sigil) for
	// each SPECIAL reference reproduces the original input byte-for-byte.
	for _, input := range []string{
		"plain text $var $vaR @in",
		"gcc $cflags @in -o $out",
		"no variables here at all",
	} {
		var e EvalString
		if err := e.Parse(input); err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		got := e.Evaluate(identityEnv{})
		if got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
		if e.Unparsed() != input {
			t.Errorf("Unparsed() = %q, want %q", e.Unparsed(), input)
		}
	}
}

type identityEnv struct{}

func (identityEnv) Lookup(name string) string { return name }
