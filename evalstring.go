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

import "fmt"

// Env is a scope for variable (e.g. "$foo", "@in") lookups. Missing
// variables resolve to the empty string; lookups are never an error, which
// keeps command construction total.
type Env interface {
	Lookup(name string) string
}

type tokenKind bool

const (
	tokenRaw     tokenKind = false
	tokenSpecial tokenKind = true
)

type evalToken struct {
	text string
	kind tokenKind
}

// EvalString is a command or binding template, tokenized into a sequence of
// literal runs and variable references. It can be evaluated repeatedly
// against different Envs once parsed.
type EvalString struct {
	unparsed string
	parsed   []evalToken
}

// Parse tokenizes input. Characters are copied literally except '@' and
// '$', each of which begins a variable reference consisting of the sigil
// plus one or more ASCII lowercase letters. A sigil followed by zero such
// letters is a parse error. Parse is idempotent: a second call overwrites
// any previously parsed state.
func (e *EvalString) Parse(input string) error {
	e.unparsed = input
	e.parsed = e.parsed[:0]

	start := 0
	for start < len(input) {
		end := indexSigil(input, start)
		if end == -1 {
			e.addRaw(input[start:])
			return nil
		}
		if end > start {
			e.addRaw(input[start:end])
		}
		nameEnd := end + 1
		for nameEnd < len(input) && input[nameEnd] >= 'a' && input[nameEnd] <= 'z' {
			nameEnd++
		}
		if nameEnd == end+1 {
			return fmt.Errorf("evalstring: expected variable name after %q at offset %d in %q", input[end:end+1], end, input)
		}
		e.parsed = append(e.parsed, evalToken{text: input[end:nameEnd], kind: tokenSpecial})
		start = nameEnd
	}
	return nil
}

func indexSigil(s string, start int) int {
	for i := start; i < len(s); i++ {
		if s[i] == '@' || s[i] == '$' {
			return i
		}
	}
	return -1
}

func (e *EvalString) addRaw(text string) {
	if text == "" {
		return
	}
	if n := len(e.parsed); n > 0 && e.parsed[n-1].kind == tokenRaw {
		e.parsed[n-1].text += text
		return
	}
	e.parsed = append(e.parsed, evalToken{text: text, kind: tokenRaw})
}

// Evaluate concatenates RAW tokens verbatim with env.Lookup(special) for
// SPECIAL tokens, in order. A SPECIAL token's text includes its sigil.
func (e *EvalString) Evaluate(env Env) string {
	var result []byte
	for _, t := range e.parsed {
		if t.kind == tokenRaw {
			result = append(result, t.text...)
		} else {
			result = append(result, env.Lookup(t.text)...)
		}
	}
	return string(result)
}

// Unparsed returns the original, unparsed input string, for diagnostics.
func (e *EvalString) Unparsed() string {
	return e.unparsed
}

// Empty reports whether Parse has produced no tokens at all.
func (e *EvalString) Empty() bool {
	return len(e.parsed) == 0
}

// Serialize renders the token list as "[raw][$special]...", matching the
// teacher's debug format; used by tests to assert on parse results without
// depending on an Env. SPECIAL token text already carries its own sigil
// ("@in", "$out"), so it is emitted as-is.
func (e *EvalString) Serialize() string {
	var result []byte
	for _, t := range e.parsed {
		result = append(result, '[')
		result = append(result, t.text...)
		result = append(result, ']')
	}
	return string(result)
}
