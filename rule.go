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

// Rule is a named, reusable command template.
type Rule struct {
	name    string
	command EvalString

	// description, if non-empty, is shown by a status printer in place of
	// the evaluated command line. It has no effect on dirty propagation or
	// command evaluation.
	description EvalString
}

// NewRule parses command as an EvalString and returns the Rule, or a
// *ParseError if command is malformed.
func NewRule(name, command string) (*Rule, error) {
	r := &Rule{name: name}
	if err := r.command.Parse(command); err != nil {
		return nil, &ParseError{Context: "rule " + name, Err: err}
	}
	return r, nil
}

// Name returns the rule's name.
func (r *Rule) Name() string {
	return r.name
}

// SetDescription parses description as the rule's human-readable binding.
func (r *Rule) SetDescription(description string) error {
	if err := r.description.Parse(description); err != nil {
		return &ParseError{Context: "rule " + r.name + " description", Err: err}
	}
	return nil
}
