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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single no terminator", "hello", []string{"hello"}},
		{"lf terminated", "a\nb\n", []string{"a", "b"}},
		{"cr terminated", "a\rb\r", []string{"a", "b"}},
		{"crlf collapses to one line plus dropped empty", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines dropped", "a\n\n\nb", []string{"a", "b"}},
		{"trailing unterminated content kept", "a\nb", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SplitLines([]byte(c.input))
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", c.input, diff)
			}
		})
	}
}
