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

// SplitLines splits content into non-empty lines, discarding line
// terminators. A line is any maximal run of bytes containing neither '\n'
// nor '\r'. \r\n is treated as a line end followed by an empty line,
// which is then dropped; this matches splitting on either terminator
// independently rather than recognizing \r\n as one unit.
func SplitLines(content []byte) []string {
	var result []string
	start := 0
	for start < len(content) {
		end := start
		for end < len(content) && content[end] != '\n' && content[end] != '\r' {
			end++
		}
		if end > start {
			result = append(result, string(content[start:end]))
		}
		start = end + 1
	}
	return result
}
