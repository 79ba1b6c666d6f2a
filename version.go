// Copyright 2013 Google Inc. All Rights Reserved.
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
	"log"
	"strconv"
	"strings"
)

// Version is this module's release number, compared against a manifest's
// optional "ibuild_required_version" top-level binding.
const Version = "0.1.0"

// ParseVersion splits a "major.minor[...]" version string into its major
// and minor components, ignoring anything after the second dot and any
// non-digit suffix on either component.
func ParseVersion(version string) (int, int) {
	end := strings.Index(version, ".")
	if end == -1 {
		end = len(version)
	}
	major, _ := strconv.Atoi(keepNumbers(version[:end]))
	minor := 0
	if end != len(version) {
		start := end + 1
		end = strings.Index(version[start:], ".")
		if end == -1 {
			end = len(version)
		} else {
			end += start
		}
		minor, _ = strconv.Atoi(keepNumbers(version[start:end]))
	}
	return major, minor
}

func keepNumbers(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if i != -1 {
		return s[:i]
	}
	return s
}

// CheckRequiredVersion reports whether a manifest declaring
// "ibuild_required_version = version" can be built by this binary. A
// build file requiring a newer major version, or a newer minor version of
// the same major, is an error; a build file requiring an older major
// version only gets a logged warning, and an older minor version of the
// same major is accepted without one.
func CheckRequiredVersion(version string) error {
	binMajor, binMinor := ParseVersion(Version)
	fileMajor, fileMinor := ParseVersion(version)
	if binMajor > fileMajor {
		log.Printf("ibuild version (%s) greater than build file ibuild_required_version (%s); versions may be incompatible.", Version, version)
	} else if (binMajor == fileMajor && binMinor < fileMinor) || binMajor < fileMajor {
		return fmt.Errorf("ibuild version (%s) incompatible with build file ibuild_required_version (%s)", Version, version)
	}
	return nil
}
