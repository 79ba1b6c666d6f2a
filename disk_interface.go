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
	"os"
)

// DiskInterface abstracts the filesystem stat call so the graph machinery
// can be exercised without touching disk in tests.
type DiskInterface interface {
	// Stat returns path's modification time as a Unix timestamp, or 0 if
	// the path does not exist. A non-nil error indicates a stat failure
	// other than "does not exist"; per spec §6 the caller treats that the
	// same as absence after logging it.
	Stat(path string) (int64, error)
}

// RealDiskInterface stats the actual filesystem.
type RealDiskInterface struct{}

// Stat implements DiskInterface using os.Stat.
func (RealDiskInterface) Stat(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		fmt.Fprintf(os.Stderr, "ibuild: stat(%s): %s\n", path, err)
		return 0, nil
	}
	return info.ModTime().Unix(), nil
}
