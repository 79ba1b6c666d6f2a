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

// FileStat is the cached filesystem observation for a single path: the
// path itself, its last-known mtime (0 if unknown or absent), and a
// back-reference to the graph Node built over it, which StatCache.GetFile
// creates together with the FileStat. At most one FileStat exists per
// path within a StatCache.
type FileStat struct {
	Path  string
	Mtime int64

	node *Node
}

// Stat re-observes the file on disk through disk, updating Mtime. A
// non-existent file reports mtime 0, not an error. Per spec §7, a
// StatError other than not-found has no local recovery beyond being
// logged and treated as "file absent" — it never aborts the build, since
// a disk.Stat implementation is free to surface non-not-found failures
// as an error rather than folding them into mtime 0 itself.
func (f *FileStat) Stat(disk DiskInterface) error {
	mtime, err := disk.Stat(f.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, (&StatError{Path: f.Path, Err: err}).Error())
		f.Mtime = 0
		return nil
	}
	f.Mtime = mtime
	return nil
}
