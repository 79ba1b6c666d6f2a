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

// StatCache owns the path -> FileStat map. Every path referenced anywhere
// in the graph has exactly one FileStat, and every FileStat owns exactly
// one Node, created along with it on the path's first reference.
type StatCache struct {
	paths map[string]*FileStat
}

// NewStatCache returns an empty StatCache.
func NewStatCache() *StatCache {
	return &StatCache{paths: make(map[string]*FileStat)}
}

// GetFile returns the FileStat for path, creating one (with its Node) if
// this is the first reference to it.
func (s *StatCache) GetFile(path string) *FileStat {
	if f, ok := s.paths[path]; ok {
		return f
	}
	f := &FileStat{Path: path}
	f.node = &Node{stat: f}
	s.paths[path] = f
	return f
}

// Reload stats every known file through disk, marks every node whose file
// is missing dirty directly (a no-op for source nodes, which never
// become dirty through graph propagation), then recomputes the dirty
// state of every leaf edge — an edge that consumes at least one source
// node — and lets MarkDirty's cascade take care of everything downstream.
// The direct pass is what lets a missing non-source output (one whose
// own inputs are otherwise up to date) be noticed at all: leaf recompute
// alone only ever visits edges reachable from a source node.
func (s *StatCache) Reload(disk DiskInterface) error {
	for _, f := range s.paths {
		if err := f.Stat(disk); err != nil {
			return err
		}
	}

	for _, f := range s.paths {
		if f.Mtime == 0 {
			f.node.MarkDirty()
		}
	}

	seen := make(map[*Edge]bool)
	for _, f := range s.paths {
		n := f.node
		if n.inEdge != nil {
			continue
		}
		for _, e := range n.outEdges {
			if seen[e] {
				continue
			}
			seen[e] = true
			if err := e.RecomputeDirty(disk); err != nil {
				return err
			}
		}
	}
	return nil
}
