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

// Command ibuild is a small, single-threaded incremental build tool: it
// reads a manifest, stats the files it references, and runs whatever
// commands are needed to bring the requested targets up to date.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gobuildtools/ibuild"
	"github.com/gobuildtools/ibuild/manifest"
)

var (
	manifestPath string
	chdir        string
	dryRun       bool
	explain      bool
)

func main() {
	root := &cobra.Command{
		Use:          "ibuild [targets...]",
		Short:        "A small incremental build tool",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVarP(&manifestPath, "file", "f", "build.ibuild", "manifest file to load")
	root.Flags().StringVarP(&chdir, "chdir", "C", "", "change to this directory before loading the manifest")
	root.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the commands that would run, without running them")
	root.Flags().BoolVarP(&explain, "explain", "d", false, "print why each rebuilt target was considered dirty")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if chdir != "" {
		if err := os.Chdir(chdir); err != nil {
			return errors.Wrapf(err, "chdir %s", chdir)
		}
	}

	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", manifestPath)
	}

	if explain {
		ibuild.SetExplaining(true)
	}

	state := ibuild.NewState()
	parser, err := manifest.Parse(state, manifestPath, string(content))
	if err != nil {
		return errors.Wrap(err, "parsing manifest")
	}

	targets, err := resolveTargets(state, parser, args)
	if err != nil {
		return err
	}

	if err := state.Stats.Reload(ibuild.RealDiskInterface{}); err != nil {
		return errors.Wrap(err, "stating build graph")
	}

	plan := ibuild.NewPlan()
	for _, t := range targets {
		plan.AddTarget(t)
	}

	total := plan.Count()
	status := newStatusPrinter(os.Stdout, total)

	var shell ibuild.Shell
	if dryRun {
		shell = newDryRunShell(os.Stdout)
	} else {
		shell = newExecShell(status)
	}

	builder := ibuild.NewBuilder(state, plan)
	buildErr := builder.Build(shell)
	if explain {
		ibuild.PrintExplanations(os.Stderr)
	}

	switch buildErr.(type) {
	case nil:
		return nil
	case *ibuild.NoWork:
		fmt.Fprintln(os.Stdout, "ibuild: nothing to do")
		return nil
	default:
		return errors.Wrap(buildErr, "build failed")
	}
}

// resolveTargets maps command-line target names to nodes, falling back
// to the manifest's "default" statement and finally to every output of
// every edge.
func resolveTargets(state *ibuild.State, parser *manifest.Parser, args []string) ([]*ibuild.Node, error) {
	names := args
	if len(names) == 0 {
		names = parser.Defaults()
	}
	if len(names) > 0 {
		var knownOutputs []string
		for _, e := range state.Edges() {
			for _, o := range e.Outputs() {
				knownOutputs = append(knownOutputs, o.Path())
			}
		}

		nodes := make([]*ibuild.Node, 0, len(names))
		for _, n := range names {
			node := state.GetNode(n)
			if node.InEdge() == nil {
				msg := fmt.Sprintf("unknown target %q", n)
				if suggestion := ibuild.SpellcheckString(n, knownOutputs); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
				}
				return nil, errors.New(msg)
			}
			nodes = append(nodes, node)
		}
		return nodes, nil
	}

	var nodes []*ibuild.Node
	for _, e := range state.Edges() {
		nodes = append(nodes, e.Outputs()...)
	}
	return nodes, nil
}

