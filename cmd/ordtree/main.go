/*
Ordtree is a playground for persistent ordered sets.

Usage:

    ordtree show 5 3 8 1 4 7 9
    ordtree algebra -f sets.yaml
    ordtree --trace debug show 1 2 3 4 5

show inserts integers one by one into an empty set and prints the elements
together with the shape of the resulting tree. algebra loads two sets from a
YAML fixture,

    a: [1, 2, 3]
    b: [3, 4, 5]
    split: 3

and prints their union, intersection, difference and comparison.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:          "ordtree",
		Short:        "Playground for persistent ordered sets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "trace", "error", "trace level (debug|info|error)")
	root.AddCommand(showCommand(), algebraCommand())
	return root
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("ordered.avl").SetTraceLevel(tracing.TraceLevelFromString(level))
}
