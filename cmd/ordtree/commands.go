package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered/persistent/ordset"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	label = color.New(color.FgCyan).SprintFunc()
	alert = color.New(color.FgRed, color.Bold).SprintFunc()
)

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <int>...",
		Short: "Insert integers into a set and print the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseInts(args)
			if err != nil {
				return err
			}
			s := ordset.Ordered[int]().Empty()
			for _, k := range keys {
				s = s.With(k)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %v\n", label("elements:"), s.Elements())
			fmt.Fprint(out, s.Dump())
			return report(out, s.Check())
		},
	}
}

// fixture is the YAML input of the algebra command.
type fixture struct {
	A     []int `yaml:"a"`
	B     []int `yaml:"b"`
	Split *int  `yaml:"split,omitempty"`
}

func loadFixture(path string) (fixture, error) {
	var fx fixture
	data, err := os.ReadFile(path)
	if err != nil {
		return fx, err
	}
	if err = yaml.Unmarshal(data, &fx); err != nil {
		return fx, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

func algebraCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "algebra",
		Short: "Combine two sets loaded from a YAML fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := loadFixture(path)
			if err != nil {
				return err
			}
			ints := ordset.Ordered[int]()
			a, b := ints.OfList(fx.A...), ints.OfList(fx.B...)
			out := cmd.OutOrStdout()
			line := func(name string, x interface{}) {
				fmt.Fprintf(out, "%s %v\n", label(fmt.Sprintf("%-8s", name)), x)
			}
			line("a", a)
			line("b", b)
			line("a ∪ b", a.Union(b))
			line("a ∩ b", a.Inter(b))
			line("a ∖ b", a.Diff(b))
			line("a ⊆ b", a.Subset(b))
			line("compare", a.Compare(b))
			if fx.Split != nil {
				less, present, greater := a.Split(*fx.Split)
				line("split", fmt.Sprintf("%v %v %v", less, present, greater))
			}
			return report(out, a.Union(b).Check())
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "sets.yaml", "YAML file with lists 'a' and 'b'")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	keys := make([]int, len(args))
	for i, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", arg)
		}
		keys[i] = k
	}
	return keys, nil
}

func report(out io.Writer, err error) error {
	if err != nil {
		fmt.Fprintln(out, alert(err.Error()))
	}
	return err
}
