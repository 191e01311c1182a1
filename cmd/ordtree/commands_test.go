package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	color.NoColor = true
	root := rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "5", "3", "8", "1", "4", "7", "9")
	require.NoError(t, err)
	t.Logf("output =\n%s", out)
	assert.Contains(t, out, "elements: [1 3 4 5 7 8 9]")
	assert.Contains(t, out, "Tree(height=3, size=7)")
}

func TestShowRejectsNonIntegers(t *testing.T) {
	_, err := run(t, "show", "1", "two")
	assert.Error(t, err)
}

func TestAlgebra(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	fixture := "a: [1, 2, 3]\nb: [3, 4, 5]\nsplit: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	out, err := run(t, "--trace", "error", "algebra", "-f", path)
	require.NoError(t, err)
	t.Logf("output =\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expected := []string{
		"a        {1 2 3}",
		"b        {3 4 5}",
		"a ∪ b    {1 2 3 4 5}",
		"a ∩ b    {3}",
		"a ∖ b    {1 2}",
		"a ⊆ b    false",
		"compare  -1",
		"split    {1} true {3}",
	}
	assert.Equal(t, expected, lines)
}

func TestAlgebraMissingFixture(t *testing.T) {
	_, err := run(t, "algebra", "-f", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
