package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	order := filepath.Join("testdata", "order.plg")
	loop := filepath.Join("testdata", "loop.plg")

	t.Run("validate", func(t *testing.T) {
		out, err := execute(t, "validate", order)
		require.NoError(t, err)
		assert.Contains(t, out, "is valid")

		out, err = execute(t, "validate", loop)
		require.Error(t, err)
		assert.Contains(t, out, "warning: sequenceFlow 4")
	})

	t.Run("inspect", func(t *testing.T) {
		out, err := execute(t, "inspect", order)
		require.NoError(t, err)
		assert.Contains(t, out, "order handling")
		assert.Regexp(t, `sequences\s+6`, out)
		assert.Regexp(t, `data objects\s+3`, out)
	})

	t.Run("convert and diff", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "order.plg")
		_, err := execute(t, "convert", order, target)
		require.NoError(t, err)
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "<?xml"))

		out, err := execute(t, "diff", order, target)
		require.NoError(t, err)
		assert.Contains(t, out, "processes are identical")

		out, err = execute(t, "diff", order, loop, "--context", "0")
		require.NoError(t, err)
		assert.Contains(t, out, "hunk(s)")
	})

	t.Run("graph", func(t *testing.T) {
		out, err := execute(t, "graph", order, "--data", "--highlight", "5")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "graph TD\n"))
		assert.Contains(t, out, `n5["check stock"]`)
		assert.Contains(t, out, `d0[("channel")]`)
		assert.Contains(t, out, "class n5 highlighted;")
	})

	t.Run("sample", func(t *testing.T) {
		out, err := execute(t, "sample", order, "-n", "2", "--seed", "7")
		require.NoError(t, err)
		assert.Contains(t, out, "case_0\n")
		assert.Contains(t, out, "case_1\n")
		assert.Contains(t, out, "  channel 0 = web\n")
		assert.Contains(t, out, "  ship 6 = 3\n")
		assert.Contains(t, out, "value_case_1_")

		again, err := execute(t, "sample", order, "-n", "2", "--seed", "7")
		require.NoError(t, err)
		assert.Equal(t, out, again)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "inspect", filepath.Join("testdata", "absent.plg"))
		assert.Error(t, err)
	})
}
