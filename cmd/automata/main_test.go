package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		evalCmd.Flags().Set("json", "false")
		graphCmd.Flags().Set("format", "mermaid")
		graphCmd.Flags().Set("input", "")
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEval(t *testing.T) {
	t.Run("Report", func(t *testing.T) {
		out, err := execute(t, "eval", "custom", "xy")
		require.NoError(t, err)
		assert.Contains(t, out, "ACEPTADA")
		assert.Contains(t, out, "| 2 | `y` | B -> D |")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "eval", "binario", "012", "--json")
		require.NoError(t, err)

		var got domain.Outcome
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, domain.Binario, got.AutomatonID)
		assert.False(t, got.Result.Accepted)
		assert.Equal(t, "q_error", got.Result.FinalState)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := execute(t, "eval", "pila", "a")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownAutomaton)
	})

	t.Run("WrongArity", func(t *testing.T) {
		_, err := execute(t, "eval", "custom")
		require.Error(t, err)
	})
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "par_impar"))
	assert.True(t, strings.HasPrefix(lines[3], "custom"))
}

func TestGraph(t *testing.T) {
	t.Run("Mermaid", func(t *testing.T) {
		out, err := execute(t, "graph", "vocales", "--input", "ae")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "graph LR"))
		assert.Contains(t, out, "class s_2 current;")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "graph", "par_impar", "--format", "json")
		require.NoError(t, err)

		var d domain.Diagram
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "Par", d.Initial)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := execute(t, "graph", "par_impar", "--format", "dot")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "automata version "+strings.TrimSpace(automata.Version)+"\n", out)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "automata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\nstatic_dir: web\n"), 0o644))
	t.Setenv("AUTOMATA_PORT", "5000")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", path, "")
	cmd.Flags().Int("port", 3000, "")
	cmd.Flags().String("static", "", "")
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().String("log-format", "text", "")

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port, "env beats file")
	assert.Equal(t, "web", cfg.StaticDir)

	require.NoError(t, cmd.Flags().Set("port", "6000"))
	cfg, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port, "flag beats env")
}
