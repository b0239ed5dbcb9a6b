// SPDX-License-Identifier: MIT
package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsvt/cmd/qsvt/commands"
	"github.com/katalvlaran/qsvt/spectral"
	"github.com/katalvlaran/qsvt/walkthrough"
)

// execute runs the CLI in an isolated working directory and HOME.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func decodeReport(t *testing.T, out string) walkthrough.Report {
	t.Helper()
	var rep walkthrough.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	return rep
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "run", "--format", "json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	require.NotNil(t, rep.SqrtMatrix)
	assert.True(t, rep.SqrtMatrix.WithinTolerance)
	require.NotNil(t, rep.Fractional)
	assert.Len(t, rep.Fractional.Entries, 3)
}

func TestRun_Table(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "√A exact vs polynomial")
	assert.Contains(t, out, "Fractional powers")
}

func TestSections_OnlyFillTheirPart(t *testing.T) {
	tests := []struct {
		cmd   string
		check func(t *testing.T, rep walkthrough.Report)
	}{
		{"matrix", func(t *testing.T, rep walkthrough.Report) {
			require.NotNil(t, rep.Matrix)
			assert.Nil(t, rep.Powers)
		}},
		{"powers", func(t *testing.T, rep walkthrough.Report) {
			require.NotNil(t, rep.Powers)
			assert.Len(t, rep.Powers.Entries, 4)
			assert.Nil(t, rep.Sqrt)
		}},
		{"sqrt", func(t *testing.T, rep walkthrough.Report) {
			require.NotNil(t, rep.Sqrt)
			require.NotNil(t, rep.SqrtMatrix)
			assert.Nil(t, rep.Fractional)
		}},
		{"fractional", func(t *testing.T, rep walkthrough.Report) {
			require.NotNil(t, rep.Fractional)
			assert.Nil(t, rep.Matrix)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.cmd, func(t *testing.T) {
			out, err := execute(t, tc.cmd, "--format", "json")
			require.NoError(t, err)
			tc.check(t, decodeReport(t, out))
		})
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	out, err := execute(t, "sqrt", "--format", "json",
		"--degree", "4", "--domain-low", "0.1", "--eigenvalues", "0.3,0.9", "--backend", "gonum")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, 4, rep.Config.Degree)
	assert.Equal(t, 0.1, rep.Config.DomainLow)
	assert.Equal(t, []float64{0.3, 0.9}, rep.Config.Eigenvalues)
	assert.Equal(t, "gonum", rep.Config.Backend)
	assert.Len(t, rep.Sqrt.Coefficients, 5)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("QSVT_DEGREE", "3")
	out, err := execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var cfg walkthrough.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 3, cfg.Degree)
}

func TestApply(t *testing.T) {
	out, err := execute(t, "apply", "--func", "inv", "--format", "json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	require.NotNil(t, rep.Apply)
	assert.InDeltaSlice(t, []float64{5, 1.25}, rep.Apply.Transformed, 1e-12)

	out, err = execute(t, "apply", "--func", "pow:0.25", "--approx", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "func: pow:0.25")
	assert.Contains(t, out, "max_abs_error:")

	_, err = execute(t, "apply", "--func", "cosh")
	require.ErrorIs(t, err, spectral.ErrUnknownFunc)
}

func TestConfigInitThenUse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qsvt.toml")

	out, err := execute(t, "config", "init", path, "--degree", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "degree = 5")

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	_, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# loaded from "+path)
	assert.Contains(t, out, "degree = 6")
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml")
	require.ErrorIs(t, err, walkthrough.ErrUnknownFormat)

	_, err = execute(t, "run", "--domain-low", "0.5")
	require.ErrorIs(t, err, walkthrough.ErrInvalidConfig)

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = execute(t, "matrix", "extra")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "qsvt dev")

	out, err = execute(t, "version", "--format", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}
