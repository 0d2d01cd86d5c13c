package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plans = `
scenarios:
  - name: sip
    kind: sip
    sip:
      monthly_amount: 5000
      annual_rate_percent: 12
      years: 10
  - name: cover
    kind: insurance
    insurance:
      age: 35
      annual_income: 1200000
      dependents: 2
`

func writePlans(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(plans), 0644))
	return path
}

// execute runs the CLI with args and returns what it wrote to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "finproj", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "finproj")
}

func TestCommandSubcommands(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"calculate", "validate", "export", "compare", "break-even", "serve", "version"} {
		assert.True(t, registered[name], "missing subcommand %s", name)
	}
}

func TestCalculate(t *testing.T) {
	path := writePlans(t)

	out, err := execute(t, "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO 1: sip (sip)")
	assert.Contains(t, out, "₹11,61,695")

	out, err = execute(t, "calculate", path, "-f", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))

	_, err = execute(t, "calculate", path, "-f", "pdf")
	assert.ErrorContains(t, err, `unknown format "pdf"`)
}

func TestCalculate_SaveDir(t *testing.T) {
	path := writePlans(t)
	dir := t.TempDir()

	out, err := execute(t, "calculate", path, "-f", "json", "--save-dir", dir)
	require.NoError(t, err)

	saved, err := filepath.Glob(filepath.Join(dir, "projection_report_*.json"))
	require.NoError(t, err)
	require.Len(t, saved, 1)
	data, err := os.ReadFile(saved[0])
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	_, err = execute(t, "calculate", path, "--save-dir", filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "failed to write")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", writePlans(t))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 scenarios)")

	_, err = execute(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	path := writePlans(t)

	out, err := execute(t, "export", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Period,PrincipalToDate,InterestToDate,TotalValue,PeriodGrowth", lines[0])
	assert.True(t, strings.HasPrefix(lines[10], "10,600000,"))
	assert.Contains(t, lines[10], "1161695")

	csvPath := filepath.Join(t.TempDir(), "sip.csv")
	_, err = execute(t, "export", path, "--scenario", "sip", "-o", csvPath)
	require.NoError(t, err)
	written, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))

	_, err = execute(t, "export", path, "--scenario", "cover")
	assert.ErrorContains(t, err, "no projection")

	_, err = execute(t, "export", path, "--stream", "blended")
	assert.ErrorContains(t, err, `no "blended" projection`)
}

func TestCompare(t *testing.T) {
	path := writePlans(t)

	out, err := execute(t, "compare", path, "--base", "sip", "--with", "double_contribution")
	require.NoError(t, err)
	assert.Contains(t, out, "WHAT-IF SCENARIO COMPARISON")
	assert.Contains(t, out, "sip_double_contribution")

	out, err = execute(t, "compare", path, "--base", "sip", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "sip_rate_plus_1")

	out, err = execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates")

	_, err = execute(t, "compare", path)
	assert.ErrorContains(t, err, "--base is required")
}

func TestBreakEven(t *testing.T) {
	path := writePlans(t)

	out, err := execute(t, "break-even", path, "--scenario", "sip", "--target", "contribution", "--target-value", "2323391")
	require.NoError(t, err)
	assert.Contains(t, out, "BREAK-EVEN OPTIMIZATION RESULTS")

	out, err = execute(t, "break-even", path, "--scenario", "sip", "--target", "contribution", "--target-value", "2323391", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"optimal_contribution_factor"`)

	_, err = execute(t, "break-even", path, "--scenario", "sip", "--target", "luck")
	assert.ErrorContains(t, err, `unknown target "luck"`)

	_, err = execute(t, "break-even", path, "--scenario", "nope", "--target-value", "1")
	assert.ErrorContains(t, err, "not found")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "finproj dev")
}
