package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Success(t *testing.T) {
	path := writeFile(t, "data.csv", "x,y\n1,2\n2,4\nabc,5\n3,6\n")

	code, stdout, stderr := execute(path)
	require.Equal(t, 0, code)

	want := `Pearson Correlation Coefficient: 1.0000
Statistics:
  X Values: [1.0, 2.0, 3.0]
  Y Values: [2.0, 4.0, 6.0]
  Mean of X Values (Mx): 2.0000
  Mean of Y Values (My): 4.0000
  Deviation Scores (X - Mx): [-1.0, 0.0, 1.0]
  Deviation Scores (Y - My): [-2.0, 0.0, 2.0]
  Deviation Squared ((X - Mx)^2): [1.0, 0.0, 1.0]
  Deviation Squared ((Y - My)^2): [4.0, 0.0, 4.0]
  Product of Deviation Scores ((X - Mx)(Y - My)): [2.0, 0.0, 2.0]
`
	require.Equal(t, want, stdout)
	require.Contains(t, stderr, "Error reading line 4: Invalid format.")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", nil, "expected 1 argument, got 0"},
		{"too many arguments", []string{"a.csv", "b.csv"}, "expected 1 argument, got 2"},
		{"empty path", []string{""}, "file path cannot be empty"},
		{"unknown flag", []string{"--bogus", "a.csv"}, "unknown flag"},
		{"bad format", []string{"--format", "xml", "a.csv"}, "report.format"},
		{"bad precision", []string{"-p", "40", "a.csv"}, "report.precision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(tt.args...)
			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, tt.want)
			require.Contains(t, stderr, usageLine)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	code, stdout, stderr := execute(filepath.Join(t.TempDir(), "missing.csv"))
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "source not found")
	require.NotContains(t, stderr, usageLine)
}

func TestRun_JSONWithDigest(t *testing.T) {
	path := writeFile(t, "data.csv", "1,1\n2,2\n2,2\n")

	code, stdout, _ := execute("--format", "json", "--digest", path)
	require.Equal(t, 0, code)

	require.Equal(t, int64(3), gjson.Get(stdout, "n").Int())
	require.True(t, gjson.Get(stdout, "defined").Bool())
	require.Len(t, gjson.Get(stdout, "digest").String(), 16)
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	data := writeFile(t, "data.txt", "x;y\n1;5\n2;3\n3;1\n")
	cfg := writeFile(t, "pearson.yaml", "input:\n  delimiter: \";\"\nreport:\n  format: yaml\n  precision: 2\n")

	code, stdout, _ := execute("--config", cfg, data)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "n: 3\n")
	require.Contains(t, stdout, "degeneracy: none\n")

	code, stdout, _ = execute("-c", cfg, "-f", "text", data)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Pearson Correlation Coefficient: -1.00\n")
}

func TestRun_InvalidConfigFile(t *testing.T) {
	data := writeFile(t, "data.csv", "1,2\n")
	cfg := writeFile(t, "pearson.yaml", "report:\n  format: xml\n")

	code, _, stderr := execute("--config", cfg, data)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "config: report.format")
}

func TestRun_Degenerate(t *testing.T) {
	path := writeFile(t, "data.csv", "1,2\n1,3\n")

	code, stdout, _ := execute(path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Pearson Correlation Coefficient: NaN\n")
}
