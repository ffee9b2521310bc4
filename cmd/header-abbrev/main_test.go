package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"weapons.txt": "name\tMinimumLevel\tMaxDamage\t*comment\nAxe\t1\t11\n",
		"armor.txt":   "name\tstrength\tDurability\n",
		"notes.md":    "not data\n",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGen_TypeScript(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)

	out := filepath.Join(dir, "out", "header_mappings.ts")

	stdout, stderr, err := execute(t, "gen", "-i", dir, "-o", out, "--print")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	expected := `// Auto-generated header mappings for D2 TXT files
const DEFAULT_HEADER_MAPPINGS: { [key: string]: string } = {
    "Durability": "Dur",
    "MaxDamage": "MDamage",
    "MinimumLevel": "MinLevel",
    "name": "name",
    "strength": "Str",
};
`
	assert.Equal(t, expected, string(data))
	assert.Contains(t, stdout, "Generated 5 header mappings:")
	assert.Contains(t, stdout, "MinimumLevel  MinLevel")
	assert.Contains(t, stdout, "Mappings saved to "+out)
	assert.Contains(t, stderr, "Processed file")
}

func TestGen_GoWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)

	out := filepath.Join(dir, "labels", "labels.go")
	cfgPath := filepath.Join(dir, "header-abbrev.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\noutput: "+out+"\nlog_level: error\n"), 0o644))

	_, stderr, err := execute(t, "gen", "-c", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package labels")
	assert.Contains(t, string(data), "var DefaultHeaderMappings = map[string]string{")
}

func TestCheck_YAML(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)

	out := filepath.Join(dir, "header_mappings.yaml")

	_, _, err := execute(t, "check", "-i", dir, "-o", out, "--log-level", "error")
	require.ErrorIs(t, err, errOutOfDate)

	_, _, err = execute(t, "gen", "-i", dir, "-o", out, "--log-level", "error")
	require.NoError(t, err)

	stdout, _, err := execute(t, "check", "-i", dir, "-o", out, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is up to date (5 mappings)")

	// A new column makes the committed file stale.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "misc.txt"), []byte("Hit Points\n"), 0o644))

	_, stderr, err := execute(t, "check", "-i", dir, "-o", out, "--log-level", "error")
	require.ErrorIs(t, err, errOutOfDate)
	assert.Contains(t, stderr, `"Hit Points": [missing_entry]`)
}

func TestCheck_TypeScript(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)

	out := filepath.Join(dir, "header_mappings.ts")

	_, _, err := execute(t, "gen", "-i", dir, "-o", out, "--log-level", "error")
	require.NoError(t, err)

	_, _, err = execute(t, "check", "-i", dir, "-o", out, "--log-level", "error")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(out, []byte("// edited\n"), 0o644))

	_, _, err = execute(t, "check", "-i", dir, "-o", out, "--log-level", "error")
	require.ErrorIs(t, err, errOutOfDate)
}

func TestExplain(t *testing.T) {
	stdout, _, err := execute(t, "explain", "Minimum_Strength_Requirement_Character_Experience", "Monstersound", "---")
	require.NoError(t, err)

	assert.Contains(t, stdout, `"Minimum_Strength_Requirement_Character_Experience" -> "MSRCExp"`)
	assert.Contains(t, stdout, "joined MinStrReqCharExp, initials")
	assert.Contains(t, stdout, `"Monstersound" -> "Monste"`)
	assert.Contains(t, stdout, "Truncate")
	assert.Contains(t, stdout, `"---" -> ""`)
	assert.Contains(t, stdout, "no words")

	_, _, err = execute(t, "explain")
	require.Error(t, err)
}

func TestExplain_Dump(t *testing.T) {
	stdout, _, err := execute(t, "explain", "--dump", "Parameter12")
	require.NoError(t, err)
	assert.Contains(t, stdout, "HeaderTrace")
	assert.Contains(t, stdout, "Param12")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "gen", "-i", t.TempDir(), "-o", "out.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, _, err = execute(t, "gen", "-i", filepath.Join(t.TempDir(), "absent"), "-o", "out.ts")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "header-abbrev version "+Version+"\n", stdout)
}
