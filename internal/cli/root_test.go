package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsearch/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvAddr, "")
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixture(t *testing.T) (root, cfgPath string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("foo\nbar\nfoobar\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("baz\nfoo\n"), 0o644))
	cfgPath = filepath.Join(t.TempDir(), "missing.yaml")
	return root, cfgPath
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "textsearch", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "tui", "search", "size"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("root"))
}

func TestSearchCommand(t *testing.T) {
	root, cfgPath := fixture(t)

	out, err := execute(t, "--config", cfgPath, "--root", root, "-q", "search", "foo")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"[1] Found data: foo",
		"[2] Found data: foobar",
		"[3] Found data: foo",
		"Folder size: 0.00 GB",
	}, "\n")+"\n", out)
}

func TestSearchCommandNoResults(t *testing.T) {
	root, cfgPath := fixture(t)

	out, err := execute(t, "--config", cfgPath, "--root", root, "-q", "search", "absent")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, config.Default().Messages.NoResults+"\n"))
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	_, cfgPath := fixture(t)
	_, err := execute(t, "--config", cfgPath, "-q", "search")
	assert.Error(t, err)
}

func TestSizeCommand(t *testing.T) {
	root, cfgPath := fixture(t)

	out, err := execute(t, "--config", cfgPath, "--root", root, "-q", "size", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "23\n", out)

	out, err = execute(t, "--config", cfgPath, "--root", root, "-q", "size")
	require.NoError(t, err)
	assert.Equal(t, "Folder size: 0.00 GB\n", out)
}

func TestConfigFileLimits(t *testing.T) {
	root, _ := fixture(t)
	cfgPath := filepath.Join(t.TempDir(), "textsearch.yaml")
	cfg := config.Default()
	cfg.Root = root
	cfg.Limits.MaxResults = 2
	cfg.Messages.Truncated = "truncated"
	require.NoError(t, config.Save(cfgPath, cfg))

	out, err := execute(t, "--config", cfgPath, "-q", "search", "foo")
	require.NoError(t, err)
	assert.Equal(t, "[1] Found data: foo\n[2] Found data: foobar\ntruncated\nFolder size: 0.00 GB\n", out)
}

func TestInvalidConfigRejected(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "textsearch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("limits:\n  max_files: -3\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "-q", "size")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_files")
}

func TestSplitSeq(t *testing.T) {
	tests := []struct {
		in, prefix, rest string
		ok               bool
	}{
		{"[1] Found data: x", "[1]", " Found data: x", true},
		{"[12] Found data: ]", "[12]", " Found data: ]", true},
		{"No data found.", "", "No data found.", false},
		{"[] empty", "", "[] empty", false},
		{"[a] nope", "", "[a] nope", false},
	}
	for _, tt := range tests {
		prefix, rest, ok := splitSeq(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.prefix, prefix, tt.in)
		assert.Equal(t, tt.rest, rest, tt.in)
	}
}
