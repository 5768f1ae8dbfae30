package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pageflip/internal/config"
)

// execute runs the root command with args and captures its output.
// The config path is pinned to a temp location so user config never
// leaks into tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))

	root := NewRootCmd("1.0.0-test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")

	require.NotNil(t, root)
	assert.Equal(t, "pageflip", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "pages")
	assert.Contains(t, names, "browse")
	assert.Contains(t, names, "config")
}

func TestPagesCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantBar  string
		wantInfo string
	}{
		{
			name: "elided bar with gaps",
			args: []string{
				"pages", "--plain", "--total-items", "20",
				"--page-size", "2", "--page", "5", "--inner", "1", "--outer", "1",
			},
			wantBar:  "1 ... 4 [5] 6 ... 10",
			wantInfo: "20 items · 10 pages · page 5",
		},
		{
			name: "zero windows collapse to the current page",
			args: []string{
				"pages", "--plain", "--total-items", "20",
				"--page-size", "2", "--page", "5", "--inner", "0", "--outer", "0",
			},
			wantBar: "[5]",
		},
		{
			name: "out-of-range page clamps",
			args: []string{
				"pages", "--plain", "--total-items", "20",
				"--page-size", "2", "--page", "42", "--inner", "0", "--outer", "0",
			},
			wantBar:  "[10]",
			wantInfo: "page 10",
		},
		{
			name: "empty collection still has one page",
			args: []string{
				"pages", "--plain", "--total-items", "0",
				"--page-size", "5", "--inner", "2", "--outer", "2",
			},
			wantBar:  "[1]",
			wantInfo: "0 items · 1 pages · page 1",
		},
		{
			name: "grouped digits for large collections",
			args: []string{
				"pages", "--plain", "--total-items", "100000",
				"--page-size", "10", "--page", "1", "--inner", "1", "--outer", "1",
			},
			wantInfo: "100,000 items · 10,000 pages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			require.Len(t, lines, 2, "page bar plus summary line")
			if tt.wantBar != "" {
				assert.Equal(t, tt.wantBar, lines[0])
			}
			if tt.wantInfo != "" {
				assert.Contains(t, lines[1], tt.wantInfo)
			}
		})
	}
}

func TestPagesCmd_RequiresTotalItems(t *testing.T) {
	_, err := execute(t, "pages", "--plain")
	assert.Error(t, err)
}

func TestPagesCmd_NegativeTotalItems(t *testing.T) {
	_, err := execute(t, "pages", "--plain", "--total-items", "-5")
	assert.ErrorContains(t, err, "--total-items")
}

func TestPagesCmd_ConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pagination:
  page_size: 2
  inner_window: 1
  outer_window: 1
`), 0o600))
	t.Setenv(config.EnvConfigPath, path)

	root := NewRootCmd("1.0.0-test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"pages", "--plain", "--total-items", "20", "--page", "5"})

	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "1 ... 4 [5] 6 ... 10\n"),
		"config supplies page size and windows; got %q", out.String())
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageflip", "config.yaml")
	t.Setenv(config.EnvConfigPath, path)

	root := NewRootCmd("1.0.0-test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init"})
	require.NoError(t, root.Execute())
	require.FileExists(t, path)

	show := NewRootCmd("1.0.0-test")
	out.Reset()
	show.SetOut(&out)
	show.SetErr(&out)
	show.SetArgs([]string{"config", "show"})
	require.NoError(t, show.Execute())

	assert.Contains(t, out.String(), "page_size: 10")
	assert.Contains(t, out.String(), "schema_version:")
}

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	// Test processes never have a TTY on stdout.
	_, err := execute(t, "browse", "--rows", "5")
	assert.ErrorContains(t, err, "terminal")
}

func TestBrowseRows(t *testing.T) {
	t.Run("generated sample rows", func(t *testing.T) {
		rows, err := browseRows(nil, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"sample row 1", "sample row 2", "sample row 3"}, rows)
	})

	t.Run("file lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rows.txt")
		require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o600))

		rows, err := browseRows([]string{path}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, rows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := browseRows([]string{filepath.Join(t.TempDir(), "nope")}, 0)
		assert.Error(t, err)
	})
}
