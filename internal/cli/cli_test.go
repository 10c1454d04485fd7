package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/unistyle"
)

// run executes the CLI with args and stdin, isolated from any user config.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStyleArgs(t *testing.T) {
	out, _, err := run(t, "", "style", "-s", "bold", "Hello,", "World!")
	require.NoError(t, err)
	assert.Equal(t, "𝐇𝐞𝐥𝐥𝐨, 𝐖𝐨𝐫𝐥𝐝!\n", out)
}

func TestStyleStdin(t *testing.T) {
	in := unistyle.StyleConvert("Hello\nWorld\n", unistyle.Fraktur)
	out, _, err := run(t, in, "style")
	require.NoError(t, err)
	assert.Equal(t, "Hello\nWorld\n", out)

	out, _, err = run(t, "Hello\n", "style", "--style", "double-struck")
	require.NoError(t, err)
	assert.Equal(t, unistyle.StyleConvert("Hello\n", unistyle.DoubleStruck), out)
}

func TestStyleFromConfig(t *testing.T) {
	conf := writeConfig(t, `style = "italic"`)
	out, _, err := run(t, "", "--config", conf, "style", "Hi")
	require.NoError(t, err)
	assert.Equal(t, unistyle.StyleConvert("Hi", unistyle.Italic)+"\n", out)

	out, _, err = run(t, "", "--config", conf, "style", "-s", "mono", "Hi")
	require.NoError(t, err)
	assert.Equal(t, unistyle.StyleConvert("Hi", unistyle.Monospace)+"\n", out, "flag overrides config")
}

func TestLine(t *testing.T) {
	out, _, err := run(t, "", "line", "-m", "underline", "ab")
	require.NoError(t, err)
	assert.Equal(t, "a\u0332b\u0332\n", out)

	// streamed input is marked as a whole, including the line break
	out, _, err = run(t, "a\u0332b\n", "line", "-m", "underline", "--replace")
	require.NoError(t, err)
	assert.Equal(t, "a\u0332b\u0332\n\u0332", out)

	conf := writeConfig(t, `marks = ["overline", "strikethrough"]`)
	out, _, err = run(t, "", "--config", conf, "line", "x")
	require.NoError(t, err)
	assert.Equal(t, unistyle.AddLine("x", unistyle.Overline, unistyle.Strikethrough)+"\n", out)
}

func TestUnline(t *testing.T) {
	lined := unistyle.AddLine("Hello", unistyle.Underline, unistyle.Overline)
	out, _, err := run(t, lined+"\n", "unline")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)

	out, _, err = run(t, "", "unline", "--mark", "overline", lined)
	require.NoError(t, err)
	assert.Equal(t, unistyle.AddLine("Hello", unistyle.Underline)+"\n", out)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Styles")
	assert.Contains(t, out, "FrakturBold")
	assert.Contains(t, out, unistyle.StyleConvert(sample, unistyle.ScriptBold))
	assert.Contains(t, out, "Line marks")
	assert.Contains(t, out, "AsteriskAbove U+20F0")

	out, _, err = run(t, "", "list", "--styles")
	require.NoError(t, err)
	assert.NotContains(t, out, "Line marks")

	_, _, err = run(t, "", "list", "--styles", "--marks")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown style", []string{"style", "-s", "comic", "x"}, "unknown style"},
		{"ambiguous mark", []string{"line", "-m", "strike", "x"}, "ambiguous line mark"},
		{"no marks", []string{"line", "x"}, "no line marks"},
		{"missing config", []string{"--config", "/nonexistent/unistyle.toml", "style", "x"}, "reading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConfigUnknownKey(t *testing.T) {
	conf := writeConfig(t, "style = \"bold\"\ncolour = \"red\"\n")
	_, _, err := run(t, "", "--config", conf, "style", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestConfigBadStyle(t *testing.T) {
	conf := writeConfig(t, `style = "nope"`)
	_, _, err := run(t, "", "--config", conf, "style", "x")
	assert.Error(t, err)
}

func TestVerbose(t *testing.T) {
	_, errOut, err := run(t, "", "-v", "style", "-s", "bold", "x")
	require.NoError(t, err)
	assert.Contains(t, errOut, "converting")

	_, errOut, err = run(t, "", "style", "-s", "bold", "x")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestCanceledStdin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	root := newRootCmd(strings.NewReader("Hello"), &out, &bytes.Buffer{})
	root.SetArgs([]string{"style", "-s", "bold"})
	err := root.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestLoggerFromContext(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))
	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(version, commit, date)
	SetVersion("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}
