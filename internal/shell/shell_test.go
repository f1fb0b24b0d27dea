package shell_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/0xalexb/pathwalk"
	yamlparser "github.com/0xalexb/pathwalk/config/parser/yaml"
	"github.com/0xalexb/pathwalk/internal/shell"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": "leaf"},
		},
	}
}

func newShell(t *testing.T, out io.Writer, opts ...shell.Option) *shell.Shell {
	t.Helper()

	sh, err := shell.New(newDocument(), append([]shell.Option{shell.WithOutput(out)}, opts...)...)
	require.NoError(t, err)

	return sh
}

func TestShell_Transcript(t *testing.T) {
	t.Parallel()

	steps := []struct {
		command string
		output  string
	}{
		{"open a.b.c", "walking a.b.c (3 keys)\n"},
		{"peek", "next a = map[b:map[c:leaf]]\n"},
		{"next", "a = map[b:map[c:leaf]]\n"},
		{"back", "previous (none) = map[a:map[b:map[c:leaf]]]\n"},
		{"n", "b = map[c:leaf]\n"},
		{"back", "previous a = map[b:map[c:leaf]]\n"},
		{"path", "a.b\n"},
		{"remaining", "c\n"},
		{"depth", "2/3\n"},
		{"next", "c = leaf\n"},
		{"next", "Error: no next step\n"},
		{"peek", "Error: no next step\n"},
		{"remaining", "(end)\n"},
		{"p", "b = map[c:leaf]\n"},
		{"reset", "(none) = map[a:map[b:map[c:leaf]]]\n"},
		{"prev", "Error: no previous step\n"},
		{"back", "Error: no previous step\n"},
		{"key", "(none)\n"},
		{"path", "(root)\n"},
		{"  NEXT  ", "a = map[b:map[c:leaf]]\n"},
		{"key", "a\n"},
		{"v", "map[b:map[c:leaf]]\n"},
	}

	var out bytes.Buffer

	sh := newShell(t, &out)

	for _, step := range steps {
		out.Reset()

		quit := sh.Exec(step.command)

		require.False(t, quit, step.command)
		require.Equal(t, step.output, out.String(), "command %q", step.command)
	}
}

func TestShell_MissingKeys(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sh := newShell(t, &out)

	sh.Exec("open a.x.y")
	out.Reset()

	sh.Exec("next")
	sh.Exec("next")
	sh.Exec("value")

	assert.Equal(t, "a = map[b:map[c:leaf]]\nx = (missing)\n(missing)\n", out.String())
}

func TestShell_CommandErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		command string
		output  string
	}{
		{"navigation before open", "next", "Error: no path open; use open <path>\n"},
		{"unknown command", "jump", "Error: unknown command \"jump\", try help\n"},
		{"open without path", "open", "Error: missing path argument\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			sh := newShell(t, &out)
			sh.Exec(testCase.command)

			assert.Equal(t, testCase.output, out.String())
		})
	}
}

func TestShell_OpenReplacesWalk(t *testing.T) {
	t.Parallel()

	sh := newShell(t, io.Discard)
	assert.Nil(t, sh.Walker())

	require.NoError(t, sh.Open("a.b"))
	require.NoError(t, sh.Walker().Next())

	require.NoError(t, sh.Open("a"))
	assert.Equal(t, 0, sh.Walker().CurrentDepth())
	assert.Equal(t, []string{"a"}, sh.Walker().Path())

	err := sh.Open("")
	require.ErrorIs(t, err, pathwalk.ErrPathRequired)
	assert.Equal(t, []string{"a"}, sh.Walker().Path(), "failed open keeps the previous walk")
}

func TestShell_ExitCommands(t *testing.T) {
	t.Parallel()

	sh := newShell(t, io.Discard)

	assert.True(t, sh.Exec("exit"))
	assert.True(t, sh.Exec("QUIT"))
	assert.False(t, sh.Exec("   "))
}

func TestShell_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sh := newShell(t, &out)
	sh.Exec("help")

	assert.Contains(t, out.String(), "open <path>")
	assert.Contains(t, out.String(), "exit, quit")
}

func TestShell_Prompt(t *testing.T) {
	t.Parallel()

	sh := newShell(t, io.Discard, shell.WithPrompt("walk> "))

	assert.Equal(t, "walk> ", sh.Prompt())

	require.NoError(t, sh.Open("a.b[0]"))
	assert.Equal(t, "walk> ", sh.Prompt())

	require.NoError(t, sh.Walker().Next())
	require.NoError(t, sh.Walker().Next())
	require.NoError(t, sh.Walker().Next())
	assert.Equal(t, "walk:a.b[0]> ", sh.Prompt())
}

func TestNew_RequiresRoot(t *testing.T) {
	t.Parallel()

	sh, err := shell.New(nil)

	require.ErrorIs(t, err, pathwalk.ErrObjectRequired)
	assert.Nil(t, sh)
}

func TestShell_WalksYAMLDocument(t *testing.T) {
	t.Parallel()

	root, err := yamlparser.NewParser().ParseDocument([]byte(`
services:
  - name: api
    port: 8080
`))
	require.NoError(t, err)

	var out bytes.Buffer

	sh, err := shell.New(root,
		shell.WithOutput(&out),
		shell.WithIndexer(yamlparser.Indexer),
		shell.WithRenderer(yamlparser.Render),
	)
	require.NoError(t, err)

	sh.Exec("open services[0].port")
	sh.Exec("next")
	sh.Exec("next")
	out.Reset()

	sh.Exec("next")

	assert.Equal(t, "port = 8080\n", out.String())
}

type scriptedReader struct {
	lines   []string
	errs    []error
	prompts []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}

	line, err := r.lines[0], r.errs[0]
	r.lines, r.errs = r.lines[1:], r.errs[1:]

	return line, err
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func script(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines, errs: make([]error, len(lines))}
}

func TestShell_Run(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sh := newShell(t, &out)
	reader := script("open a.b", "", "next", "next", "exit", "prev")

	require.NoError(t, sh.Run(reader))

	assert.Equal(t, "walking a.b (2 keys)\na = map[b:map[c:leaf]]\nb = map[c:leaf]\n", out.String())
	assert.Equal(t, []string{
		"pathwalk> ",
		"pathwalk> ",
		"pathwalk> ",
		"pathwalk:a> ",
		"pathwalk:a.b> ",
	}, reader.prompts)
	assert.Len(t, reader.lines, 1, "input after exit is not read")
}

func TestShell_RunStopsAtEOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sh := newShell(t, &out)

	require.NoError(t, sh.Run(script("open a", "next")))
	assert.True(t, strings.HasSuffix(out.String(), "a = map[b:map[c:leaf]]\n"))
}

func TestShell_RunInterrupts(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sh := newShell(t, &out)
	reader := &scriptedReader{
		lines: []string{"half typed", "open a", ""},
		errs:  []error{readline.ErrInterrupt, nil, readline.ErrInterrupt},
	}
	reader.lines = append(reader.lines, "next")
	reader.errs = append(reader.errs, nil)

	require.NoError(t, sh.Run(reader))

	assert.Equal(t, "walking a (1 keys)\n", out.String(), "interrupt on an empty line ends the session")
	assert.Len(t, reader.lines, 1)
}

func TestShell_RunReadError(t *testing.T) {
	t.Parallel()

	broken := errors.New("terminal gone")
	reader := &scriptedReader{lines: []string{""}, errs: []error{broken}}

	err := newShell(t, io.Discard).Run(reader)

	require.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "reading input")
}
