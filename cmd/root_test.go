package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag state between executions; the
// command tree is process-global.
func resetFlags() {
	cfgFile, debug = "", false
	latexType, latexEncoding = "", ""
	latexMulti, latexDryRun, latexFind, latexPrint = false, false, false, false
	docbookType, docbookMulti = "", false
	xhtmlMulti = false
	checkMulti = false
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var out, errBuf bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errBuf.String(), err
}

func entryFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestLatexCommand(t *testing.T) {
	file := entryFile(t,
		"apple",
		`\textbf{bold}`,
	)

	stdout, _, err := execute(t, "latex", file)
	require.NoError(t, err)
	assert.Equal(t, "\\index{apple}\n\\index{bold@\\textbf{bold}}\n", stdout)
}

func TestLatexCommandMultiIndex(t *testing.T) {
	file := entryFile(t, "Smith")

	stdout, _, err := execute(t, "latex", "--multi-index", "-t", "aut", file)
	require.NoError(t, err)
	assert.Equal(t, "\\sindex[aut]{Smith}\n", stdout)
}

func TestLatexCommandPrint(t *testing.T) {
	file := entryFile(t, "apple")

	stdout, _, err := execute(t, "latex", "--print", file)
	require.NoError(t, err)
	assert.Equal(t, "\\index{apple}\n\\printindex{}\n", stdout)
}

func TestLatexCommandAsciiWarns(t *testing.T) {
	file := entryFile(t, `\emph{café}`)

	stdout, stderr, err := execute(t, "latex", "--encoding", "ascii", file)
	require.NoError(t, err)
	assert.Equal(t, "\\index{caf'e@\\emph{café}}\n", stdout)
	assert.Contains(t, stderr, "Index sorting failed")

	// The same run with --dry-run stays quiet.
	_, stderr, err = execute(t, "latex", "--encoding", "ascii", "--dry-run", file)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Index sorting failed")
}

func TestDocbookCommand(t *testing.T) {
	file := entryFile(t,
		"fruit!apple",
		"Term|(",
		"Term|)",
	)

	stdout, _, err := execute(t, "docbook", file)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"<indexterm><primary>fruit</primary><secondary>apple</secondary></indexterm>",
		`<indexterm class="startofrange" xml:id="Term"><primary>Term</primary></indexterm>`,
		`<indexterm class="endofrange" startref="Term"/>`,
	}, "\n")+"\n", stdout)
}

func TestXhtmlCommand(t *testing.T) {
	file := entryFile(t,
		"apple",
		"banana ! split",
		"apple",
	)

	stdout, _, err := execute(t, "xhtml", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "<h2 class='index'>Index</h2>")
	assert.Contains(t, stdout,
		"<li class='main'>apple: <a href='#index-entry-1'>1</a>, <a href='#index-entry-3'>2</a>")
	assert.Contains(t, stdout, "<li class='subentry'>split: <a href='#index-entry-2'>1</a>")
}

func TestCheckCommand(t *testing.T) {
	t.Run("clean entries pass", func(t *testing.T) {
		file := entryFile(t, "apple", "fruit!pear")
		stdout, _, err := execute(t, "check", file)
		require.NoError(t, err)
		assert.Contains(t, stdout, "OK")
		assert.Contains(t, stdout, "2 entries checked")
	})

	t.Run("findings fail the run", func(t *testing.T) {
		file := entryFile(t, "apple", "Peter|textbf")
		stdout, _, err := execute(t, "check", file)
		require.Error(t, err)
		assert.Contains(t, stdout, "entry 2:")
		assert.Contains(t, stdout, "unsupported command, textbf")
		assert.Contains(t, stdout, "FAIL")
	})
}

func TestMissingEntryFile(t *testing.T) {
	_, _, err := execute(t, "latex", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
