package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertRecorder struct {
	titles []string
}

func (a *alertRecorder) Warning(title, _ string) {
	a.titles = append(a.titles, title)
}

func render(p Params, rich, plain string) string {
	var sb strings.Builder
	s := NewStream(&sb)
	WriteEntry(s, p, rich, plain)
	return sb.String()
}

func TestWriteEntry(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		rich  string
		plain string
		want  string
	}{
		{
			name:  "plain entry needs no sort key",
			rich:  "apple",
			plain: "apple",
			want:  `\index{apple}`,
		},
		{
			name:  "formatted term gets plaintext sort key",
			rich:  `\textbf{bold}`,
			plain: "bold",
			want:  `\index{bold@\textbf{bold}}`,
		},
		{
			name:  "existing sort key left alone",
			rich:  `TeX@\TeX`,
			plain: "TeX",
			want:  `\index{TeX@\TeX}`,
		},
		{
			name:  "empty plaintext falls back to the latex form",
			rich:  `\TeX`,
			plain: "",
			want:  `\index{TeX@\TeX}`,
		},
		{
			name:  "trailing command reattached",
			rich:  `\textbf{bold}|see{plain}`,
			plain: "bold|see{plain}",
			want:  `\index{bold@\textbf{bold}|see{plain}}`,
		},
		{
			name:  "sort key synthesized per level",
			rich:  `a ! \textbf{b}`,
			plain: "a ! b",
			want:  `\index{a ! b@ \textbf{b}}`,
		},
		{
			name:  "quotes in sort key escaped",
			rich:  `\emph{"q"}`,
			plain: `"q"`,
			want:  `\index{\"q\"@\emph{"q"}}`,
		},
		{
			name:  "multi-index wrap",
			p:     Params{UseIndices: true, IndexType: "aut"},
			rich:  "Smith",
			plain: "Smith",
			want:  `\sindex[aut]{Smith}`,
		},
		{
			name:  "main index keeps plain command under multi-index",
			p:     Params{UseIndices: true, IndexType: "idx"},
			rich:  "Smith",
			plain: "Smith",
			want:  `\index{Smith}`,
		},
		{
			name:  "pattern search emits verbatim",
			p:     Params{FindEffective: true},
			rich:  `\textbf{bold}|see{x}`,
			plain: "bold",
			want:  `\index{\textbf{bold}|see{x}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.p, tt.rich, tt.plain); got != tt.want {
				t.Errorf("WriteEntry(%q) = %q, want %q", tt.rich, got, tt.want)
			}
		})
	}
}

func TestWriteEntryAlertsOnRewrittenSortKey(t *testing.T) {
	rec := &alertRecorder{}
	p := Params{Encoder: ASCII{}, Alert: rec}

	got := render(p, `\emph{café}`, "café")

	// The accent macro spelling replaces the raw character in the key,
	// and the rewrite is surfaced to the user.
	assert.Equal(t, `\index{caf'e@\emph{café}}`, got)
	require.Len(t, rec.titles, 1)
	assert.Equal(t, "Index sorting failed", rec.titles[0])
}

func TestWriteEntryDryRunSuppressesAlert(t *testing.T) {
	rec := &alertRecorder{}
	p := Params{Encoder: ASCII{}, Alert: rec, DryRun: true}

	render(p, `\emph{café}`, "café")

	assert.Empty(t, rec.titles)
}

func TestStreamDefersFragileContent(t *testing.T) {
	var sb strings.Builder
	s := NewStream(&sb)
	s.SetDeferFragile(true)

	WriteEntry(s, Params{}, "apple", "apple")

	assert.Empty(t, sb.String(), "deferred content must not hit the stream")
	assert.Equal(t, `\index{apple}`, s.Deferred())

	s.FlushDeferred()
	assert.Equal(t, `\index{apple}`, sb.String())
	assert.Empty(t, s.Deferred())
}

func TestWritePrintIndex(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		cmd  string
		typ  string
		idx  string
		want string
	}{
		{
			name: "single index main",
			cmd:  "printindex",
			typ:  "idx",
			want: `\printindex{}`,
		},
		{
			name: "single index ignores other types",
			cmd:  "printindex",
			typ:  "aut",
			want: "",
		},
		{
			name: "multi index with type and name",
			p:    Params{UseIndices: true},
			cmd:  "printindex",
			typ:  "aut",
			idx:  "Authors",
			want: `\printindex[aut][Authors]`,
		},
		{
			name: "subindex command kept",
			p:    Params{UseIndices: true},
			cmd:  "printsubindex",
			typ:  "aut",
			want: `\printsubindex[aut]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			WritePrintIndex(NewStream(&sb), tt.p, tt.cmd, tt.typ, tt.idx)
			if sb.String() != tt.want {
				t.Errorf("WritePrintIndex(%s, %s) = %q, want %q", tt.cmd, tt.typ, sb.String(), tt.want)
			}
		})
	}
}

func TestASCIIEncoder(t *testing.T) {
	latexed, uncodable := ASCII{}.LatexString("café")
	assert.Equal(t, `caf\'e`, latexed)
	assert.Empty(t, uncodable)

	latexed, uncodable = ASCII{}.LatexString("日")
	assert.Equal(t, `\char"65E5`, latexed)
	assert.Equal(t, "日", uncodable)

	latexed, uncodable = ASCII{}.LatexString("plain")
	assert.Equal(t, "plain", latexed)
	assert.Empty(t, uncodable)
}
