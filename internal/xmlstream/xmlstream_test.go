package xmlstream

import (
	"strings"
	"testing"
)

func TestStream(t *testing.T) {
	tests := []struct {
		name  string
		write func(s *Stream)
		want  string
	}{
		{
			name:  "start tag without attributes",
			write: func(s *Stream) { s.StartTag("primary", "") },
			want:  "<primary>",
		},
		{
			name:  "start tag with attribute",
			write: func(s *Stream) { s.StartTag("ul", "class='main'") },
			want:  "<ul class='main'>",
		},
		{
			name:  "concatenated attributes keep single spacing",
			write: func(s *Stream) { s.StartTag("indexterm", ` class="startofrange" xml:id="T"`) },
			want:  `<indexterm class="startofrange" xml:id="T">`,
		},
		{
			name:  "end tag",
			write: func(s *Stream) { s.EndTag("ul") },
			want:  "</ul>",
		},
		{
			name:  "self-closing tag",
			write: func(s *Stream) { s.CompTag("a", "id='x'") },
			want:  "<a id='x'/>",
		},
		{
			name:  "self-closing tag without attributes",
			write: func(s *Stream) { s.CompTag("br", "") },
			want:  "<br/>",
		},
		{
			name:  "text is escaped",
			write: func(s *Stream) { s.Text("a < b & c > d") },
			want:  "a &lt; b &amp; c &gt; d",
		},
		{
			name:  "raw is not escaped",
			write: func(s *Stream) { s.Raw("<kept>") },
			want:  "<kept>",
		},
		{
			name:  "comment",
			write: func(s *Stream) { s.Comment("Output Error: boom") },
			want:  "<!-- Output Error: boom -->\n",
		},
		{
			name:  "line break",
			write: func(s *Stream) { s.CR() },
			want:  "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			tt.write(New(&sb))
			if sb.String() != tt.want {
				t.Errorf("got %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	if got := Escape("&<>"); got != "&amp;&lt;&gt;" {
		t.Errorf("Escape = %q", got)
	}
	if got := Escape("plain 'text'"); got != "plain 'text'" {
		t.Errorf("Escape left quotes alone, got %q", got)
	}
}
