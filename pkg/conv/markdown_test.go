package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "empty input",
			input:    "",
			contains: nil,
		},
		{
			name:     "paragraph",
			input:    "Hello world",
			contains: []string{"<p>Hello world</p>"},
		},
		{
			name:     "bold and italic",
			input:    "**bold** and *italic*",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "heading kept",
			input:    "# Memory Dashboard",
			contains: []string{"<h1", "Memory Dashboard</h1>"},
		},
		{
			name:     "list",
			input:    "- one\n- two",
			contains: []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "inline code",
			input:    "`code`",
			contains: []string{"<code>code</code>"},
		},
		{
			name:        "link keeps href",
			input:       "[repo](https://example.com)",
			contains:    []string{`href="https://example.com"`, ">repo</a>"},
			notContains: []string{"target="},
		},
		{
			name:        "javascript link dropped",
			input:       "[x](javascript:void)",
			notContains: []string{"javascript:"},
		},
		{
			name:        "script sanitized",
			input:       "<script>alert('xss')</script>",
			notContains: []string{"<script", "alert("},
		},
		{
			name:        "raw html attribute stripped",
			input:       `<p onclick="steal()">hi</p>`,
			notContains: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToHTML([]byte(tt.input))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestMarkdownToHTML_Empty(t *testing.T) {
	assert.Empty(t, MarkdownToHTML(nil))
}

func TestHTMLToText(t *testing.T) {
	got, err := HTMLToText(`<h1>Title</h1><p>Read <a href="https://example.com">the docs</a> <strong>now</strong></p>`)
	require.NoError(t, err)

	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "the docs")
	assert.Contains(t, got, "now")
	assert.NotContains(t, got, "https://example.com")
	assert.NotContains(t, got, "<")
}

func TestMarkdownToText(t *testing.T) {
	got, err := MarkdownToText([]byte("## Work\n\n- Working on **React** dashboard"))
	require.NoError(t, err)

	assert.Contains(t, got, "Work")
	assert.Contains(t, got, "React")
	assert.NotContains(t, got, "**")
}
