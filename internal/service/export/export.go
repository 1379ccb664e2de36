package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/pkg/conv"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

var ErrUnknownFormat = errors.New("unknown export format")

func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatHTML, FormatText}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatMarkdown, FormatHTML, FormatText:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Document is the exported filtered view.
type Document struct {
	Title       string           `json:"title" yaml:"title"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Filter      core.FilterState `json:"filter" yaml:"filter"`
	Total       int              `json:"total" yaml:"total"`
	Memories    []memory.Entry   `json:"memories" yaml:"memories"`
}

type Exporter struct {
	formatter *humantime.Formatter
}

func NewExporter(f *humantime.Formatter) *Exporter {
	if f == nil {
		f = humantime.NewFormatter("")
	}
	return &Exporter{formatter: f}
}

func (e *Exporter) Document(state core.FilterState, memories []core.Memory) Document {
	now := time.Now
	if e.formatter.Now != nil {
		now = e.formatter.Now
	}
	return Document{
		Title:       core.AppTitle,
		GeneratedAt: now().UTC(),
		Filter:      state.Normalize(),
		Total:       len(memories),
		Memories:    memory.Entries(memories, e.formatter),
	}
}

// Write renders memories in the requested format.
func (e *Exporter) Write(w io.Writer, format Format, state core.FilterState, memories []core.Memory) error {
	doc := e.Document(state, memories)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatHTML:
		_, err := io.WriteString(w, htmlPage(doc.Title, conv.MarkdownToHTML([]byte(Markdown(doc)))))
		return err
	case FormatText:
		text, err := conv.MarkdownToText([]byte(Markdown(doc)))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text+"\n")
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Markdown renders doc as a markdown report.
func Markdown(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "%d memories found", doc.Total)
	if doc.Filter.Search != "" {
		fmt.Fprintf(&b, " for `%s`", escapeCode(doc.Filter.Search))
	}
	fmt.Fprintf(&b, " in category **%s**\n\n", doc.Filter.Category)

	if len(doc.Memories) == 0 {
		b.WriteString("No memories found\n\nTry adjusting your search or filter criteria\n")
		return b.String()
	}

	for _, m := range doc.Memories {
		fmt.Fprintf(&b, "## %s\n\n", escapeMarkdown(m.Content))
		fmt.Fprintf(&b, "- Category: %s\n", m.Category)
		fmt.Fprintf(&b, "- Source: %s\n", m.Source)
		if len(m.Tags) > 0 {
			tags := make([]string, len(m.Tags))
			for i, t := range m.Tags {
				tags[i] = "`" + escapeCode(t) + "`"
			}
			fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(tags, ", "))
		}
		fmt.Fprintf(&b, "- Recorded: %s (%s)\n", m.RelativeTime, m.Timestamp.UTC().Format(time.RFC3339))
		fmt.Fprintf(&b, "- Importance: %d/%d\n\n", m.Importance, core.MaxImportance)
	}
	return b.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`,
	"[", `\[`, "]", `\]`, "<", "&lt;", ">", "&gt;",
)

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}

func escapeCode(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

func htmlPage(title, body string) string {
	return "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>" +
		strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(title) +
		"</title>\n</head>\n<body>\n" + body + "</body>\n</html>\n"
}
