package markdown

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
)

// NoResourcesFound replaces a table that has no rows.
const NoResourcesFound = "_No resources found_"

// PrintOptions configures where and how to print the markdown
type PrintOptions struct {
	ToTerminal bool   // Print to terminal with glamour rendering
	ToFile     string // File path to save raw markdown (empty string = don't save to file)
}

// DefaultPrintOptions returns default options (terminal only)
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		ToTerminal: true,
		ToFile:     "",
	}
}

// Markdown represents a markdown document that can be built incrementally
type Markdown struct {
	content strings.Builder
}

// New creates a new Markdown instance
func New() *Markdown {
	return &Markdown{
		content: strings.Builder{},
	}
}

// AddHeading adds a heading with the specified level (1-6)
func (m *Markdown) AddHeading(text string, level int) *Markdown {
	if level < 1 || level > 6 {
		level = 1
	}
	prefix := strings.Repeat("#", level)
	m.content.WriteString(fmt.Sprintf("%s %s\n\n", prefix, text))
	return m
}

// AddParagraph adds a paragraph of text
func (m *Markdown) AddParagraph(text string) *Markdown {
	m.content.WriteString(fmt.Sprintf("%s\n\n", text))
	return m
}

// AddLines adds lines joined with markdown hard line breaks (two trailing spaces),
// the last line is closed as a paragraph.
func (m *Markdown) AddLines(lines []string) *Markdown {
	if len(lines) == 0 {
		return m
	}
	return m.AddParagraph(strings.Join(lines, "  \n"))
}

// AddTable adds a fixed-width table with the given headers and data
func (m *Markdown) AddTable(headers []string, data [][]string) *Markdown {
	return m.AddBlock(FormatTable(headers, data))
}

// AddBlock adds a pre-rendered block followed by a blank line
func (m *Markdown) AddBlock(block string) *Markdown {
	m.content.WriteString(block)
	if !strings.HasSuffix(block, "\n") {
		m.content.WriteString("\n")
	}
	m.content.WriteString("\n")
	return m
}

// AddHorizontalRule adds a horizontal rule
func (m *Markdown) AddHorizontalRule() *Markdown {
	m.content.WriteString("---\n\n")
	return m
}

// FormatTable renders rows as a markdown table whose columns are padded to the
// widest cell. Rows are expected to have the same length as headers; missing
// cells render empty. With no rows the table is replaced by NoResourcesFound.
func FormatTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return NoResourcesFound + "\n"
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(formatRow(headers, widths))

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	sb.WriteString("|-" + strings.Join(dashes, "-|-") + "-|\n")

	for _, row := range rows {
		sb.WriteString(formatRow(row, widths))
	}

	return sb.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell))
	}
	return "| " + strings.Join(padded, " | ") + " |\n"
}

// String returns the markdown content as a string
func (m *Markdown) String() string {
	return m.content.String()
}

// WriteTo writes the markdown content to the provided io.Writer
func (m *Markdown) WriteTo(w io.Writer) (int64, error) {
	content := m.content.String()
	n, err := w.Write([]byte(content))
	return int64(n), err
}

// WriteToTerminal writes the raw markdown content to stdout without glamour rendering
func (m *Markdown) WriteToTerminal() (int64, error) {
	return m.WriteTo(os.Stdout)
}

// WriteToTerminalWithGlamour writes the rendered markdown content to stdout using glamour
func (m *Markdown) WriteToTerminalWithGlamour() (int64, error) {
	out, err := m.Render()
	if err != nil {
		// Fallback to raw output if glamour fails
		return m.WriteToTerminal()
	}

	n, err := os.Stdout.Write([]byte(out + "\n"))
	return int64(n), err
}

// Print renders the markdown and outputs it according to the provided options
func (m *Markdown) Print(opts ...PrintOptions) error {
	var options PrintOptions
	if len(opts) > 0 {
		options = opts[0]
	} else {
		options = DefaultPrintOptions()
	}

	// Save to file if requested
	if options.ToFile != "" {
		file, err := os.Create(options.ToFile)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %v", options.ToFile, err)
		}

		if _, err := m.WriteTo(file); err != nil {
			file.Close()
			return fmt.Errorf("failed to write markdown to file %s: %v", options.ToFile, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file %s: %v", options.ToFile, err)
		}
		slog.Info("Markdown saved to file", "file", options.ToFile)
	}

	if options.ToTerminal {
		_, err := m.WriteToTerminalWithGlamour()
		if err != nil {
			return fmt.Errorf("failed to write to terminal: %v", err)
		}
	}

	return nil
}

// Render returns the rendered markdown as a string (without printing)
func (m *Markdown) Render() (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(180),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create glamour renderer: %v", err)
	}

	out, err := renderer.Render(m.content.String())
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %v", err)
	}

	return out, nil
}
