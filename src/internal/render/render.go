// Package render writes menu output: colored status lines, the book table and
// statistics.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"library/src/internal/book"
	"library/src/internal/catalog"
	"library/src/internal/stringsx"
)

// Status symbols used as line prefixes.
const (
	SymbolSuccess = "✔"
	SymbolError   = "✖"
	SymbolWarning = "⚠"
)

// maxCell bounds table cell width so long titles do not wrap the terminal.
const maxCell = 48

// Printer writes formatted output to one writer.
type Printer struct {
	w       io.Writer
	heading *color.Color
	option  *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	read    *color.Color
	unread  *color.Color
	value   *color.Color
}

// New returns a Printer for w. With noColor set, output is plain text;
// otherwise color follows fatih/color's terminal detection.
func New(w io.Writer, noColor bool) *Printer {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if noColor {
			c.DisableColor()
		}
		return c
	}
	return &Printer{
		w:       w,
		heading: mk(color.FgCyan, color.Bold),
		option:  mk(color.FgMagenta, color.Bold),
		success: mk(color.FgGreen, color.Bold),
		warning: mk(color.FgYellow, color.Bold),
		failure: mk(color.FgRed, color.Bold),
		read:    mk(color.FgGreen),
		unread:  mk(color.FgYellow),
		value:   mk(color.FgWhite, color.Bold),
	}
}

// Heading prints a section heading.
func (p *Printer) Heading(s string) { _, _ = fmt.Fprintln(p.w, p.heading.Sprint(s)) }

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.success.Sprintf(SymbolSuccess+" "+format, args...))
}

// Warning prints a non-fatal outcome such as "not found".
func (p *Printer) Warning(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.warning.Sprintf(SymbolWarning+" "+format, args...))
}

// Failure prints an error line.
func (p *Printer) Failure(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.failure.Sprintf(SymbolError+" "+format, args...))
}

// Menu prints the numbered options.
func (p *Printer) Menu(title string, options []string) {
	_, _ = fmt.Fprintln(p.w)
	p.Heading(title)
	for i, o := range options {
		_, _ = fmt.Fprintf(p.w, "%s %s\n", p.option.Sprintf("%d.", i+1), o)
	}
}

func (p *Printer) status(b book.Book) string {
	if b.Read {
		return p.read.Sprint(SymbolSuccess + " " + b.Status())
	}
	return p.unread.Sprint(SymbolError + " " + b.Status())
}

// Books prints the whole catalog as a table.
func (p *Printer) Books(books []book.Book) error {
	if len(books) == 0 {
		p.Warning("No books in your library.")
		return nil
	}

	config := tablewriter.Config{}
	align := []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignLeft, tw.AlignLeft}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	table := tablewriter.NewTable(p.w, tablewriter.WithConfig(config))
	table.Header("Title", "Author", "Year", "Genre", "Read Status")

	for _, b := range books {
		if err := table.Append(
			stringsx.Truncate(b.Title, maxCell),
			stringsx.Truncate(b.Author, maxCell),
			fmt.Sprint(b.Year),
			stringsx.Truncate(b.Genre, maxCell),
			p.status(b),
		); err != nil {
			return err
		}
	}
	p.Heading("Your Library (" + stringsx.Count(len(books), "book") + ")")
	return table.Render()
}

// Matches prints search results one per line.
func (p *Printer) Matches(books []book.Book) {
	if len(books) == 0 {
		p.Warning("No matching books found!")
		return
	}
	p.Heading("Matching Books:")
	for _, b := range books {
		_, _ = fmt.Fprintf(p.w, "%s by %s (%d) - %s - %s\n", p.value.Sprint(b.Title), b.Author, b.Year, b.Genre, p.status(b))
	}
}

// Statistics prints the read summary with two decimals.
func (p *Printer) Statistics(s catalog.Stats) {
	p.Heading("Library Statistics:")
	_, _ = fmt.Fprintf(p.w, "Total books: %s\n", p.value.Sprint(s.Total))
	_, _ = fmt.Fprintf(p.w, "Books read: %s\n", p.read.Sprint(s.Read))
	_, _ = fmt.Fprintf(p.w, "Percentage read: %s\n", p.warning.Sprintf("%.2f%%", s.Percent))
}
