package htmltomarkdown

import (
	"strings"

	"github.com/fwojciec/jobnotice"
	"golang.org/x/net/html"
)

var _ jobnotice.RecordFormatter = (*Formatter)(nil)

// Formatter renders a record as an HTML document and converts it to
// Markdown. List sections become bullet lists and table sections become
// Markdown tables. Cells of html-typed columns are emitted as markup, all
// other text is escaped.
type Formatter struct {
	conv jobnotice.Converter
}

// NewFormatter returns a Formatter using conv, or a default Converter if
// conv is nil.
func NewFormatter(conv jobnotice.Converter) *Formatter {
	if conv == nil {
		conv = NewConverter()
	}
	return &Formatter{conv: conv}
}

// FormatRecord returns the Markdown rendering of rec.
func (f *Formatter) FormatRecord(rec *jobnotice.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	return f.conv.Convert(RenderHTML(rec))
}

// RenderHTML lays out rec as an HTML fragment.
func RenderHTML(rec *jobnotice.Record) string {
	var b strings.Builder

	element(&b, "h1", rec.Title)
	if rec.ShortInformation != "" {
		element(&b, "p", rec.ShortInformation)
	}

	for _, s := range rec.Sections {
		element(&b, "h2", s.Title)
		switch s.Kind {
		case jobnotice.SectionList:
			b.WriteString("<ul>")
			for _, item := range s.Items {
				element(&b, "li", item)
			}
			b.WriteString("</ul>")
		case jobnotice.SectionTable:
			writeTable(&b, s)
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, s jobnotice.Section) {
	b.WriteString("<table><thead><tr>")
	for _, col := range s.Columns {
		element(b, "th", col.Name)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range s.Rows {
		b.WriteString("<tr>")
		for _, col := range s.Columns {
			if col.Type == jobnotice.ColumnHTML {
				b.WriteString("<td>" + row[col.Name] + "</td>")
				continue
			}
			element(b, "td", row[col.Name])
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

func element(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">")
	b.WriteString(html.EscapeString(text))
	b.WriteString("</" + tag + ">")
}
