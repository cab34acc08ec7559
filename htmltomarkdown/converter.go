// Package htmltomarkdown renders records as Markdown for the show and export
// commands.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.Converter = (*Converter)(nil)

// Converter turns the HTML layout of a record into Markdown. Table sections
// come out as pipe tables and link cells as inline links.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a Converter with CommonMark and table support.
func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert returns the Markdown for a record fragment, ending in exactly one
// newline so exported files concatenate cleanly after the frontmatter.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", jobnotice.Errorf(jobnotice.EINVALID, "nothing to render")
	}

	out, err := c.md.ConvertString(fragment)
	if err != nil {
		return "", jobnotice.Errorf(jobnotice.EPARSE, "render markdown: %v", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
