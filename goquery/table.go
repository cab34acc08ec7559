package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// messagingTerms mark link rows that advertise chat groups.
var messagingTerms = []string{"whatsapp", "telegram"}

// tableTitleRules derive a data table's title from its lowercased header
// text; the first match wins.
var tableTitleRules = []struct {
	term  string
	label string
}{
	{term: "post name", label: jobnotice.LabelVacancyDetails},
	{term: "selection", label: jobnotice.LabelSelectionProcess},
}

// extractTables adds a section for each link table and recognised data
// table in container.
func extractTables(ctx context.Context, container *goquery.Selection, v jobnotice.LinkValidator, sections *sectionSet) error {
	for _, table := range findAll(container, "table") {
		rows := findAll(table, "tr")
		if len(rows) == 0 {
			continue
		}

		if isLinkTable(rows) {
			if err := extractLinkTable(ctx, rows, v, sections); err != nil {
				return err
			}
			continue
		}
		extractDataTable(rows, sections)
	}
	return nil
}

// isLinkTable reports whether the second row carries a hyperlink in its
// second cell.
func isLinkTable(rows []*goquery.Selection) bool {
	if len(rows) < 2 {
		return false
	}
	cells := findAll(rows[1], "td")
	return len(cells) >= 2 && cells[1].Find("a").Length() > 0
}

func extractLinkTable(ctx context.Context, rows []*goquery.Selection, v jobnotice.LinkValidator, sections *sectionSet) error {
	if sections.Has(jobnotice.LabelImportantLinks) {
		return nil
	}

	var out []jobnotice.Row
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, ok := linkEntry(ctx, row, v)
		if !ok {
			continue
		}
		out = append(out, entry.Row())
	}
	if len(out) == 0 {
		return nil
	}

	sections.Add(jobnotice.Section{
		Title:   jobnotice.LabelImportantLinks,
		Kind:    jobnotice.SectionTable,
		Columns: jobnotice.LinkColumns,
		Rows:    out,
	})
	return nil
}

// linkEntry builds the entry for one link table row, reporting false when
// the row has no usable, accepted link.
func linkEntry(ctx context.Context, row *goquery.Selection, v jobnotice.LinkValidator) (jobnotice.LinkEntry, bool) {
	cells := findAll(row, "td")
	if len(cells) < 2 {
		return jobnotice.LinkEntry{}, false
	}

	name := strippedText(cells[0])
	lower := strings.ToLower(name)
	for _, term := range messagingTerms {
		if strings.Contains(lower, term) {
			return jobnotice.LinkEntry{}, false
		}
	}

	href, ok := cells[1].Find("a").First().Attr("href")
	if !ok {
		return jobnotice.LinkEntry{}, false
	}
	if !v.Validate(ctx, href).Accepted() {
		return jobnotice.LinkEntry{}, false
	}

	return jobnotice.LinkEntry{Name: name, Href: href, Markup: linkMarkup(href)}, true
}

// linkMarkup renders the anchor stored in the Link column.
func linkMarkup(href string) string {
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "href", Val: href},
			{Key: "target", Val: "_blank"},
		},
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: "Click Here"})

	var b strings.Builder
	// Rendering to a strings.Builder cannot fail.
	_ = html.Render(&b, a)
	return b.String()
}

func extractDataTable(rows []*goquery.Selection, sections *sectionSet) {
	var headers []string
	for _, cell := range findAll(rows[0], "th, td") {
		headers = append(headers, cleanText(cell))
	}
	if len(headers) == 0 {
		return
	}

	title := dataTableTitle(headers)
	if title == "" || sections.Has(title) {
		return
	}

	var out []jobnotice.Row
	for _, row := range rows[1:] {
		cells := findAll(row, "td")
		if len(cells) != len(headers) {
			continue
		}
		r := make(jobnotice.Row, len(headers))
		for i, h := range headers {
			r[h] = strippedText(cells[i])
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return
	}

	columns := make([]jobnotice.Column, len(headers))
	for i, h := range headers {
		columns[i] = jobnotice.Column{Name: h, Type: jobnotice.ColumnText}
	}

	sections.Add(jobnotice.Section{
		Title:   title,
		Kind:    jobnotice.SectionTable,
		Columns: columns,
		Rows:    out,
	})
}

func dataTableTitle(headers []string) string {
	slug := strings.ToLower(strings.Join(headers, " "))
	for _, rule := range tableTitleRules {
		if strings.Contains(slug, rule.term) {
			return rule.label
		}
	}
	return ""
}
