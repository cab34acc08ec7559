package jobnotice

import (
	"context"
	"time"
)

// DefaultCategory is the post category stamped on records when none is configured.
const DefaultCategory = "RESULT"

// UnknownTitle is used when a page has no <title> element.
const UnknownTitle = "Unknown"

// Record represents one employment notice extracted from a notice page.
type Record struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title"`
	NameOfPost       string    `json:"nameOfPost"`
	PostCategory     string    `json:"typeOfPost"`
	ShortInformation string    `json:"shortInformation"`
	Sections         []Section `json:"data"`
	SourceURL        string    `json:"sourceUrl,omitempty"`
	ContentHash      string    `json:"contentHash,omitempty"`
	PostDate         time.Time `json:"postDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	return nil
}

// Empty reports whether the record has no sections.
// Empty records are not worth persisting.
func (r *Record) Empty() bool {
	return len(r.Sections) == 0
}

// Section returns the section with the given title, or nil.
func (r *Record) Section(title string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Title == title {
			return &r.Sections[i]
		}
	}
	return nil
}

// SectionKind distinguishes list sections from table sections.
type SectionKind string

// Section kinds.
const (
	SectionList  SectionKind = "list"
	SectionTable SectionKind = "table"
)

// ColumnType describes how a table cell value should be rendered.
type ColumnType string

// Column types.
const (
	ColumnText ColumnType = "text"
	ColumnHTML ColumnType = "html"
)

// Column is one entry of a table section's schema.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Row is one table row keyed by column name.
type Row map[string]string

// Section is one classified, titled unit of extracted content.
// List sections carry Items; table sections carry Columns and Rows.
type Section struct {
	Title   string      `json:"title"`
	Kind    SectionKind `json:"dataType"`
	Items   []string    `json:"items,omitempty"`
	Columns []Column    `json:"columns,omitempty"`
	Rows    []Row       `json:"rows,omitempty"`
}

// Column names of the Important Links table.
const (
	LinkNameColumn = "Link Name"
	LinkColumn     = "Link"
)

// LinkColumns is the schema of the Important Links table.
var LinkColumns = []Column{
	{Name: LinkNameColumn, Type: ColumnText},
	{Name: LinkColumn, Type: ColumnHTML},
}

// LinkEntry is one validated row of an Important Links table.
type LinkEntry struct {
	Name   string
	Href   string
	Markup string
}

// Row converts the entry to a table row matching LinkColumns.
func (e LinkEntry) Row() Row {
	return Row{
		LinkNameColumn: e.Name,
		LinkColumn:     e.Markup,
	}
}

// RecordService represents a service for managing records.
type RecordService interface {
	// CreateRecord stores a new record.
	// Returns ECONFLICT if a record with the same title already exists.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByTitle retrieves a record by its title.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByTitle(ctx context.Context, title string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Title        *string `json:"title"`
	PostCategory *string `json:"postCategory"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordFormatter renders a record for human consumption.
type RecordFormatter interface {
	FormatRecord(rec *Record) (string, error)
}

// RecordWriter writes records outside the record store (e.g. files).
type RecordWriter interface {
	WriteRecord(ctx context.Context, rec *Record) error
}
