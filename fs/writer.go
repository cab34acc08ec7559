// Package fs exports records as Markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/jobnotice"
	"gopkg.in/yaml.v3"
)

// Slug turns a record title into a file name stem.
// Example: "SSC CGL 2024 - Tier I" → ssc-cgl-2024-tier-i
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "record"
	}
	return slug
}

// RecordPath returns the path of a record's file relative to the export
// directory: <category>/<slug>.md.
func RecordPath(rec *jobnotice.Record) string {
	category := rec.PostCategory
	if category == "" {
		category = jobnotice.DefaultCategory
	}
	return filepath.Join(Slug(category), Slug(rec.Title)+".md")
}

// frontmatter is the YAML header of an exported record.
type frontmatter struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Source   string `yaml:"source,omitempty"`
	Posted   string `yaml:"posted,omitempty"`
}

// Frontmatter returns the YAML frontmatter block for rec, fenced by "---"
// lines and followed by a blank line.
func Frontmatter(rec *jobnotice.Record) (string, error) {
	fm := frontmatter{
		Title:    rec.Title,
		Category: rec.PostCategory,
		Source:   rec.SourceURL,
	}
	if !rec.PostDate.IsZero() {
		fm.Posted = rec.PostDate.Format("2006-01-02")
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n\n", nil
}

var _ jobnotice.RecordWriter = (*Writer)(nil)

// Writer writes records as Markdown files under a base directory.
type Writer struct {
	baseDir   string
	formatter jobnotice.RecordFormatter
}

// NewWriter creates a Writer that renders records with formatter.
func NewWriter(baseDir string, formatter jobnotice.RecordFormatter) *Writer {
	return &Writer{baseDir: baseDir, formatter: formatter}
}

// WriteRecord renders rec and writes it to disk, replacing any previous
// export of the same record.
func (w *Writer) WriteRecord(ctx context.Context, rec *jobnotice.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	header, err := Frontmatter(rec)
	if err != nil {
		return err
	}
	body, err := w.formatter.FormatRecord(rec)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, RecordPath(rec))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(header+body), 0644)
}
