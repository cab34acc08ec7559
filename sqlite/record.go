package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobnotice"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobnotice.RecordService = (*RecordService)(nil)

// RecordService implements jobnotice.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = `id, title, name_of_post, post_category, short_information, sections, source_url, content_hash, post_date, created_at`

// hashContent computes the xxHash of the encoded sections as hex.
func hashContent(content []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(content))
	return hex.EncodeToString(b[:])
}

// CreateRecord inserts rec and assigns its ID and ContentHash. The insert is skipped with
// ECONFLICT when a record with the same title exists.
func (s *RecordService) CreateRecord(ctx context.Context, rec *jobnotice.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	sections, err := json.Marshal(nonNilSections(rec.Sections))
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.PostDate.IsZero() {
		rec.PostDate = rec.CreatedAt
	}
	id := uuid.New().String()
	hash := hashContent(sections)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO NOTHING
	`, id, rec.Title, rec.NameOfPost, rec.PostCategory, rec.ShortInformation, string(sections),
		rec.SourceURL, hash, formatTime(rec.PostDate), formatTime(rec.CreatedAt))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return jobnotice.Errorf(jobnotice.ECONFLICT, "record %q already exists", rec.Title)
	}

	rec.ID = id
	rec.ContentHash = hash
	return nil
}

// FindRecordByTitle retrieves a record by its exact title.
func (s *RecordService) FindRecordByTitle(ctx context.Context, title string) (*jobnotice.Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE title = ?`, title)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, jobnotice.Errorf(jobnotice.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter jobnotice.RecordFilter) ([]*jobnotice.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.PostCategory != nil {
		query.WriteString(" AND post_category = ?")
		args = append(args, *filter.PostCategory)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*jobnotice.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*jobnotice.Record, error) {
	var rec jobnotice.Record
	var sections, postDate, createdAt string

	if err := sc.Scan(&rec.ID, &rec.Title, &rec.NameOfPost, &rec.PostCategory, &rec.ShortInformation,
		&sections, &rec.SourceURL, &rec.ContentHash, &postDate, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sections), &rec.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}

	var err error
	if rec.PostDate, err = parseTime(postDate, "post_date"); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}

func nonNilSections(sections []jobnotice.Section) []jobnotice.Section {
	if sections == nil {
		return []jobnotice.Section{}
	}
	return sections
}
