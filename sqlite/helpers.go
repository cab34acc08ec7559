package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Timestamps are stored as second-precision RFC3339 text in UTC, so text
// order matches time order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET clauses for positive values. SQLite
// only accepts OFFSET after LIMIT, so an offset alone gets LIMIT -1.
func paginate(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
