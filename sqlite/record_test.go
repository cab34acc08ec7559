package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(title string, createdAt time.Time) *jobnotice.Record {
	return &jobnotice.Record{
		Title:            title,
		NameOfPost:       title,
		PostCategory:     jobnotice.DefaultCategory,
		ShortInformation: "Result declared.",
		SourceURL:        "https://jobs.example/" + title + "/",
		PostDate:         createdAt,
		CreatedAt:        createdAt,
		Sections: []jobnotice.Section{
			{Title: jobnotice.LabelSelectionProcess, Kind: jobnotice.SectionList, Items: []string{"Written Exam", "Interview"}},
			{
				Title:   jobnotice.LabelImportantLinks,
				Kind:    jobnotice.SectionTable,
				Columns: jobnotice.LinkColumns,
				Rows: []jobnotice.Row{
					{"Link Name": "Download Result", "Link": `<a href="https://ssc.nic.in/r.pdf" target="_blank">Click Here</a>`},
				},
			},
		},
	}
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and round-trips record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

		rec := testRecord("SSC CGL 2024", created)
		require.NoError(t, svc.CreateRecord(ctx, rec))
		assert.NotEmpty(t, rec.ID)

		got, err := svc.FindRecordByTitle(ctx, "SSC CGL 2024")
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("hashes section content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

		first := testRecord("SSC CGL 2024", created)
		same := testRecord("SSC CHSL 2024", created)
		other := testRecord("UPSC CSE 2024", created)
		other.Sections[0].Items = []string{"Prelims", "Mains"}
		for _, rec := range []*jobnotice.Record{first, same, other} {
			require.NoError(t, svc.CreateRecord(ctx, rec))
		}

		assert.Len(t, first.ContentHash, 16)
		assert.Equal(t, first.ContentHash, same.ContentHash)
		assert.NotEqual(t, first.ContentHash, other.ContentHash)

		got, err := svc.FindRecordByTitle(ctx, "UPSC CSE 2024")
		require.NoError(t, err)
		assert.Equal(t, other.ContentHash, got.ContentHash)
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

		require.NoError(t, svc.CreateRecord(ctx, testRecord("SSC CGL 2024", created)))

		dup := testRecord("SSC CGL 2024", created.Add(time.Hour))
		err := svc.CreateRecord(ctx, dup)

		require.Error(t, err)
		assert.Equal(t, jobnotice.ECONFLICT, jobnotice.ErrorCode(err))
		assert.Empty(t, dup.ID)

		got, err := svc.FindRecordByTitle(ctx, "SSC CGL 2024")
		require.NoError(t, err)
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("rejects invalid record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))

		err := svc.CreateRecord(context.Background(), &jobnotice.Record{})

		require.Error(t, err)
		assert.Equal(t, jobnotice.EINVALID, jobnotice.ErrorCode(err))
	})

	t.Run("stamps missing timestamps", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateRecord(ctx, &jobnotice.Record{Title: "Bare"}))

		got, err := svc.FindRecordByTitle(ctx, "Bare")
		require.NoError(t, err)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, got.CreatedAt, got.PostDate)
		assert.Empty(t, got.Sections)
	})
}

func TestRecordService_FindRecordByTitle(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRecordService(setupTestDB(t))

	_, err := svc.FindRecordByTitle(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, jobnotice.ENOTFOUND, jobnotice.ErrorCode(err))
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRecordService(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"First", "Second", "Third"} {
		rec := testRecord(title, base.Add(time.Duration(i)*time.Hour))
		if title == "Second" {
			rec.PostCategory = "ADMIT CARD"
		}
		require.NoError(t, svc.CreateRecord(ctx, rec))
	}

	titles := func(recs []*jobnotice.Record) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.Title
		}
		return out
	}

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		recs, err := svc.FindRecords(ctx, jobnotice.RecordFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Third", "Second", "First"}, titles(recs))
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		category := jobnotice.DefaultCategory
		recs, err := svc.FindRecords(ctx, jobnotice.RecordFilter{PostCategory: &category})
		require.NoError(t, err)
		assert.Equal(t, []string{"Third", "First"}, titles(recs))
	})

	t.Run("filters by title", func(t *testing.T) {
		t.Parallel()

		title := "Second"
		recs, err := svc.FindRecords(ctx, jobnotice.RecordFilter{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, []string{"Second"}, titles(recs))
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		recs, err := svc.FindRecords(ctx, jobnotice.RecordFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Second"}, titles(recs))

		recs, err = svc.FindRecords(ctx, jobnotice.RecordFilter{Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"First"}, titles(recs))
	})
}
