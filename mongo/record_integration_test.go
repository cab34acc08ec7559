//go:build integration

package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *mongo.DB {
	t.Helper()

	uri := os.Getenv("JOBNOTICE_MONGO_URI")
	if uri == "" {
		t.Skip("JOBNOTICE_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := mongo.NewDB(uri,
		mongo.WithDatabase(fmt.Sprintf("jobnotice_test_%d", time.Now().UnixNano())),
	)
	require.NoError(t, db.Open(ctx))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}

func TestRecordService_Integration(t *testing.T) {
	t.Parallel()

	svc := mongo.NewRecordService(setupTestDB(t))
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	rec := &jobnotice.Record{
		Title:        "SSC CGL 2024",
		NameOfPost:   "SSC CGL 2024",
		PostCategory: jobnotice.DefaultCategory,
		PostDate:     created,
		CreatedAt:    created,
		Sections: []jobnotice.Section{
			{Title: jobnotice.LabelSelectionProcess, Kind: jobnotice.SectionList, Items: []string{"Written Exam"}},
		},
	}
	require.NoError(t, svc.CreateRecord(ctx, rec))
	assert.NotEmpty(t, rec.ID)

	got, err := svc.FindRecordByTitle(ctx, "SSC CGL 2024")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	dup := *rec
	dup.ID = ""
	err = svc.CreateRecord(ctx, &dup)
	assert.Equal(t, jobnotice.ECONFLICT, jobnotice.ErrorCode(err))

	_, err = svc.FindRecordByTitle(ctx, "missing")
	assert.Equal(t, jobnotice.ENOTFOUND, jobnotice.ErrorCode(err))

	recs, err := svc.FindRecords(ctx, jobnotice.RecordFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
