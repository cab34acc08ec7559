package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/jobnotice"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time interface verification.
var _ jobnotice.RecordService = (*RecordService)(nil)

// RecordService implements jobnotice.RecordService using MongoDB.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord inserts rec and assigns its ID. Returns ECONFLICT when the
// unique title index rejects the insert.
func (s *RecordService) CreateRecord(ctx context.Context, rec *jobnotice.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.PostDate.IsZero() {
		rec.PostDate = rec.CreatedAt
	}

	doc, err := toDocument(rec)
	if err != nil {
		return err
	}

	res, err := s.db.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return jobnotice.Errorf(jobnotice.ECONFLICT, "record %q already exists", rec.Title)
	}
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

// FindRecordByTitle retrieves a record by its exact title.
func (s *RecordService) FindRecordByTitle(ctx context.Context, title string) (*jobnotice.Record, error) {
	var doc recordDoc
	err := s.db.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, jobnotice.Errorf(jobnotice.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter jobnotice.RecordFilter) ([]*jobnotice.Record, error) {
	q := bson.D{}
	if filter.Title != nil {
		q = append(q, bson.E{Key: "title", Value: *filter.Title})
	}
	if filter.PostCategory != nil {
		q = append(q, bson.E{Key: "typeOfPost", Value: *filter.PostCategory})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cur, err := s.db.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	var docs []recordDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	recs := make([]*jobnotice.Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
