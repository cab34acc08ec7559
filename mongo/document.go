package mongo

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/jobnotice"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordDoc is the stored shape of a record.
type recordDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	TypeOfPost       string             `bson:"typeOfPost"`
	NameOfPost       string             `bson:"nameOfPost"`
	PostDate         time.Time          `bson:"postDate"`
	ShortInformation string             `bson:"shortInformation"`
	Data             []sectionDoc       `bson:"data"`
	SourceURL        string             `bson:"sourceUrl,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// sectionDoc stores a section. Data holds the list items for list sections
// and the rows for table sections.
type sectionDoc struct {
	Title    string        `bson:"title"`
	DataType string        `bson:"dataType"`
	Data     bson.RawValue `bson:"data"`
	Columns  []columnDoc   `bson:"columns,omitempty"`
}

type columnDoc struct {
	Name string `bson:"name"`
	Type string `bson:"type"`
}

func toDocument(rec *jobnotice.Record) (recordDoc, error) {
	doc := recordDoc{
		Title:            rec.Title,
		TypeOfPost:       rec.PostCategory,
		NameOfPost:       rec.NameOfPost,
		PostDate:         rec.PostDate,
		ShortInformation: rec.ShortInformation,
		SourceURL:        rec.SourceURL,
		CreatedAt:        rec.CreatedAt,
		Data:             make([]sectionDoc, 0, len(rec.Sections)),
	}
	if rec.ID != "" {
		oid, err := primitive.ObjectIDFromHex(rec.ID)
		if err != nil {
			return recordDoc{}, jobnotice.Errorf(jobnotice.EINVALID, "invalid record id %q", rec.ID)
		}
		doc.ID = oid
	}

	for _, sec := range rec.Sections {
		var payload any
		switch sec.Kind {
		case jobnotice.SectionTable:
			payload = orderedRows(sec)
		default:
			items := sec.Items
			if items == nil {
				items = []string{}
			}
			payload = items
		}

		t, data, err := bson.MarshalValue(payload)
		if err != nil {
			return recordDoc{}, fmt.Errorf("failed to encode section %q: %w", sec.Title, err)
		}

		sd := sectionDoc{
			Title:    sec.Title,
			DataType: string(sec.Kind),
			Data:     bson.RawValue{Type: t, Value: data},
		}
		for _, c := range sec.Columns {
			sd.Columns = append(sd.Columns, columnDoc{Name: c.Name, Type: string(c.Type)})
		}
		doc.Data = append(doc.Data, sd)
	}
	return doc, nil
}

// orderedRows encodes table rows with cells in column order. Cells without a
// column follow in key order.
func orderedRows(sec jobnotice.Section) []bson.D {
	rows := make([]bson.D, 0, len(sec.Rows))
	for _, row := range sec.Rows {
		d := make(bson.D, 0, len(row))
		known := make(map[string]bool, len(sec.Columns))
		for _, c := range sec.Columns {
			known[c.Name] = true
			if v, ok := row[c.Name]; ok {
				d = append(d, bson.E{Key: c.Name, Value: v})
			}
		}
		for _, k := range slices.Sorted(maps.Keys(row)) {
			if !known[k] {
				d = append(d, bson.E{Key: k, Value: row[k]})
			}
		}
		rows = append(rows, d)
	}
	return rows
}

func fromDocument(doc recordDoc) (*jobnotice.Record, error) {
	rec := &jobnotice.Record{
		Title:            doc.Title,
		NameOfPost:       doc.NameOfPost,
		PostCategory:     doc.TypeOfPost,
		ShortInformation: doc.ShortInformation,
		SourceURL:        doc.SourceURL,
		PostDate:         doc.PostDate,
		CreatedAt:        doc.CreatedAt,
	}
	if !doc.ID.IsZero() {
		rec.ID = doc.ID.Hex()
	}

	for _, sd := range doc.Data {
		sec := jobnotice.Section{
			Title: sd.Title,
			Kind:  jobnotice.SectionKind(sd.DataType),
		}
		for _, c := range sd.Columns {
			sec.Columns = append(sec.Columns, jobnotice.Column{Name: c.Name, Type: jobnotice.ColumnType(c.Type)})
		}

		if sd.Data.Type == 0 {
			rec.Sections = append(rec.Sections, sec)
			continue
		}

		var err error
		switch sec.Kind {
		case jobnotice.SectionTable:
			err = sd.Data.Unmarshal(&sec.Rows)
		default:
			err = sd.Data.Unmarshal(&sec.Items)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode section %q: %w", sd.Title, err)
		}
		rec.Sections = append(rec.Sections, sec)
	}
	return rec, nil
}
