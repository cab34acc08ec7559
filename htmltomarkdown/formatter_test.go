package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/htmltomarkdown"
	"github.com/fwojciec/jobnotice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ jobnotice.RecordFormatter = (*htmltomarkdown.Formatter)(nil)

func noticeRecord() *jobnotice.Record {
	return &jobnotice.Record{
		Title:            "SSC CGL 2024",
		ShortInformation: "Staff Selection Commission has released the CGL notification.",
		Sections: []jobnotice.Section{
			{
				Title: jobnotice.LabelAgeLimit,
				Kind:  jobnotice.SectionList,
				Items: []string{"Minimum Age: 18 Years", "Maximum Age: 32 Years"},
			},
			{
				Title:   jobnotice.LabelImportantLinks,
				Kind:    jobnotice.SectionTable,
				Columns: jobnotice.LinkColumns,
				Rows: []jobnotice.Row{
					{
						jobnotice.LinkNameColumn: "Download Notification",
						jobnotice.LinkColumn:     `<a href="https://ssc.gov.in/cgl.pdf" target="_blank">Click Here</a>`,
					},
				},
			},
		},
	}
}

func TestFormatter_FormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("renders sections as markdown", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewFormatter(nil).FormatRecord(noticeRecord())

		require.NoError(t, err)
		assert.Contains(t, md, "# SSC CGL 2024")
		assert.Contains(t, md, "Staff Selection Commission has released the CGL notification.")
		assert.Contains(t, md, "## Age Limit")
		assert.Contains(t, md, "- Minimum Age: 18 Years")
		assert.Contains(t, md, "## Important Links")
		assert.Contains(t, md, "Download Notification")
		assert.Contains(t, md, "[Click Here](https://ssc.gov.in/cgl.pdf)")
	})

	t.Run("passes rendered html to the converter", func(t *testing.T) {
		t.Parallel()

		var got string
		f := htmltomarkdown.NewFormatter(&mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "ok", nil
			},
		})

		md, err := f.FormatRecord(noticeRecord())

		require.NoError(t, err)
		assert.Equal(t, "ok", md)
		assert.Equal(t, htmltomarkdown.RenderHTML(noticeRecord()), got)
	})

	t.Run("rejects records without a title", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewFormatter(nil).FormatRecord(&jobnotice.Record{})

		assert.Equal(t, jobnotice.EINVALID, jobnotice.ErrorCode(err))
	})
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	t.Run("escapes text and keeps html cells", func(t *testing.T) {
		t.Parallel()

		rec := &jobnotice.Record{
			Title: "Clerk & Typist",
			Sections: []jobnotice.Section{{
				Title:   jobnotice.LabelImportantLinks,
				Kind:    jobnotice.SectionTable,
				Columns: jobnotice.LinkColumns,
				Rows: []jobnotice.Row{{
					jobnotice.LinkNameColumn: "Apply <Online>",
					jobnotice.LinkColumn:     `<a href="https://x.nic.in/">Click Here</a>`,
				}},
			}},
		}

		got := htmltomarkdown.RenderHTML(rec)

		assert.Equal(t, "<h1>Clerk &amp; Typist</h1>"+
			"<h2>Important Links</h2>"+
			"<table><thead><tr><th>Link Name</th><th>Link</th></tr></thead>"+
			"<tbody><tr><td>Apply &lt;Online&gt;</td><td><a href=\"https://x.nic.in/\">Click Here</a></td></tr></tbody></table>", got)
	})

	t.Run("omits empty short information", func(t *testing.T) {
		t.Parallel()

		got := htmltomarkdown.RenderHTML(&jobnotice.Record{Title: "SSC"})

		assert.Equal(t, "<h1>SSC</h1>", got)
	})
}
