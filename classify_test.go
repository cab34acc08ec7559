package jobnotice_test

import (
	"testing"

	"github.com/fwojciec/jobnotice"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []string
		want  jobnotice.Classification
	}{
		{
			name:  "last date is important dates",
			items: []string{"Application Begin: 01/09/2025", "Last Date to Apply: 10/10/2025"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelImportantDates},
		},
		{
			name:  "exam date is important dates",
			items: []string{"Exam Date: As per Schedule"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelImportantDates},
		},
		{
			name:  "rupee amounts are application fee",
			items: []string{"General: ₹500, OBC: ₹500", "SC / ST: ₹250"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelApplicationFee},
		},
		{
			name:  "general and obc without currency is application fee",
			items: []string{"General / OBC : 100", "SC / ST : 0"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelApplicationFee},
		},
		{
			name:  "fee list mentioning payment is payment mode",
			items: []string{"General: ₹500", "Pay the Examination Fee Through Debit Card, Credit Card", "Payment online only"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelPaymentMode},
		},
		{
			name:  "age bounds are age limit",
			items: []string{"Minimum Age: 18 Years", "Maximum Age: 27 Years"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelAgeLimit},
		},
		{
			name:  "written exam and interview are selection process",
			items: []string{"Written Exam", "Interview"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelSelectionProcess},
		},
		{
			name:  "dates win over fees",
			items: []string{"Last Date: 10/10/2025", "General: ₹500"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelImportantDates},
		},
		{
			name:  "fees win over selection",
			items: []string{"General: ₹500", "Interview"},
			want:  jobnotice.Classification{Kind: jobnotice.Classified, Label: jobnotice.LabelApplicationFee},
		},
		{
			name:  "unknown content needs a heading",
			items: []string{"Candidate must hold a graduation degree"},
			want:  jobnotice.Classification{Kind: jobnotice.NeedsHeadingFallback},
		},
		{
			name:  "no items needs a heading",
			items: nil,
			want:  jobnotice.Classification{Kind: jobnotice.NeedsHeadingFallback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jobnotice.Classify(tt.items))
		})
	}
}

func TestClassifyHeading(t *testing.T) {
	t.Parallel()

	t.Run("uses heading text as label", func(t *testing.T) {
		t.Parallel()

		got := jobnotice.ClassifyHeading("Eligibility")

		assert.True(t, got.OK())
		assert.Equal(t, "Eligibility", got.Label)
	})

	t.Run("generic headings are noise", func(t *testing.T) {
		t.Parallel()

		for _, heading := range []string{"Details", "Additional Information", "additional information"} {
			got := jobnotice.ClassifyHeading(heading)
			assert.Equal(t, jobnotice.Noise, got.Kind, "heading %q", heading)
			assert.False(t, got.OK())
		}
	})

	t.Run("empty heading is noise", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, jobnotice.Noise, jobnotice.ClassifyHeading("").Kind)
	})
}
