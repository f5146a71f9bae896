package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Revision
	}{
		{
			name:   "Empty",
			output: "",
			want:   nil,
		},
		{
			name:   "SingleRevision",
			output: "* Needs Review D28944: Add retry logic to fetcher",
			want: []Revision{
				{ID: "D28944", Description: "Add retry logic to fetcher"},
			},
		},
		{
			name: "MultipleRevisionsWithNoise",
			output: "You have 2 open revisions.\n" +
				"* Needs Review D101: First change\n" +
				"* Accepted D102: Second change\n",
			want: []Revision{
				{ID: "D101", Description: "First change"},
				{ID: "D102", Description: "Second change"},
			},
		},
		{
			name:   "RevisionWithoutDescription",
			output: "* Needs Revision D55",
			want: []Revision{
				{ID: "D55", Description: ""},
			},
		},
		{
			name:   "TokenMustBeWordBounded",
			output: "* Needs Review BUILD999 something unrelated",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.output))
		})
	}
}
