package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPost_Validate tests required-field validation before storage.
func TestPost_Validate(t *testing.T) {
	valid := Post{
		ID:        "p1",
		Title:     "I love it",
		Body:      "amazing",
		CreatedAt: 1700000000,
		Permalink: "https://example.com/p1",
	}

	tests := []struct {
		name    string
		mutate  func(p *Post)
		wantErr bool
	}{
		{"valid post", func(*Post) {}, false},
		{"empty body allowed", func(p *Post) { p.Body = "" }, false},
		{"empty title allowed", func(p *Post) { p.Title = "" }, false},
		{"missing id", func(p *Post) { p.ID = "" }, true},
		{"missing permalink", func(p *Post) { p.Permalink = "" }, true},
		{"zero timestamp", func(p *Post) { p.CreatedAt = 0 }, true},
		{"negative timestamp", func(p *Post) { p.CreatedAt = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPost)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestPost_Text tests the title/body join used for classification.
func TestPost_Text(t *testing.T) {
	p := Post{Title: "hello", Body: "world"}
	assert.Equal(t, "hello world", p.Text())

	// Missing body still yields the trailing separator, matching the
	// scorer input contract (title + " " + body).
	p = Post{Title: "hello"}
	assert.Equal(t, "hello ", p.Text())
}

// TestErrors_Distinct tests that the error taxonomy values are distinct.
func TestErrors_Distinct(t *testing.T) {
	errs := []error{
		ErrNotFound,
		ErrInvalidPost,
		ErrInvalidArgument,
		ErrStorageUnavailable,
		ErrUpstreamUnavailable,
	}
	for i, a := range errs {
		assert.NotEmpty(t, a.Error())
		for j, b := range errs {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
