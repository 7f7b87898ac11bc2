package gists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_WithCopiesInsteadOfMutating(t *testing.T) {
	original := Options{"description": "old", "public": false}

	merged := original.With("files", "injected")

	assert.Equal(t, "injected", merged["files"])
	assert.Equal(t, "old", merged["description"])

	// The original bag is untouched
	_, present := original["files"]
	assert.False(t, present)
	assert.Len(t, original, 2)
}

func TestOptions_WithOverridesExistingKey(t *testing.T) {
	original := Options{"files": "caller value"}

	merged := original.With("files", "injected")

	assert.Equal(t, "injected", merged["files"])
	assert.Equal(t, "caller value", original["files"])
}

func TestOptions_WithNilReceiver(t *testing.T) {
	var opts Options

	merged := opts.With("body", "hello")

	assert.Equal(t, "hello", merged["body"])
	assert.Nil(t, opts)
}

func TestOptions_Merge(t *testing.T) {
	base := Options{"a": 1, "b": 2}
	overlay := Options{"b": 3, "c": 4}

	merged := base.Merge(overlay)

	assert.Equal(t, Options{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, Options{"a": 1, "b": 2}, base)
}

func TestOptions_Query(t *testing.T) {
	opts := Options{
		"since":    "2024-01-01T00:00:00Z",
		"per_page": 50,
		"starred":  true,
	}

	query := opts.query()

	assert.Equal(t, "2024-01-01T00:00:00Z", query.Get("since"))
	assert.Equal(t, "50", query.Get("per_page"))
	assert.Equal(t, "true", query.Get("starred"))
}

func TestOptions_QueryEmpty(t *testing.T) {
	assert.Nil(t, Options{}.query())
	assert.Nil(t, Options(nil).query())
}
