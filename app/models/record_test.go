package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordWithLeavesReceiverUntouched(t *testing.T) {
	orig := Record{"id": 1.0, "title": "test_title"}

	out := orig.With("new_field", "new_value")

	assert.Equal(t, Record{"id": 1.0, "title": "test_title", "new_field": "new_value"}, out)
	assert.NotContains(t, orig, "new_field")
}

func TestRecordWithOnNil(t *testing.T) {
	var rec Record
	out := rec.With("k", "v")
	assert.Equal(t, Record{"k": "v"}, out)
	assert.Nil(t, rec.Clone())
}

func TestRecordField(t *testing.T) {
	rec := Record{"title": "x"}

	v, ok := rec.Field("title")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = rec.Field("titles")
	assert.False(t, ok)
}
