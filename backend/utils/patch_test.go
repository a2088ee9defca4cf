package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterUpdatesMapsColumns(t *testing.T) {
	allowed := map[string]string{
		"title":       "title",
		"isPublished": "is_published",
	}

	filtered, err := FilterUpdates(map[string]interface{}{
		"title":       "New",
		"isPublished": true,
	}, allowed)

	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"title":        "New",
		"is_published": true,
	}, filtered)
}

func TestFilterUpdatesRejectsUnknownKey(t *testing.T) {
	allowed := map[string]string{"title": "title"}

	filtered, err := FilterUpdates(map[string]interface{}{
		"title":     "New",
		"viewCount": 100,
	}, allowed)

	assert.ErrorIs(t, err, ErrInvalidUpdateField)
	assert.Nil(t, filtered)
}

func TestFilterUpdatesAcceptsEmptyPayload(t *testing.T) {
	filtered, err := FilterUpdates(map[string]interface{}{}, map[string]string{"title": "title"})
	assert.NoError(t, err)
	assert.Empty(t, filtered)
}
