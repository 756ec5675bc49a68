package ident

import (
	"regexp"
	"strings"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortableFormat(t *testing.T) {
	id, err := Sortable("story")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^story_[0-9A-Za-z]{27}$`), id)

	suffix := strings.TrimPrefix(id, "story_")
	_, err = ksuid.Parse(suffix)
	assert.NoError(t, err)
}

func TestSortableUnique(t *testing.T) {
	a, err := Sortable("seg")
	require.NoError(t, err)
	b, err := Sortable("seg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSortableEmptyPrefix(t *testing.T) {
	_, err := Sortable("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Sortable(" \t")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
