package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelHelpers(t *testing.T) {
	t.Run("helpers match their sentinel", func(t *testing.T) {
		assert.True(t, IsInvalidMonth(ErrInvalidMonth))
		assert.True(t, IsMissingField(ErrMissingField))
		assert.True(t, IsUnresolvedReference(ErrUnresolvedReference))
		assert.True(t, IsNotFoundError(ErrNotFound))
	})

	t.Run("helpers see through wrapping", func(t *testing.T) {
		err := Wrap(ErrMissingField, "while filtering grants")
		assert.True(t, IsMissingField(err))
		assert.False(t, IsInvalidMonth(err))
	})

	t.Run("nil is never a match", func(t *testing.T) {
		assert.False(t, IsMissingField(nil))
		assert.False(t, IsNotFoundError(nil))
	})
}

func TestNewMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("begin_year", "talk1")
	assert.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "begin_year")
	assert.Contains(t, err.Error(), "talk1")
}

func TestNewUnresolvedReferenceError(t *testing.T) {
	err := NewUnresolvedReferenceError("institution %v not found", "Atlantis Tech")
	assert.True(t, IsUnresolvedReference(err))
	assert.Contains(t, err.Error(), "Atlantis Tech")
}
