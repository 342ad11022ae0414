package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorHierarchy(t *testing.T) {
	t.Parallel()

	// Entity-specific errors wrap the generic sentinels so callers can
	// match at either level.
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrProductNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	assert.NotErrorIs(t, ErrUserNotFound, ErrProductNotFound)
	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("query failed: %w", ErrProductNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsDuplicateError(wrapped))

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("unrelated")))
	assert.False(t, IsNotFoundError(nil))
}
