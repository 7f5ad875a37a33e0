package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationGuard(t *testing.T) {
	t.Parallel()

	var guard OperationGuard

	assert.False(t, guard.Busy())
	assert.True(t, guard.TryAcquire())
	assert.True(t, guard.Busy())

	// A second acquisition is refused while the first one holds the guard.
	assert.False(t, guard.TryAcquire())

	guard.Release()

	assert.False(t, guard.Busy())
	assert.True(t, guard.TryAcquire())
}
