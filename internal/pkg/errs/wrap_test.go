//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"adspace-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("marked error matches the sentinel via errors.Is", func(t *testing.T) {
		cause := errors.New("update failed")
		marked := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, marked, sentinel)
		assert.ErrorIs(t, marked, cause)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped error keeps the cause in the chain", func(t *testing.T) {
		cause := errors.New("broken")
		assert.ErrorIs(t, errs.Wrap(cause, "context"), cause)
	})
}
