package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryError(t *testing.T) {
	errConnect := errors.New("connection refused")
	errPurge := errors.New("container already gone")

	t.Run("Keeps the connect error when the purge fails", func(t *testing.T) {
		err := retryError(errConnect, errPurge)

		require.ErrorIs(t, err, errConnect)
		assert.ErrorIs(t, err, errPurge)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Keeps the connect error when the purge succeeds", func(t *testing.T) {
		err := retryError(errConnect, nil)

		require.ErrorIs(t, err, errConnect)
		assert.Equal(t, "could not connect to redis: connection refused", err.Error())
	})
}
