package mongodb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyviewhq/skyview-api/internal/store"
)

func TestPageOptions(t *testing.T) {
	t.Parallel()

	t.Run("zero or negative size disables pagination", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, pageOptions(1, 0))
		assert.Nil(t, pageOptions(3, -5))
	})

	t.Run("first page starts at zero skip", func(t *testing.T) {
		t.Parallel()
		opts := pageOptions(1, 6)
		require.NotNil(t, opts)
		assert.Equal(t, int64(0), *opts.Skip)
		assert.Equal(t, int64(6), *opts.Limit)
	})

	t.Run("pages are one-based", func(t *testing.T) {
		t.Parallel()
		opts := pageOptions(3, 6)
		require.NotNil(t, opts)
		assert.Equal(t, int64(12), *opts.Skip)
		assert.Equal(t, int64(6), *opts.Limit)
	})

	t.Run("page zero clamps to the first page", func(t *testing.T) {
		t.Parallel()
		opts := pageOptions(0, 6)
		require.NotNil(t, opts)
		assert.Equal(t, int64(0), *opts.Skip)
	})
}

func TestParseObjectID(t *testing.T) {
	t.Parallel()

	t.Run("valid hex id", func(t *testing.T) {
		t.Parallel()
		oid, err := parseObjectID("665f1f77bcf86cd799439011")
		require.NoError(t, err)
		assert.Equal(t, "665f1f77bcf86cd799439011", oid.Hex())
	})

	t.Run("invalid id maps onto the sentinel", func(t *testing.T) {
		t.Parallel()
		_, err := parseObjectID("not-hex")
		assert.True(t, errors.Is(err, store.ErrInvalidID))
	})
}
