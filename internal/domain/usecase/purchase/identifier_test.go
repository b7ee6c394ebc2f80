package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/gold-advisor/mocks/port/persistence"
)

func withSuffixes(t *testing.T, suffixes ...string) {
	t.Helper()
	original := randomSuffix
	i := 0
	randomSuffix = func() string {
		s := suffixes[i%len(suffixes)]
		i++
		return s
	}
	t.Cleanup(func() { randomSuffix = original })
}

func TestIdentifierGenerator_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("default suffix format", func(t *testing.T) {
		assert.Regexp(t, `^[0-9A-F]{8}$`, randomSuffix())
	})

	t.Run("regenerates after a collision", func(t *testing.T) {
		// Arrange
		withSuffixes(t, "AAAAAAAA", "BBBBBBBB")
		store := persistencemocks.NewMockRecordStore(t)
		store.EXPECT().TransactionExists(mock.Anything, "TXN-AAAAAAAA").Return(true, nil)
		store.EXPECT().TransactionExists(mock.Anything, "TXN-BBBBBBBB").Return(false, nil)
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", mock.Anything, mock.Anything).Once()

		// Act
		id, err := NewIdentifierGenerator(logger, store).Next(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "TXN-BBBBBBBB", id)
	})

	t.Run("store errors do not block issuing", func(t *testing.T) {
		// Arrange
		withSuffixes(t, "CCCCCCCC")
		store := persistencemocks.NewMockRecordStore(t)
		store.EXPECT().Name().Return("dynamodb")
		store.EXPECT().TransactionExists(mock.Anything, "TXN-CCCCCCCC").Return(false, errors.New("throttled"))
		logger := coremocks.NewMockLogger(t)
		logger.On("Debug", mock.Anything, mock.Anything).Once()

		// Act
		id, err := NewIdentifierGenerator(logger, store).Next(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "TXN-CCCCCCCC", id)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		// Arrange
		withSuffixes(t, "DDDDDDDD")
		store := persistencemocks.NewMockRecordStore(t)
		store.EXPECT().TransactionExists(mock.Anything, "TXN-DDDDDDDD").Return(true, nil).Times(maxIdentifierAttempts)
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", mock.Anything, mock.Anything).Times(maxIdentifierAttempts)

		// Act
		id, err := NewIdentifierGenerator(logger, store, store).Next(ctx)

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnexpected))
		assert.Empty(t, id)
	})
}
