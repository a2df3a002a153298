package locker

import (
	"cobalt-screening-service/internal/app/contracts/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLockService(repo *mocks.MockRedisRepository) *lockService {
	return &lockService{RedisRepository: repo, Log: zap.NewNop()}
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.AnythingOfType("string"), 5*time.Second).Return(true, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:a", 5*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("held elsewhere", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.Anything, time.Second).Return(false, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:a", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("redis error", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.Anything, time.Second).Return(false, errors.New("down"))

		acquired, _, err := newTestLockService(repo).TryLock(ctx, "lock:a", time.Second)
		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return(`"token-1"`, nil)
		repo.On("Delete", ctx, []string{"lock:a"}).Return(nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:a", "token-1")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("expired lock is a no-op", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return("", nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:a", "token-1")
		require.NoError(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return(`"token-2"`, nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:a", "token-1")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
