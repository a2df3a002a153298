package sessioncache

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionCacheInstance contracts.SessionCache
	onceSessionCache     sync.Once
)

type sessionCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewSessionCache(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionCache {
	onceSessionCache.Do(func() {
		instance := &sessionCache{
			RedisRepository: redisRepository,
			TTL:             ttl,
			Log:             logger,
		}
		sessionCacheInstance = instance
	})
	return sessionCacheInstance
}

// Get reports a miss when the ttl is zero, so caching can be disabled from config.
func (c *sessionCache) Get(ctx context.Context, key models.FlowKey) ([]cobalt_dto.ScreeningSession, bool, error) {
	if c.TTL <= 0 {
		return nil, false, nil
	}

	redisKey := key.SessionsRedisKey()
	raw, err := c.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, nil
	}

	var sessions []cobalt_dto.ScreeningSession
	err = json.Unmarshal([]byte(raw), &sessions)
	if err != nil {
		c.Log.Warn("sessionCache.Get dropping unreadable snapshot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		if delErr := c.RedisRepository.Delete(ctx, redisKey); delErr != nil {
			return nil, false, delErr
		}
		return nil, false, exceptions.ErrRedisDecodeSnapshot(err, redisKey)
	}

	return sessions, true, nil
}

func (c *sessionCache) Put(ctx context.Context, key models.FlowKey, sessions []cobalt_dto.ScreeningSession) error {
	if c.TTL <= 0 {
		return nil
	}
	if sessions == nil {
		sessions = []cobalt_dto.ScreeningSession{}
	}
	return c.RedisRepository.Set(ctx, key.SessionsRedisKey(), sessions, c.TTL)
}

func (c *sessionCache) Invalidate(ctx context.Context, key models.FlowKey) error {
	return c.RedisRepository.Delete(ctx, key.SessionsRedisKey())
}
