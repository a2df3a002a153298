package phone_gate

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type PhoneGateRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewPhoneGateRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.PhoneGateStore {
	return &PhoneGateRedisRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (repo *PhoneGateRedisRepository) Open(ctx context.Context, key models.FlowKey, gate *models.PhoneGate) error {
	return repo.RedisRepository.Set(ctx, key.PhoneGateRedisKey(), gate, repo.TTL)
}

// Find returns nil when no gate is open for key.
func (repo *PhoneGateRedisRepository) Find(ctx context.Context, key models.FlowKey) (*models.PhoneGate, error) {
	redisKey := key.PhoneGateRedisKey()
	raw, err := repo.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var gate models.PhoneGate
	err = json.Unmarshal([]byte(raw), &gate)
	if err != nil {
		return nil, exceptions.ErrRedisDecodeSnapshot(err, redisKey)
	}
	return &gate, nil
}

func (repo *PhoneGateRedisRepository) Close(ctx context.Context, key models.FlowKey) error {
	return repo.RedisRepository.Delete(ctx, key.PhoneGateRedisKey())
}
