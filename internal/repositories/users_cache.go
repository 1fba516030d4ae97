package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/models"
)

// UserListCacheRepository caches listing pages in Redis. Entries are not
// invalidated on user mutations; they age out via the TTL.
type UserListCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserListCacheRepository creates a cache repository with the given TTL.
func NewUserListCacheRepository(client *redis.Client, expiration time.Duration) *UserListCacheRepository {
	return &UserListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached page for the given key.
func (r *UserListCacheRepository) Get(ctx context.Context, key string) (*models.UserListResult, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("users list cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("users list not found in cache for %s", key)
		}
		return nil, err
	}

	var result models.UserListResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		logger.Log.Errorw("failed to decode cached users list",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("users list cache hit",
		"key", key,
		"count", result.Count,
	)

	return &result, nil
}

// Set caches a page under the given key with the repository TTL.
func (r *UserListCacheRepository) Set(ctx context.Context, key string, result *models.UserListResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("users list cache set",
		"key", key,
		"count", result.Count,
		"error", err,
	)

	return err
}
