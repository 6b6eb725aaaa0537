// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package editors

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore] on Redis. Expiry is delegated
// to the key TTL; there is no revocation list beyond deleting the key.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func (store *RedisSessionStore) Set(context context.Context, tokenHash string, editorID int64, ttl time.Duration) error {
	if err := store.client.Set(context, sessionKey(tokenHash), editorID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (store *RedisSessionStore) Get(context context.Context, tokenHash string) (int64, error) {
	value, err := store.client.Get(context, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return 0, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	editorID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_session_corrupt_value: %w", err)
	}
	return editorID, nil
}

func (store *RedisSessionStore) Delete(context context.Context, tokenHash string) error {
	if err := store.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
