// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package geo

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/periplus-travel/periplus/internal/platform/constants"
)

// rowCache keeps normalized hierarchy lists in Redis for a short TTL.
//
// The cache is strictly best-effort: a miss, a decode failure, or a Redis
// outage all fall through to Postgres. Nothing here returns an error to the
// caller.
type rowCache struct {
	client *redis.Client
}

func newRowCache(client *redis.Client) *rowCache {
	return &rowCache{client: client}
}

func (cache *rowCache) get(context context.Context, suffix string) ([]Row, bool) {
	if cache.client == nil {
		return nil, false
	}

	payload, err := cache.client.Get(context, constants.RedisPrefixGeo+suffix).Bytes()
	if err != nil {
		return nil, false
	}

	var rows []Row
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (cache *rowCache) set(context context.Context, suffix string, rows []Row) {
	if cache.client == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	_ = cache.client.Set(context, constants.RedisPrefixGeo+suffix, payload, constants.GeoCacheTTL).Err()
}

// invalidate drops every cached hierarchy list. Admin destination writes
// call this so the public site converges within one request, not one TTL.
func (cache *rowCache) invalidate(context context.Context) {
	if cache.client == nil {
		return
	}
	_ = cache.client.Del(context,
		constants.RedisPrefixGeo+"regions",
		constants.RedisPrefixGeo+"prefectures",
		constants.RedisPrefixGeo+"divisions",
	).Err()
}
