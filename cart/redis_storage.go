package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists the line set as a JSON blob under one key per
// session. Concurrent sessions writing the same key are last-writer-wins.
type RedisStorage struct {
	client    *redis.Client
	sessionID string
}

func NewRedisStorage(client *redis.Client, sessionID string) *RedisStorage {
	return &RedisStorage{client: client, sessionID: sessionID}
}

func (r *RedisStorage) key() string {
	return fmt.Sprintf("cart:%s", r.sessionID)
}

func (r *RedisStorage) Load() ([]Line, error) {
	data, err := r.client.Get(context.Background(), r.key()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("malformed cart blob: %w", err)
	}
	return lines, nil
}

func (r *RedisStorage) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key(), data, 0).Err()
}
