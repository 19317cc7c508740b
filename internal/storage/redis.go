package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/storefront-client/internal/model"
)

// Redis key names for the two session values.
const (
	redisTokenKey = "storefront:session:token"
	redisUserKey  = "storefront:session:user"
)

// RedisStore keeps the session in redis.  Useful when several client
// processes (a kiosk fleet, a test rig) need to share one login.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection with a
// short ping.  It returns nil when the server is unreachable so the
// caller can degrade to the file backend instead of failing startup.
func NewRedisStore(addr, password string, db int) *RedisStore {
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return &RedisStore{client: client}
}

func (r *RedisStore) Token(ctx context.Context) (string, error) {
	v, err := r.client.Get(ctx, redisTokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (r *RedisStore) SetToken(ctx context.Context, token string) error {
	return r.client.Set(ctx, redisTokenKey, token, 0).Err()
}

func (r *RedisStore) User(ctx context.Context) (*model.User, error) {
	data, err := r.client.Get(ctx, redisUserKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		// A corrupt cached user reads as absent, same as the file backend.
		return nil, nil
	}
	return &u, nil
}

func (r *RedisStore) SetUser(ctx context.Context, u *model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisUserKey, data, 0).Err()
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, redisTokenKey, redisUserKey).Err()
}
