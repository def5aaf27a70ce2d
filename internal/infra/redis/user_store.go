package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"daily-trivia-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	userKeyPrefix = "trivia:user:"
	userIndexKey  = "trivia:users"
)

// UserStore persists user records in Redis: one JSON value per
// trivia:user:{fid} key plus a fid index set for leaderboard snapshots.
// Records are durable, so no TTL is applied.
type UserStore struct {
	client *redis.Client
}

func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{client: client}
}

func (s *UserStore) Get(ctx context.Context, fid int64) (domain.UserRecord, error) {
	raw, err := s.client.Get(ctx, s.key(fid)).Bytes()
	if err == redis.Nil {
		return domain.UserRecord{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.UserRecord{}, fmt.Errorf("get user %d: %w", fid, err)
	}
	var rec domain.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.UserRecord{}, fmt.Errorf("decode user %d: %w", fid, err)
	}
	return rec, nil
}

func (s *UserStore) Put(ctx context.Context, rec domain.UserRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode user %d: %w", rec.FID, err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(rec.FID), raw, 0)
	pipe.SAdd(ctx, userIndexKey, strconv.FormatInt(rec.FID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put user %d: %w", rec.FID, err)
	}
	return nil
}

func (s *UserStore) All(ctx context.Context) ([]domain.UserRecord, error) {
	fids, err := s.client.SMembers(ctx, userIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(fids) == 0 {
		return []domain.UserRecord{}, nil
	}

	keys := make([]string, 0, len(fids))
	for _, raw := range fids {
		fid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue // stale index entry
		}
		keys = append(keys, s.key(fid))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	records := make([]domain.UserRecord, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // record deleted between SMEMBERS and MGET
		}
		var rec domain.UserRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *UserStore) key(fid int64) string {
	return userKeyPrefix + strconv.FormatInt(fid, 10)
}
