// Package store provides persistence collaborators for the relation SDK.
// The engine core never touches storage; these types back the follow-up
// scheduler and goal snapshots for hosts that want state to survive
// restarts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	relsdk "github.com/flowrelate/relation-sdk-go"
)

// RedisFollowUpStore is a redis-backed relsdk.FollowUpStore with goal
// snapshot persistence on the side.
//
// Key layout:
//
//	{prefix}:optin:{nudge}          set of opted-in user IDs
//	{prefix}:sent:{user}:{nudge}    last send day, "2006-01-02"
//	{prefix}:goals:{user}           JSON-encoded goal snapshot
type RedisFollowUpStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// Config configures the redis store.
type Config struct {
	Prefix string        // key prefix, default "rel"
	TTL    time.Duration // TTL for send markers and goal snapshots, 0 = no expiry
}

// NewRedisFollowUpStore creates a store on an existing go-redis client.
func NewRedisFollowUpStore(client *redis.Client, config ...Config) *RedisFollowUpStore {
	cfg := Config{Prefix: "rel"}
	if len(config) > 0 && config[0].Prefix != "" {
		cfg.Prefix = config[0].Prefix
	}
	if len(config) > 0 {
		cfg.TTL = config[0].TTL
	}
	return &RedisFollowUpStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (s *RedisFollowUpStore) optInKey(nudge string) string {
	return fmt.Sprintf("%s:optin:%s", s.prefix, nudge)
}

func (s *RedisFollowUpStore) sentKey(userID, nudge string) string {
	return fmt.Sprintf("%s:sent:%s:%s", s.prefix, userID, nudge)
}

func (s *RedisFollowUpStore) goalsKey(userID string) string {
	return fmt.Sprintf("%s:goals:%s", s.prefix, userID)
}

func (s *RedisFollowUpStore) IsEnabled(userID, nudge string) bool {
	ok, err := s.client.SIsMember(s.ctx, s.optInKey(nudge), userID).Result()
	if err != nil {
		log.Printf("[RedisFollowUpStore] IsEnabled failed: %v", err)
		return false
	}
	return ok
}

func (s *RedisFollowUpStore) Enable(userID, nudge string) {
	if err := s.client.SAdd(s.ctx, s.optInKey(nudge), userID).Err(); err != nil {
		log.Printf("[RedisFollowUpStore] Enable failed: %v", err)
	}
}

func (s *RedisFollowUpStore) Disable(userID, nudge string) {
	if err := s.client.SRem(s.ctx, s.optInKey(nudge), userID).Err(); err != nil {
		log.Printf("[RedisFollowUpStore] Disable failed: %v", err)
	}
}

func (s *RedisFollowUpStore) EnabledUsers(nudge string) []string {
	users, err := s.client.SMembers(s.ctx, s.optInKey(nudge)).Result()
	if err != nil {
		log.Printf("[RedisFollowUpStore] EnabledUsers failed: %v", err)
		return nil
	}
	return users
}

func (s *RedisFollowUpStore) RecordSent(userID, nudge string, at time.Time) {
	err := s.client.Set(s.ctx, s.sentKey(userID, nudge), at.Format("2006-01-02"), s.ttl).Err()
	if err != nil {
		log.Printf("[RedisFollowUpStore] RecordSent failed: %v", err)
	}
}

func (s *RedisFollowUpStore) SentOn(userID, nudge, day string) bool {
	val, err := s.client.Get(s.ctx, s.sentKey(userID, nudge)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[RedisFollowUpStore] SentOn failed: %v", err)
		}
		return false
	}
	return val == day
}

// SaveGoals persists a user's goal snapshot.
func (s *RedisFollowUpStore) SaveGoals(userID string, goals []relsdk.Goal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, s.goalsKey(userID), data, s.ttl).Err()
}

// LoadGoals restores a user's goal snapshot. Missing keys yield an empty
// slice, not an error.
func (s *RedisFollowUpStore) LoadGoals(userID string) ([]relsdk.Goal, error) {
	raw, err := s.client.Get(s.ctx, s.goalsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []relsdk.Goal{}, nil
		}
		return nil, err
	}
	var goals []relsdk.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// GoalsFn adapts the store to the scheduler's GoalsFn contract. Load
// failures log and return nil: nudges degrade, they don't crash the loop.
func (s *RedisFollowUpStore) GoalsFn() relsdk.GoalsFn {
	return func(userID string) []relsdk.Goal {
		goals, err := s.LoadGoals(userID)
		if err != nil {
			log.Printf("[RedisFollowUpStore] LoadGoals failed: %v", err)
			return nil
		}
		return goals
	}
}

// Close closes the underlying client.
func (s *RedisFollowUpStore) Close() error {
	return s.client.Close()
}

// Compile-time interface check.
var _ relsdk.FollowUpStore = (*RedisFollowUpStore)(nil)
