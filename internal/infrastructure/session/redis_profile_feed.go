package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func profileChannel(userID string) string {
	return "profile:" + userID
}

// RedisProfileFeed fans profile updates out over Redis pub/sub so every
// API instance can serve live profile streams.
type RedisProfileFeed struct {
	rdb redis.UniversalClient
	log *zap.Logger
}

var _ interfaces.IProfileFeed = (*RedisProfileFeed)(nil)

func NewRedisProfileFeed(rdb redis.UniversalClient, log *zap.Logger) *RedisProfileFeed {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisProfileFeed{rdb: rdb, log: log.Named("profile-feed")}
}

func (f *RedisProfileFeed) Publish(ctx context.Context, profile entities.UserProfile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, profileChannel(profile.ID), b).Err()
}

// Subscribe returns once Redis has confirmed the subscription, so no update
// published after Subscribe returns can be missed.
func (f *RedisProfileFeed) Subscribe(ctx context.Context, userID string) (interfaces.ProfileSubscription, error) {
	ps := f.rdb.Subscribe(ctx, profileChannel(userID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", profileChannel(userID), err)
	}

	sub := &redisProfileSubscription{
		ps:      ps,
		updates: make(chan entities.UserProfile, 8),
		done:    make(chan struct{}),
	}
	go sub.pump(f.log.With(zap.String("user_id", userID)))
	return sub, nil
}

type redisProfileSubscription struct {
	ps      *redis.PubSub
	updates chan entities.UserProfile
	done    chan struct{}
	once    sync.Once
}

func (s *redisProfileSubscription) Updates() <-chan entities.UserProfile {
	return s.updates
}

func (s *redisProfileSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

func (s *redisProfileSubscription) pump(log *zap.Logger) {
	defer close(s.updates)
	msgs := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var p entities.UserProfile
			if err := json.Unmarshal([]byte(msg.Payload), &p); err != nil {
				log.Warn("dropping malformed profile update", zap.Error(err))
				continue
			}
			select {
			case s.updates <- p:
			case <-s.done:
				return
			}
		}
	}
}
