// Package leaderboard serves the global, country, and friends rankings.
// Global and country boards are cached in Redis sorted sets with a short
// TTL; the database remains the source of truth and every read degrades to
// it when the cache is unavailable.
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crankerz/crankerz/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Size is the number of entries a board returns.
const Size = 10

// DefaultCacheTTL bounds how stale a cached board can get.
const DefaultCacheTTL = 30 * time.Second

// Entry is one leaderboard row.
type Entry struct {
	Username      string         `json:"username"`
	TotalSessions int            `json:"total_sessions"`
	Level         int            `json:"level"`
	Country       string         `json:"country"`
	Badges        datatypes.JSON `json:"badges"`
}

// Service computes leaderboards.
type Service struct {
	db     *gorm.DB
	cache  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewService constructs a Service. A nil cache disables caching and every
// read goes straight to the database.
func NewService(conn *gorm.DB, cache *redis.Client, prefix string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{db: conn, cache: cache, prefix: prefix, ttl: ttl}
}

// Global returns the top users by session count across all countries.
func (s *Service) Global(ctx context.Context) ([]Entry, error) {
	return s.cached(ctx, s.prefix+"leaderboard:global", func() ([]Entry, error) {
		return s.queryBoard(ctx, s.db.WithContext(ctx).Model(&models.User{}))
	})
}

// Country returns the top users by session count within one country.
func (s *Service) Country(ctx context.Context, country string) ([]Entry, error) {
	key := s.prefix + "leaderboard:country:" + country
	return s.cached(ctx, key, func() ([]Entry, error) {
		return s.queryBoard(ctx, s.db.WithContext(ctx).Model(&models.User{}).Where("country = ?", country))
	})
}

// Friends returns the top friends of a user by session count. A friendship
// row in either direction links the pair, and a friend linked both ways
// still appears once. The board is per-user and changes with every
// friendship, so it is never cached.
func (s *Service) Friends(ctx context.Context, userID uint64) ([]Entry, error) {
	var entries []Entry
	errScan := s.db.WithContext(ctx).
		Table("users AS u").
		Select("DISTINCT u.username, u.total_sessions, u.level, u.country, u.badges").
		Joins("INNER JOIN friendships f ON (f.friend_id = u.id OR f.user_id = u.id)").
		Where("(f.user_id = ? OR f.friend_id = ?) AND u.id <> ?", userID, userID, userID).
		Order("u.total_sessions DESC").
		Limit(Size).
		Scan(&entries).Error
	if errScan != nil {
		return nil, fmt.Errorf("friends leaderboard: %w", errScan)
	}
	return entries, nil
}

// queryBoard runs the shared top-N projection over a prepared user query.
func (s *Service) queryBoard(ctx context.Context, query *gorm.DB) ([]Entry, error) {
	var entries []Entry
	errScan := query.
		Select("username, total_sessions, level, country, badges").
		Order("total_sessions DESC").
		Limit(Size).
		Scan(&entries).Error
	if errScan != nil {
		return nil, fmt.Errorf("leaderboard query: %w", errScan)
	}
	return entries, nil
}

// cached reads a board from the Redis sorted set at key, refilling it from
// the database on a miss. Cache failures are logged and fall through to the
// database.
func (s *Service) cached(ctx context.Context, key string, load func() ([]Entry, error)) ([]Entry, error) {
	if s.cache == nil {
		return load()
	}

	members, errRead := s.cache.ZRevRangeWithScores(ctx, key, 0, Size-1).Result()
	if errRead == nil && len(members) > 0 {
		entries := make([]Entry, 0, len(members))
		for _, member := range members {
			raw, ok := member.Member.(string)
			if !ok {
				continue
			}
			var entry Entry
			if errDecode := json.Unmarshal([]byte(raw), &entry); errDecode != nil {
				log.WithError(errDecode).WithField("key", key).Warn("drop undecodable leaderboard cache entry")
				continue
			}
			entries = append(entries, entry)
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}
	if errRead != nil {
		log.WithError(errRead).WithField("key", key).Warn("leaderboard cache read failed, falling back to database")
	}

	entries, errLoad := load()
	if errLoad != nil {
		return nil, errLoad
	}
	s.fill(ctx, key, entries)
	return entries, nil
}

// fill replaces the sorted set at key with the given entries. Scores are
// session counts so the set keeps the board's ordering.
func (s *Service) fill(ctx context.Context, key string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	members := make([]redis.Z, 0, len(entries))
	for _, entry := range entries {
		raw, errEncode := json.Marshal(entry)
		if errEncode != nil {
			continue
		}
		members = append(members, redis.Z{Score: float64(entry.TotalSessions), Member: string(raw)})
	}

	pipe := s.cache.TxPipeline()
	pipe.Del(ctx, key)
	pipe.ZAdd(ctx, key, members...)
	pipe.Expire(ctx, key, s.ttl)
	if _, errWrite := pipe.Exec(ctx); errWrite != nil {
		log.WithError(errWrite).WithField("key", key).Warn("leaderboard cache fill failed")
	}
}
