package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"month_balance_ms/util"

	"github.com/redis/go-redis/v9"
)

const (
	CeremonyRegister     = "register"
	CeremonyAuthenticate = "authenticate"

	challengeTTL = 5 * time.Minute
)

var ctx = context.Background()

// IChallengeCache holds one pending challenge per (ceremony, user) pair.
// Issue overwrites any prior pending challenge for the key; Consume is an
// atomic remove-and-return, so at most one caller can consume a given
// challenge. Entries are volatile; losing them only forces the client to
// restart the ceremony.
type IChallengeCache interface {
	Issue(ceremony string, userID uint) (string, error)
	Consume(ceremony string, userID uint) (string, error)
}

func challengeKey(ceremony string, userID uint) string {
	return fmt.Sprintf("webauthn:%s:%d", ceremony, userID)
}

type RedisChallengeCache struct {
	rdb *redis.Client
}

func NewRedisChallengeCache(rdb *redis.Client) *RedisChallengeCache {
	return &RedisChallengeCache{rdb: rdb}
}

func (c *RedisChallengeCache) Issue(ceremony string, userID uint) (string, error) {
	challenge, err := util.GenerateChallenge()
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, challengeKey(ceremony, userID), challenge, challengeTTL).Err(); err != nil {
		return "", err
	}
	return challenge, nil
}

func (c *RedisChallengeCache) Consume(ceremony string, userID uint) (string, error) {
	// GETDEL keeps lookup and eviction in one round trip, so concurrent
	// completions cannot both observe the same pending challenge.
	challenge, err := c.rdb.GetDel(ctx, challengeKey(ceremony, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrChallengeNotFound
	}
	if err != nil {
		return "", err
	}
	return challenge, nil
}

type memoryChallengeEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryChallengeCache is the in-process fallback used when no redis
// address is configured.
type MemoryChallengeCache struct {
	mu      sync.Mutex
	entries map[string]memoryChallengeEntry
	now     func() time.Time
}

func NewMemoryChallengeCache() *MemoryChallengeCache {
	return &MemoryChallengeCache{
		entries: make(map[string]memoryChallengeEntry),
		now:     time.Now,
	}
}

func (c *MemoryChallengeCache) Issue(ceremony string, userID uint) (string, error) {
	challenge, err := util.GenerateChallenge()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[challengeKey(ceremony, userID)] = memoryChallengeEntry{
		value:     challenge,
		expiresAt: c.now().Add(challengeTTL),
	}
	return challenge, nil
}

func (c *MemoryChallengeCache) Consume(ceremony string, userID uint) (string, error) {
	key := challengeKey(ceremony, userID)

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return "", ErrChallengeNotFound
	}
	delete(c.entries, key)
	if c.now().After(entry.expiresAt) {
		return "", ErrChallengeNotFound
	}
	return entry.value, nil
}
