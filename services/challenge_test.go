package services

import (
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryChallengeCache_IssueConsumeRoundTrip(t *testing.T) {
	cache := NewMemoryChallengeCache()

	issued, err := cache.Issue(CeremonyRegister, 1)
	assert.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(issued)
	assert.NoError(t, err)
	assert.Len(t, decoded, 32)

	consumed, err := cache.Consume(CeremonyRegister, 1)
	assert.NoError(t, err)
	assert.Equal(t, issued, consumed)
}

func TestMemoryChallengeCache_SecondConsumeFails(t *testing.T) {
	cache := NewMemoryChallengeCache()

	_, err := cache.Issue(CeremonyAuthenticate, 7)
	assert.NoError(t, err)

	_, err = cache.Consume(CeremonyAuthenticate, 7)
	assert.NoError(t, err)

	_, err = cache.Consume(CeremonyAuthenticate, 7)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestMemoryChallengeCache_ConsumeWithoutIssue(t *testing.T) {
	cache := NewMemoryChallengeCache()

	_, err := cache.Consume(CeremonyRegister, 42)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestMemoryChallengeCache_IssueOverwritesPending(t *testing.T) {
	cache := NewMemoryChallengeCache()

	first, err := cache.Issue(CeremonyRegister, 1)
	assert.NoError(t, err)
	second, err := cache.Issue(CeremonyRegister, 1)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	consumed, err := cache.Consume(CeremonyRegister, 1)
	assert.NoError(t, err)
	assert.Equal(t, second, consumed)

	_, err = cache.Consume(CeremonyRegister, 1)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestMemoryChallengeCache_KeysAreIndependent(t *testing.T) {
	cache := NewMemoryChallengeCache()

	registration, err := cache.Issue(CeremonyRegister, 1)
	assert.NoError(t, err)
	authentication, err := cache.Issue(CeremonyAuthenticate, 1)
	assert.NoError(t, err)

	consumed, err := cache.Consume(CeremonyRegister, 1)
	assert.NoError(t, err)
	assert.Equal(t, registration, consumed)

	consumed, err = cache.Consume(CeremonyAuthenticate, 1)
	assert.NoError(t, err)
	assert.Equal(t, authentication, consumed)
}

func TestMemoryChallengeCache_ExpiredChallengeIsAbsent(t *testing.T) {
	cache := NewMemoryChallengeCache()
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.Issue(CeremonyAuthenticate, 3)
	assert.NoError(t, err)

	// 6 minutes later, past the 5-minute TTL.
	cache.now = func() time.Time { return now.Add(6 * time.Minute) }

	_, err = cache.Consume(CeremonyAuthenticate, 3)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestMemoryChallengeCache_AtMostOneConcurrentConsumer(t *testing.T) {
	cache := NewMemoryChallengeCache()

	_, err := cache.Issue(CeremonyAuthenticate, 9)
	assert.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Consume(CeremonyAuthenticate, 9); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}
