package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	phraseKeyPrefix = "phrase:"
	phraseTTL       = 24 * time.Hour
)

// PhraseCache keeps the phrase of the day keyed by YYYY-MM-DD.
// Get reports ok=false on a miss.
type PhraseCache interface {
	Get(ctx context.Context, day string) (Phrase, bool, error)
	Set(ctx context.Context, day string, p Phrase) error
}

type RedisPhraseCache struct {
	client *redis.Client
}

func NewRedisPhraseCache(client *redis.Client) *RedisPhraseCache {
	return &RedisPhraseCache{client: client}
}

func (c *RedisPhraseCache) Get(ctx context.Context, day string) (Phrase, bool, error) {
	raw, err := c.client.Get(ctx, phraseKeyPrefix+day).Bytes()
	if errors.Is(err, redis.Nil) {
		return Phrase{}, false, nil
	}
	if err != nil {
		return Phrase{}, false, fmt.Errorf("falha ao ler frase do cache: %w", err)
	}

	var p Phrase
	if err := json.Unmarshal(raw, &p); err != nil {
		return Phrase{}, false, fmt.Errorf("falha ao decodificar frase do cache: %w", err)
	}
	return p, true, nil
}

func (c *RedisPhraseCache) Set(ctx context.Context, day string, p Phrase) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, phraseKeyPrefix+day, raw, phraseTTL).Err(); err != nil {
		return fmt.Errorf("falha ao gravar frase no cache: %w", err)
	}
	return nil
}

// MemoryPhraseCache keeps only the latest day.
type MemoryPhraseCache struct {
	mu     sync.Mutex
	day    string
	phrase Phrase
}

func NewMemoryPhraseCache() *MemoryPhraseCache {
	return &MemoryPhraseCache{}
}

func (c *MemoryPhraseCache) Get(ctx context.Context, day string) (Phrase, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.day != day {
		return Phrase{}, false, nil
	}
	return c.phrase, true, nil
}

func (c *MemoryPhraseCache) Set(ctx context.Context, day string, p Phrase) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day, c.phrase = day, p
	return nil
}
