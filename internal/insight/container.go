package insight

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

type InsightContainer struct {
	Handler *Handler
	Service Service
}

type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// Redis is optional; without it the phrase cache lives in memory.
	Redis *redis.Client
	Now   util.Clock
}

func NewInsightContainer(ctx context.Context, opts Options) *InsightContainer {
	log := config.WithContext(ctx)

	provider, err := NewGeminiProvider(ctx, opts.APIKey, opts.Model)
	if err != nil {
		log.WithError(err).Warn("Gemini indisponível, insights usarão o texto padrão")
		provider = nil
	}
	if provider == nil {
		log.Info("Serviço de insights sem chave do Gemini configurada")
	}

	var cache PhraseCache = NewMemoryPhraseCache()
	if opts.Redis != nil {
		cache = NewRedisPhraseCache(opts.Redis)
	}

	service := NewService(provider, cache, opts.Timeout, opts.Now)
	handler := NewHandler(service)

	return &InsightContainer{
		Handler: handler,
		Service: service,
	}
}
