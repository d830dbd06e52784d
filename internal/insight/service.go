package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/history"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// MinCheckins is the smallest history worth sending to the model.
const MinCheckins = 3

// Service never returns errors: every failure degrades to static copy.
type Service interface {
	Insight(ctx context.Context, checkins []checkin.Checkin) Insight
	MotivationalPhrase(ctx context.Context) Phrase
}

type service struct {
	provider Provider
	cache    PhraseCache
	timeout  time.Duration
	now      util.Clock
}

// NewService accepts a nil provider, meaning no generation service is configured.
func NewService(provider Provider, cache PhraseCache, timeout time.Duration, now util.Clock) Service {
	if cache == nil {
		cache = NewMemoryPhraseCache()
	}
	if now == nil {
		now = util.SystemClock
	}
	return &service{provider: provider, cache: cache, timeout: timeout, now: now}
}

func (s *service) generate(ctx context.Context, prompt string, out interface{}) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(cleanJSON(raw)), out); err != nil {
		return fmt.Errorf("falha ao decodificar JSON: %w", err)
	}
	return nil
}

func (s *service) Insight(ctx context.Context, checkins []checkin.Checkin) Insight {
	if s.provider == nil || len(checkins) < MinCheckins {
		return InsufficientData
	}

	log := config.WithContext(ctx)
	prompt := BuildInsightPrompt(history.Recent(checkins, history.InsightWindow))

	var got Insight
	if err := s.generate(ctx, prompt, &got); err != nil {
		log.WithError(err).Warn("[INSIGHT] Falha ao gerar insight, usando texto padrão")
		return Reflection
	}
	if got.Title == "" || got.Message == "" {
		log.Warn("[INSIGHT] Resposta sem título ou mensagem, usando texto padrão")
		return Reflection
	}
	return got
}

func (s *service) MotivationalPhrase(ctx context.Context) Phrase {
	if s.provider == nil {
		return DefaultPhrase
	}

	log := config.WithContext(ctx)
	day := util.DayKey(s.now())

	if cached, ok, err := s.cache.Get(ctx, day); err != nil {
		log.WithError(err).Warn("[INSIGHT] Falha ao ler frase do cache")
	} else if ok {
		return cached
	}

	var got Phrase
	if err := s.generate(ctx, phrasePrompt, &got); err != nil {
		log.WithError(err).Warn("[INSIGHT] Falha ao gerar frase do dia, usando frase padrão")
		return FallbackPhrase
	}
	if got.Title == "" || got.Phrase == "" {
		log.Warn("[INSIGHT] Resposta sem título ou frase, usando frase padrão")
		return FallbackPhrase
	}

	if err := s.cache.Set(ctx, day, got); err != nil {
		log.WithError(err).Warn("[INSIGHT] Falha ao gravar frase no cache")
	}
	return got
}
