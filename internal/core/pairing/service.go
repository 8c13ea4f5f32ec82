package pairing

import (
	"context"
	"strings"
	"time"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// Generator issues one generation call against one named model.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Store caches resolved recommendation lists. Implementations must be safe
// for concurrent use; only the resolver reads or writes it.
type Store interface {
	Get(ctx context.Context, key string) ([]common.Recommendation, bool)
	Set(ctx context.Context, key string, items []common.Recommendation)
}

// Service resolves pairing recommendations: cache lookup, prompt
// construction, ordered model fallback, response parsing and
// classification.
type Service struct {
	config    *config.Config
	generator Generator
	store     Store
}

// NewService creates the recommendation resolver. store may be nil when
// caching is disabled.
func NewService(cfg *config.Config, generator Generator, store Store) *Service {
	return &Service{
		config:    cfg,
		generator: generator,
		store:     store,
	}
}

// CacheKey derives the cache key for a subject and direction. Subjects
// differing only in case or surrounding whitespace share an entry; the
// direction tag keeps the two pairing namespaces apart.
func CacheKey(subject string, direction Direction) string {
	return direction.Tag() + ":" + common.NormalizeSubject(subject)
}

// Recommend returns exactly 3 recommendations for the subject, a
// ValidationError when the model rejects the subject for this direction,
// or ErrAllModelsExhausted when every configured model failed.
//
// Policy (fixed here rather than per call site): every model-level failure
// (rate limit, transport error, unparseable body, bad shape) falls through
// to the next model in priority order. A validation error stops the chain
// immediately because it describes the subject, not the model. Validation
// errors are never cached.
func (s *Service) Recommend(ctx context.Context, subject string, direction Direction) ([]Recommendation, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, common.ErrInvalidSubject
	}
	if !direction.Valid() {
		return nil, common.ErrInvalidRequest
	}

	key := CacheKey(subject, direction)
	if s.store != nil {
		if items, ok := s.store.Get(ctx, key); ok {
			return items, nil
		}
	}

	prompt := BuildPrompt(subject, direction)

	var lastErr error
	for _, model := range s.config.Gemini.Models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		text, err := s.generator.GenerateText(ctx, model, prompt)
		common.LogModelCall(model, time.Since(start), err)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		items, validationErr, err := decodeRecommendations(text)
		if err != nil {
			common.LogWarn("model produced unusable response",
				zap.String("model", model),
				zap.String("key", key),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if validationErr != nil {
			common.LogInfo("subject rejected by model",
				zap.String("key", key),
				zap.String("message", validationErr.Message),
			)
			return nil, validationErr
		}

		if s.store != nil {
			s.store.Set(ctx, key, items)
		}
		common.LogInfo("recommendations resolved",
			zap.String("model", model),
			zap.String("key", key),
		)
		return items, nil
	}

	common.LogError("all models exhausted",
		zap.String("key", key),
		zap.Int("models_tried", len(s.config.Gemini.Models)),
		zap.Error(lastErr),
	)
	return nil, common.ErrAllModelsExhausted
}
