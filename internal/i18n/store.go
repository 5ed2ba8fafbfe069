// internal/i18n/store.go
package i18n

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store holds the active language for each visitor session. The fallback
// language is fixed at construction; explicit choices are kept in Redis so
// they survive restarts.
type Store struct {
	defaultLang Language
	redisClient *redis.Client
	ttl         time.Duration
}

// NewStore creates a language store backed by Redis. An invalid fallback
// silently becomes the package default (Arabic).
func NewStore(redisClient *redis.Client, ttl time.Duration, fallback Language) *Store {
	if !fallback.IsValid() {
		fallback = Default
	}
	return &Store{
		defaultLang: fallback,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func languageKey(sessionID string) string {
	return fmt.Sprintf("lang:session:%s", sessionID)
}

// SetLanguage records the language choice for a session.
func (s *Store) SetLanguage(ctx context.Context, sessionID string, lang Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language: %q", lang)
	}
	return s.redisClient.Set(ctx, languageKey(sessionID), string(lang), s.ttl).Err()
}

// Current returns the session's language, falling back to the default when
// the session never chose one or Redis is unreachable.
func (s *Store) Current(ctx context.Context, sessionID string) Language {
	value, err := s.redisClient.Get(ctx, languageKey(sessionID)).Result()
	if err != nil {
		return s.defaultLang
	}

	lang, err := Parse(value)
	if err != nil {
		return s.defaultLang
	}
	return lang
}

// DefaultLanguage returns the fallback for sessions without a choice.
func (s *Store) DefaultLanguage() Language {
	return s.defaultLang
}
