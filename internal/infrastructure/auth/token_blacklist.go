package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/nivas/backend/internal/infrastructure/config"
)

// TokenBlacklist invalidates session tokens before they expire (logout,
// admin password reset).
type TokenBlacklist interface {
	// AddToBlacklist adds a token's JTI to the blacklist; ttl should be
	// the remaining time until the token expires.
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error

	// IsBlacklisted checks if a token's JTI is in the blacklist
	IsBlacklisted(ctx context.Context, jti string) (bool, error)

	// InvalidateAccountTokens rejects every token for an account issued
	// before now. Used when the developer resets an admin password.
	InvalidateAccountTokens(ctx context.Context, accountID string, ttl time.Duration) error

	// IsAccountTokenInvalidated checks whether a token issued at the given
	// time has been swept by an account-wide invalidation.
	IsAccountTokenInvalidated(ctx context.Context, accountID string, tokenIssuedAt time.Time) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist using Redis
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist creates a Redis-backed token blacklist
func NewRedisTokenBlacklist(cfg config.RedisConfig) (*RedisTokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for token blacklist: %w", err)
	}

	return NewRedisTokenBlacklistWithClient(client), nil
}

// NewRedisTokenBlacklistWithClient creates a token blacklist with an existing Redis client
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "token:blacklist:",
	}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

func (b *RedisTokenBlacklist) accountKey(accountID string) string {
	return b.keyPrefix + "account:" + accountID
}

// AddToBlacklist adds a token's JTI to the blacklist
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted checks if a token's JTI is in the blacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}

// InvalidateAccountTokens stores the current timestamp; tokens issued
// before it are rejected.
func (b *RedisTokenBlacklist) InvalidateAccountTokens(ctx context.Context, accountID string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.accountKey(accountID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to invalidate account tokens: %w", err)
	}
	return nil
}

// IsAccountTokenInvalidated checks whether a token predates an account-wide sweep
func (b *RedisTokenBlacklist) IsAccountTokenInvalidated(ctx context.Context, accountID string, tokenIssuedAt time.Time) (bool, error) {
	value, err := b.client.Get(ctx, b.accountKey(accountID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check account token invalidation: %w", err)
	}

	var invalidationTime int64
	if _, err := fmt.Sscanf(value, "%d", &invalidationTime); err != nil {
		return false, fmt.Errorf("failed to parse invalidation timestamp: %w", err)
	}

	return tokenIssuedAt.Unix() <= invalidationTime, nil
}

// Close closes the Redis client
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist is a single-process implementation for tests
type InMemoryTokenBlacklist struct {
	mu                sync.RWMutex
	jtiBlacklist      map[string]time.Time // JTI -> expiration time
	accountSweepTimes map[string]time.Time // accountID -> invalidation time
}

// NewInMemoryTokenBlacklist creates a new in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtiBlacklist:      make(map[string]time.Time),
		accountSweepTimes: make(map[string]time.Time),
	}
}

// AddToBlacklist adds a token's JTI to the in-memory blacklist
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtiBlacklist[jti] = time.Now().Add(ttl)
	return nil
}

// IsBlacklisted checks if a token's JTI is blacklisted and not yet expired
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiration, exists := b.jtiBlacklist[jti]
	if !exists {
		return false, nil
	}
	if time.Now().After(expiration) {
		delete(b.jtiBlacklist, jti)
		return false, nil
	}
	return true, nil
}

// InvalidateAccountTokens invalidates all tokens for an account
func (b *InMemoryTokenBlacklist) InvalidateAccountTokens(_ context.Context, accountID string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accountSweepTimes[accountID] = time.Now()
	return nil
}

// IsAccountTokenInvalidated checks whether a token predates an account-wide sweep
func (b *InMemoryTokenBlacklist) IsAccountTokenInvalidated(_ context.Context, accountID string, tokenIssuedAt time.Time) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sweepTime, exists := b.accountSweepTimes[accountID]
	if !exists {
		return false, nil
	}
	// UnixNano for sub-second precision in tests
	return tokenIssuedAt.UnixNano() <= sweepTime.UnixNano(), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
