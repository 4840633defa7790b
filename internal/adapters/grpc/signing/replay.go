package signing

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayKeyPrefix = "payroll:replay:"

// ReplayGuard は request id を一度だけ受け付けます。
type ReplayGuard interface {
	// Claim は requestID を初めて見た場合に true を返します。
	Claim(ctx context.Context, requestID string) (bool, error)
}

// RedisReplayGuard は Redis の SET NX で request id を記録します。
type RedisReplayGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisReplayGuard は RedisReplayGuard を生成します。ttl は request id を保持する期間です。
func NewRedisReplayGuard(client redis.Cmdable, ttl time.Duration) *RedisReplayGuard {
	return &RedisReplayGuard{client: client, ttl: ttl}
}

// Claim は requestID を記録し、既に記録済みなら false を返します。
func (g *RedisReplayGuard) Claim(ctx context.Context, requestID string) (bool, error) {
	claimed, err := g.client.SetNX(ctx, replayKeyPrefix+requestID, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("signing: claim request id: %w", err)
	}
	return claimed, nil
}
