package usecase

import (
	"context"
	"time"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// キャッシュ（redis など）。見つからなければ ok=false
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// 注文イベントの送信先（kafka など）
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, payload any) error
}

// チェックアウト結果の記録（prometheus など）
type CheckoutRecorder interface {
	ObserveCheckout(result string)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noopCache) Del(context.Context, ...string) error { return nil }

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, string, any) error { return nil }

type noopRecorder struct{}

func (noopRecorder) ObserveCheckout(string) {}
