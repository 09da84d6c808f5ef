package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type mockClient struct {
	mock.Mock
}

func newMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockClient {
	m := &mockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	return m.Called(ctx, key, value, expiration).Get(0).(*redis.StatusCmd)
}

func (m *mockClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return m.Called(ctx, key).Get(0).(*redis.StringCmd)
}

func (m *mockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return m.Called(ctx, keys).Get(0).(*redis.IntCmd)
}

func (m *mockClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return m.Called(ctx, cursor, match, count).Get(0).(*redis.ScanCmd)
}
