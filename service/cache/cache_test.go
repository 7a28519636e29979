package cache

import (
	"context"
	"testing"
	"time"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository/memimplement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) (*Service, *memimplement.Factory) {
	repositoryFactory := memimplement.NewFactory()
	return NewServiceWithTTL(repositoryFactory, ttl), repositoryFactory
}

func sampleResult() *model.ComparisonOutput {
	return &model.ComparisonOutput{
		Introduction:   "Let's compare iPhone 15 and Samsung S24.",
		Pros:           []string{"iPhone 15: Ecosystem", "Samsung S24: Display"},
		Cons:           []string{"iPhone 15: Price", "Samsung S24: Bloatware"},
		Recommendation: "Both are solid choices.",
	}
}

func TestStoreAndLookupHit(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	ctx := context.Background()

	err := svc.Store(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil, sampleResult())
	require.Nil(t, err)

	got, lookupErr := svc.Lookup(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil)
	require.Nil(t, lookupErr)
	require.NotNil(t, got)
	assert.Equal(t, "Let's compare iPhone 15 and Samsung S24.", got.Introduction)
}

func TestLookupIgnoresCaseWhitespaceAndOrder(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	ctx := context.Background()

	err := svc.Store(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil, sampleResult())
	require.Nil(t, err)

	got, lookupErr := svc.Lookup(ctx, "Gadgets", []string{"  samsung s24 ", "IPHONE 15"}, nil)
	require.Nil(t, lookupErr)
	assert.NotNil(t, got)
}

func TestLookupMissOnDifferentCategory(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	ctx := context.Background()

	err := svc.Store(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil, sampleResult())
	require.Nil(t, err)

	got, lookupErr := svc.Lookup(ctx, "Cars", []string{"iPhone 15", "Samsung S24"}, nil)
	require.Nil(t, lookupErr)
	assert.Nil(t, got)
}

func TestLookupMissOnDifferentPreferences(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	ctx := context.Background()

	prefs := &model.UserPreferences{Priorities: []string{"camera"}}
	err := svc.Store(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, prefs, sampleResult())
	require.Nil(t, err)

	// 无偏好查不到带偏好的缓存，反之亦然
	got, lookupErr := svc.Lookup(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil)
	require.Nil(t, lookupErr)
	assert.Nil(t, got)

	got, lookupErr = svc.Lookup(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, prefs)
	require.Nil(t, lookupErr)
	assert.NotNil(t, got)
}

func TestLookupDeletesExpiredRow(t *testing.T) {
	svc, repositoryFactory := newTestService(-time.Hour) // 负 TTL，写入即过期
	ctx := context.Background()

	err := svc.Store(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil, sampleResult())
	require.Nil(t, err)

	got, lookupErr := svc.Lookup(ctx, "Gadgets", []string{"iPhone 15", "Samsung S24"}, nil)
	require.Nil(t, lookupErr)
	assert.Nil(t, got)

	// 惰性删除已经清掉了过期行
	cacheRepo, repoErr := repositoryFactory.NewComparisonCacheRepository(repositoryFactory.NewSession(ctx))
	require.NoError(t, repoErr)
	rows, repoErr := cacheRepo.ListByCategory("Gadgets")
	require.NoError(t, repoErr)
	assert.Empty(t, rows)
}

func TestSweepExpired(t *testing.T) {
	expired, repositoryFactory := newTestService(-time.Hour)
	ctx := context.Background()

	require.Nil(t, expired.Store(ctx, "Gadgets", []string{"a1", "b2"}, nil, sampleResult()))
	require.Nil(t, expired.Store(ctx, "Cars", []string{"c3", "d4"}, nil, sampleResult()))

	alive := NewServiceWithTTL(repositoryFactory, time.Hour)
	require.Nil(t, alive.Store(ctx, "Gadgets", []string{"e5", "f6"}, nil, sampleResult()))

	deleted, sweepErr := alive.SweepExpired(ctx)
	require.Nil(t, sweepErr)
	assert.Equal(t, int64(2), deleted)

	got, lookupErr := alive.Lookup(ctx, "Gadgets", []string{"e5", "f6"}, nil)
	require.Nil(t, lookupErr)
	assert.NotNil(t, got)
}

func TestLookupPicksOldestMatch(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	ctx := context.Background()

	first := sampleResult()
	first.Introduction = "first"
	require.Nil(t, svc.Store(ctx, "Gadgets", []string{"x", "y"}, nil, first))

	second := sampleResult()
	second.Introduction = "second"
	require.Nil(t, svc.Store(ctx, "Gadgets", []string{"x", "y"}, nil, second))

	got, lookupErr := svc.Lookup(ctx, "Gadgets", []string{"x", "y"}, nil)
	require.Nil(t, lookupErr)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Introduction)
}

func TestExpiredBoundary(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.False(t, expired(nil, now))
	assert.False(t, expired(&future, now))
	// 到点即过期，恰好等于当前时刻的行也按过期处理
	assert.True(t, expired(&now, now))
	assert.True(t, expired(&past, now))
}
