package session

import (
	"context"
	"testing"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository/memimplement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, Store, *memimplement.Factory) {
	repositoryFactory := memimplement.NewFactory()
	store := NewMemoryStore()
	return NewServiceWithStore(repositoryFactory, store), store, repositoryFactory
}

func sampleContext(comparisonID string) *model.ConversationContext {
	return &model.ConversationContext{
		ComparisonID: comparisonID,
		Category:     "Gadgets",
		Items:        []string{"iPhone 15", "Samsung S24"},
		OriginalComparison: &model.ComparisonOutput{
			Introduction: "Let's compare iPhone 15 and Samsung S24.",
		},
	}
}

func TestRegisterAndResolveFastTier(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.Nil(t, svc.Register(ctx, sampleContext("cmp-1")))

	conversation, serviceErr := svc.Resolve(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	assert.Equal(t, "Gadgets", conversation.Category)
	assert.Equal(t, []string{"iPhone 15", "Samsung S24"}, conversation.Items)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.Nil(t, svc.Register(ctx, sampleContext("cmp-1")))

	serviceErr := svc.Register(ctx, sampleContext("cmp-1"))
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorSessionExists, serviceErr.Code)
}

func TestResolveFallsBackToDurableWithoutWriteBack(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	require.Nil(t, svc.Persist(ctx, sampleContext("cmp-1"), "user-1"))

	conversation, serviceErr := svc.Resolve(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	assert.Equal(t, "Gadgets", conversation.Category)
	require.NotNil(t, conversation.OriginalComparison)
	assert.Equal(t, "Let's compare iPhone 15 and Samsung S24.", conversation.OriginalComparison.Introduction)

	// 持久层兜底不回写快层
	exists, err := store.Exists(ctx, "cmp-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestResolveUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService()

	_, serviceErr := svc.Resolve(context.Background(), "missing")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorComparisonNotFound, serviceErr.Code)
}

func TestPersistIsIdempotentPerComparison(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := sampleContext("cmp-1")
	require.Nil(t, svc.Persist(ctx, first, "user-1"))

	second := sampleContext("cmp-1")
	second.Category = "Cars"
	require.Nil(t, svc.Persist(ctx, second, "user-1"))

	conversation, serviceErr := svc.Resolve(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	assert.Equal(t, "Gadgets", conversation.Category)
}

func TestAppendExchangeFastTierOnly(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.Nil(t, svc.Register(ctx, sampleContext("cmp-1")))

	count, serviceErr := svc.AppendExchange(ctx, "cmp-1", "Which is cheaper?", "Both cost $799.")
	require.Nil(t, serviceErr)
	assert.Equal(t, 2, count)

	history, serviceErr := svc.History(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
	assert.NotEmpty(t, history[0].Timestamp)
}

func TestAppendExchangeWritesDurableTier(t *testing.T) {
	svc, _, repositoryFactory := newTestService()
	ctx := context.Background()

	require.Nil(t, svc.Register(ctx, sampleContext("cmp-1")))
	require.Nil(t, svc.Persist(ctx, sampleContext("cmp-1"), "user-1"))

	_, serviceErr := svc.AppendExchange(ctx, "cmp-1", "Which is cheaper?", "Both cost $799.")
	require.Nil(t, serviceErr)

	// 换一个空快层的服务实例，消息要能从持久层读回来
	rebooted := NewServiceWithStore(repositoryFactory, NewMemoryStore())
	history, serviceErr := rebooted.History(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	require.Len(t, history, 2)
	assert.Equal(t, "Which is cheaper?", history[0].Content)
}

func TestAppendExchangeUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService()

	_, serviceErr := svc.AppendExchange(context.Background(), "missing", "q", "a")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorComparisonNotFound, serviceErr.Code)
}

func TestHistoryUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService()

	_, serviceErr := svc.History(context.Background(), "missing")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorHistoryNotFound, serviceErr.Code)
}
