package history

import (
	"context"
	"testing"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository/memimplement"
	"github.com/wardacoder/COMPAIR/service/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *session.Service, *memimplement.Factory) {
	repositoryFactory := memimplement.NewFactory()
	sessionService := session.NewServiceWithStore(repositoryFactory, session.NewMemoryStore())
	return NewService(repositoryFactory, sessionService), sessionService, repositoryFactory
}

func saveRequest(userID string) *model.SaveComparisonRequest {
	return &model.SaveComparisonRequest{
		UserID:   userID,
		Category: "Gadgets",
		Items:    []string{"iPhone 15", "Samsung S24"},
		Result: map[string]interface{}{
			"introduction":  "Let's compare iPhone 15 and Samsung S24.",
			"comparison_id": "cmp-1",
		},
	}
}

func TestSaveAndList(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	response, serviceErr := svc.Save(ctx, saveRequest("user-1"))
	require.Nil(t, serviceErr)
	assert.Equal(t, "Comparison saved successfully", response.Message)
	require.NotNil(t, response.Entry)
	assert.NotEmpty(t, response.Entry.ID)
	assert.NotEmpty(t, response.Entry.Timestamp)

	history, serviceErr := svc.List(ctx, &model.GetComparisonsCondition{UserID: "user-1"})
	require.Nil(t, serviceErr)
	assert.Equal(t, "user-1", history.UserID)
	require.Len(t, history.History, 1)
	assert.Equal(t, []string{"iPhone 15", "Samsung S24"}, history.History[0].Items)
	assert.Equal(t, "Gadgets", history.History[0].Category)
}

func TestListFiltersByCategory(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.Nil(t, err(svc.Save(ctx, saveRequest("user-1"))))

	carsRequest := saveRequest("user-1")
	carsRequest.Category = "Cars"
	carsRequest.Items = []string{"Tesla Model 3", "BMW i4"}
	require.Nil(t, err(svc.Save(ctx, carsRequest)))

	category := "Cars"
	history, serviceErr := svc.List(ctx, &model.GetComparisonsCondition{UserID: "user-1", Category: &category})
	require.Nil(t, serviceErr)
	require.Len(t, history.History, 1)
	assert.Equal(t, "Cars", history.History[0].Category)
}

func TestSaveIncrementsItemCounts(t *testing.T) {
	svc, _, repositoryFactory := newTestService()
	ctx := context.Background()

	require.Nil(t, err(svc.Save(ctx, saveRequest("user-1"))))
	require.Nil(t, err(svc.Save(ctx, saveRequest("user-2"))))

	itemRepo, repoErr := repositoryFactory.NewItemRepository(repositoryFactory.NewSession(ctx))
	require.NoError(t, repoErr)
	item, repoErr := itemRepo.GetByName("iPhone 15")
	require.NoError(t, repoErr)
	require.NotNil(t, item)
	assert.Equal(t, int64(2), item.ComparisonCount)
}

func TestSavePersistsActiveConversation(t *testing.T) {
	svc, sessionService, repositoryFactory := newTestService()
	ctx := context.Background()

	require.Nil(t, sessionService.Register(ctx, &model.ConversationContext{
		ComparisonID: "cmp-1",
		Category:     "Gadgets",
		Items:        []string{"iPhone 15", "Samsung S24"},
	}))

	require.Nil(t, err(svc.Save(ctx, saveRequest("user-1"))))

	// 保存后重启（空快层）也能从持久层解析会话
	rebooted := session.NewServiceWithStore(repositoryFactory, session.NewMemoryStore())
	conversation, serviceErr := rebooted.Resolve(ctx, "cmp-1")
	require.Nil(t, serviceErr)
	assert.Equal(t, "Gadgets", conversation.Category)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	response, serviceErr := svc.Save(ctx, saveRequest("user-1"))
	require.Nil(t, serviceErr)

	require.Nil(t, svc.Delete(ctx, "user-1", response.Entry.ID))

	history, serviceErr := svc.List(ctx, &model.GetComparisonsCondition{UserID: "user-1"})
	require.Nil(t, serviceErr)
	assert.Empty(t, history.History)
}

func TestDeleteUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService()

	serviceErr := svc.Delete(context.Background(), "user-1", "missing")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorHistoryNotFound, serviceErr.Code)
}

func TestDeleteOtherUsersComparison(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	response, serviceErr := svc.Save(ctx, saveRequest("user-1"))
	require.Nil(t, serviceErr)

	serviceErr = svc.Delete(ctx, "user-2", response.Entry.ID)
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorHistoryNotFound, serviceErr.Code)
}

// err 只取返回值里的错误部分，让断言写起来短一点
func err(_ *model.SaveComparisonResponse, serviceErr *model.Error) *model.Error {
	return serviceErr
}
