package analytics

import (
	"context"
	"testing"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository/memimplement"
	"github.com/wardacoder/COMPAIR/service/history"
	"github.com/wardacoder/COMPAIR/service/session"
	"github.com/wardacoder/COMPAIR/service/share"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() (*Service, *history.Service, *share.Service) {
	repositoryFactory := memimplement.NewFactory()
	sessionService := session.NewServiceWithStore(repositoryFactory, session.NewMemoryStore())
	return NewService(repositoryFactory),
		history.NewService(repositoryFactory, sessionService),
		share.NewServiceWithURLBase(repositoryFactory, "https://compair.com/shared/")
}

func TestTrendingOrderedByViews(t *testing.T) {
	analyticsService, _, shareService := newTestServices()
	ctx := context.Background()

	quiet, serviceErr := shareService.Share(ctx, &model.ShareComparisonRequest{
		Category: "Gadgets",
		Items:    []string{"iPhone 15", "Samsung S24"},
		Result:   map[string]interface{}{"introduction": "phones"},
	})
	require.Nil(t, serviceErr)

	popular, serviceErr := shareService.Share(ctx, &model.ShareComparisonRequest{
		Category: "Cars",
		Items:    []string{"Tesla Model 3", "BMW i4"},
		Result:   map[string]interface{}{"introduction": "cars"},
	})
	require.Nil(t, serviceErr)

	for i := 0; i < 3; i++ {
		_, serviceErr = shareService.Get(ctx, popular.ShareID)
		require.Nil(t, serviceErr)
	}

	trending, analyticsErr := analyticsService.Trending(ctx)
	require.Nil(t, analyticsErr)
	require.Len(t, trending, 2)
	assert.Equal(t, popular.ShareID, trending[0].ShareID)
	assert.Equal(t, int64(3), trending[0].Views)
	assert.Equal(t, quiet.ShareID, trending[1].ShareID)
}

func TestPopularItems(t *testing.T) {
	analyticsService, historyService, _ := newTestServices()
	ctx := context.Background()

	save := func(userID string, items []string) {
		_, serviceErr := historyService.Save(ctx, &model.SaveComparisonRequest{
			UserID:   userID,
			Category: "Gadgets",
			Items:    items,
			Result:   map[string]interface{}{"introduction": "x"},
		})
		require.Nil(t, serviceErr)
	}

	save("user-1", []string{"iPhone 15", "Samsung S24"})
	save("user-2", []string{"iPhone 15", "Pixel 9"})

	items, serviceErr := analyticsService.PopularItems(ctx)
	require.Nil(t, serviceErr)
	require.NotEmpty(t, items)
	assert.Equal(t, "iPhone 15", items[0].Name)
	assert.Equal(t, int64(2), items[0].ComparisonCount)
}

func TestCategoryStats(t *testing.T) {
	analyticsService, historyService, _ := newTestServices()
	ctx := context.Background()

	for _, category := range []string{"Gadgets", "Gadgets", "Cars"} {
		_, serviceErr := historyService.Save(ctx, &model.SaveComparisonRequest{
			UserID:   "user-1",
			Category: category,
			Items:    []string{"ab", "cd"},
			Result:   map[string]interface{}{"introduction": "x"},
		})
		require.Nil(t, serviceErr)
	}

	response, serviceErr := analyticsService.CategoryStats(ctx, 0)
	require.Nil(t, serviceErr)
	require.Len(t, response.Stats, 2)
	assert.Equal(t, "Gadgets", response.Stats[0].Category)
	assert.Equal(t, int64(2), response.Stats[0].Count)
}
