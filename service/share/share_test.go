package share

import (
	"context"
	"testing"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository/memimplement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewServiceWithURLBase(memimplement.NewFactory(), "https://compair.com/shared/")
}

func shareRequest() *model.ShareComparisonRequest {
	return &model.ShareComparisonRequest{
		Category: "Gadgets",
		Items:    []string{"iPhone 15", "Samsung S24"},
		Result: map[string]interface{}{
			"introduction":  "Let's compare iPhone 15 and Samsung S24.",
			"comparison_id": "cmp-1",
		},
		UserID: "user-1",
	}
}

func TestShareAndGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	response, serviceErr := svc.Share(ctx, shareRequest())
	require.Nil(t, serviceErr)
	assert.Len(t, response.ShareID, 8)
	assert.Equal(t, "https://compair.com/shared/"+response.ShareID, response.ShareURL)
	assert.Equal(t, "Comparison shared successfully", response.Message)

	view, serviceErr := svc.Get(ctx, response.ShareID)
	require.Nil(t, serviceErr)
	assert.Equal(t, response.ShareID, view.ShareID)
	assert.Equal(t, "Gadgets", view.Category)
	assert.Equal(t, []string{"iPhone 15", "Samsung S24"}, view.Items)
	require.NotNil(t, view.UserID)
	assert.Equal(t, "user-1", *view.UserID)
	assert.Equal(t, int64(1), view.Views)
}

func TestGetIncrementsViews(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	response, serviceErr := svc.Share(ctx, shareRequest())
	require.Nil(t, serviceErr)

	for i := 0; i < 3; i++ {
		_, serviceErr = svc.Get(ctx, response.ShareID)
		require.Nil(t, serviceErr)
	}

	view, serviceErr := svc.Get(ctx, response.ShareID)
	require.Nil(t, serviceErr)
	assert.Equal(t, int64(4), view.Views)
}

func TestGetUnknownShareID(t *testing.T) {
	svc := newTestService()

	_, serviceErr := svc.Get(context.Background(), "deadbeef")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorShareNotFound, serviceErr.Code)
}

func TestShareWithoutUserID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	request := shareRequest()
	request.UserID = ""
	response, serviceErr := svc.Share(ctx, request)
	require.Nil(t, serviceErr)

	view, serviceErr := svc.Get(ctx, response.ShareID)
	require.Nil(t, serviceErr)
	assert.Nil(t, view.UserID)
}
