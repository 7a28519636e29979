package compare

import (
	"context"
	"testing"

	"github.com/wardacoder/COMPAIR/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskFollowUpAfterCompare(t *testing.T) {
	llm := &fakeLLMClient{available: true, content: validLLMResponse}
	svc, _, _ := newTestService(llm)
	ctx := context.Background()

	result, _, serviceErr := svc.Compare(ctx, &model.CompareRequest{
		Category: "Gadgets",
		Items:    []string{"iPhone 15", "Samsung S24"},
	})
	require.Nil(t, serviceErr)

	llm.content = "Both cost $799, so price should not decide this one."
	response, serviceErr := svc.AskFollowUp(ctx, &model.FollowUpRequest{
		ComparisonID: result.ComparisonID,
		Question:     "Which is cheaper?",
	})
	require.Nil(t, serviceErr)
	assert.Equal(t, result.ComparisonID, response.ComparisonID)
	assert.Contains(t, response.Answer, "$799")
	assert.Equal(t, 2, response.ConversationHistory)

	// 追问的上下文带着原始对比结果
	assert.Equal(t, "Which is cheaper?", llm.lastUser)

	history, serviceErr := svc.FollowUpHistory(ctx, result.ComparisonID)
	require.Nil(t, serviceErr)
	require.Len(t, history.History, 2)
	assert.Equal(t, "user", history.History[0].Role)
	assert.Equal(t, "Which is cheaper?", history.History[0].Content)
	assert.Equal(t, "assistant", history.History[1].Role)
}

func TestAskFollowUpUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLMClient{available: true})

	_, serviceErr := svc.AskFollowUp(context.Background(), &model.FollowUpRequest{
		ComparisonID: "missing",
		Question:     "Which is cheaper?",
	})
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorComparisonNotFound, serviceErr.Code)
}

func TestAskFollowUpLLMUnavailable(t *testing.T) {
	llm := &fakeLLMClient{available: true, content: validLLMResponse}
	svc, _, _ := newTestService(llm)
	ctx := context.Background()

	result, _, serviceErr := svc.Compare(ctx, &model.CompareRequest{
		Category: "Gadgets",
		Items:    []string{"iPhone 15", "Samsung S24"},
	})
	require.Nil(t, serviceErr)

	llm.available = false
	_, serviceErr = svc.AskFollowUp(ctx, &model.FollowUpRequest{
		ComparisonID: result.ComparisonID,
		Question:     "Which is cheaper?",
	})
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorLLMUnavailable, serviceErr.Code)
}

func TestFollowUpHistoryUnknownComparison(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLMClient{available: true})

	_, serviceErr := svc.FollowUpHistory(context.Background(), "missing")
	require.NotNil(t, serviceErr)
	assert.Equal(t, model.ErrorHistoryNotFound, serviceErr.Code)
}
