package compare

import (
	"context"
	"encoding/json"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/prompt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// AskFollowUp 基于已有对比回答追问，问答写进会话两层
func (s *Service) AskFollowUp(ctx context.Context, request *model.FollowUpRequest) (*model.FollowUpResponse, *model.Error) {
	conversation, serviceErr := s.sessionService.Resolve(ctx, request.ComparisonID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	if !s.llmClient.Available() {
		return nil, model.NewError(model.ErrorLLMUnavailable, nil)
	}

	comparisonJSON := "{}"
	if conversation.OriginalComparison != nil {
		data, err := json.MarshalIndent(conversation.OriginalComparison, "", "  ")
		if err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
		comparisonJSON = string(data)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt.FollowUpSystemPrompt(conversation.Items, conversation.Category, comparisonJSON)},
		{Role: openai.ChatMessageRoleUser, Content: request.Question},
	}

	answer, err := s.llmClient.PostChatCompletionsNonStreamContent(ctx, messages)
	if err != nil {
		return nil, model.NewError(model.ErrorLLMUnavailable, err)
	}

	count, serviceErr := s.sessionService.AppendExchange(ctx, request.ComparisonID, request.Question, answer)
	if serviceErr != nil {
		return nil, serviceErr
	}

	log.Infof("follow-up answered for comparison %s, history=%d", request.ComparisonID, count)
	return &model.FollowUpResponse{
		Answer:              answer,
		ComparisonID:        request.ComparisonID,
		ConversationHistory: count,
	}, nil
}

// FollowUpHistory 取某个对比的会话历史
func (s *Service) FollowUpHistory(ctx context.Context, comparisonID string) (*model.FollowUpHistoryResponse, *model.Error) {
	history, serviceErr := s.sessionService.History(ctx, comparisonID)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return &model.FollowUpHistoryResponse{
		ComparisonID: comparisonID,
		History:      history,
	}, nil
}
