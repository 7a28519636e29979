package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wardacoder/COMPAIR/constant"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/clients/brave_search"
	"github.com/wardacoder/COMPAIR/pkg/clients/llm_model"
	"github.com/wardacoder/COMPAIR/pkg/prompt"
	"github.com/wardacoder/COMPAIR/repository/factory"
	"github.com/wardacoder/COMPAIR/service/cache"
	"github.com/wardacoder/COMPAIR/service/session"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// SearchClient 搜索协作方，任一条目拿不到结果按"没有佐证"处理
type SearchClient interface {
	SearchItems(ctx context.Context, items []string, category string) map[string]*brave_search.SearchData
}

// LLMClient 大模型协作方
type LLMClient interface {
	Available() bool
	PostChatCompletionsNonStreamContent(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

// Service 对比编排：校验、查缓存、搜索加大模型、落缓存、登记会话
type Service struct {
	cacheService   *cache.Service
	sessionService *session.Service
	searchClient   SearchClient
	llmClient      LLMClient
}

func NewService(repositoryFactory factory.Factory, sessionService *session.Service) *Service {
	return &Service{
		cacheService:   cache.NewService(repositoryFactory),
		sessionService: sessionService,
		searchClient:   brave_search.GetInstance(),
		llmClient:      llm_model.GetInstance(),
	}
}

// NewServiceWithClients 测试用，注入全部协作方
func NewServiceWithClients(cacheService *cache.Service, sessionService *session.Service, searchClient SearchClient, llmClient LLMClient) *Service {
	return &Service{
		cacheService:   cacheService,
		sessionService: sessionService,
		searchClient:   searchClient,
		llmClient:      llmClient,
	}
}

// Validate 按顺序做三条校验，第一条不过的返回提示文案。
// 校验不过走 200 加 message，不走错误通道。
func Validate(items []string) *model.RejectionResponse {
	if len(items) < constant.MinItemsToCompare {
		return &model.RejectionResponse{Message: constant.MsgTooFewItems}
	}

	for _, item := range items {
		if len(strings.TrimSpace(item)) < constant.MinItemLength {
			return &model.RejectionResponse{Message: constant.MsgItemsTooShort}
		}
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if _, ok := seen[key]; ok {
			return &model.RejectionResponse{Message: constant.MsgDuplicateItems}
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Compare 处理一次对比请求。三种出口：
// 结构化结果、拒绝提示（校验或模型判定）、错误。
func (s *Service) Compare(ctx context.Context, request *model.CompareRequest) (*model.ComparisonOutput, *model.RejectionResponse, *model.Error) {
	if rejection := Validate(request.Items); rejection != nil {
		log.Infof("comparison request rejected: %s", rejection.Message)
		return nil, rejection, nil
	}

	// 缓存命中直接返回，换个新 ID 并回填请求里的原始条目和类目
	cached, serviceErr := s.cacheService.Lookup(ctx, request.Category, request.Items, request.UserPreferences)
	if serviceErr != nil {
		return nil, nil, serviceErr
	}
	if cached != nil {
		cached.ComparisonID = uuid.NewString()
		cached.Items = request.Items
		cached.Category = request.Category
		return cached, nil, nil
	}

	if !s.llmClient.Available() {
		return nil, nil, model.NewError(model.ErrorLLMUnavailable, nil)
	}

	hasPreferences := request.UserPreferences.HasAny()
	preferencesText, _ := prompt.PreferencesText(request.UserPreferences)

	searchResults := s.searchClient.SearchItems(ctx, request.Items, request.Category)
	searchText := brave_search.FormatForPrompt(request.Items, searchResults)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt.ComparisonSystemPrompt(hasPreferences)},
		{Role: openai.ChatMessageRoleUser, Content: prompt.ComparisonUserPrompt(request.Category, request.Items, preferencesText, searchText)},
	}

	content, err := s.llmClient.PostChatCompletionsNonStreamContent(ctx, messages)
	if err != nil {
		return nil, nil, model.NewError(model.ErrorLLMUnavailable, err)
	}

	var result model.ComparisonOutput
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &result); err != nil {
		return nil, nil, model.NewError(model.ErrorLLMMalformed, fmt.Errorf("unmarshal llm response: %w", err))
	}

	// 模型层面的拒绝（类目不匹配、无意义输入）原样透传
	if result.Message != "" {
		log.Infof("comparison rejected by model: %s", result.Message)
		return nil, &model.RejectionResponse{Message: result.Message}, nil
	}

	// 没给偏好时强行抹掉赢家，防止模型自作主张
	if !hasPreferences {
		result.PersonalizedWinner = nil
		result.WinnerReason = nil
	}

	// 先落缓存再补元信息，缓存里存的是裸结果，命中时由命中路径重新补
	if serviceErr := s.cacheService.Store(ctx, request.Category, request.Items, request.UserPreferences, &result); serviceErr != nil {
		// 缓存写失败不影响本次结果
		log.Errorf("cache store error: %s", serviceErr.Message)
	}

	comparisonID := uuid.NewString()
	result.ComparisonID = comparisonID
	result.Items = request.Items
	result.Category = request.Category

	if serviceErr := s.sessionService.Register(ctx, &model.ConversationContext{
		ComparisonID:       comparisonID,
		OriginalComparison: &result,
		Items:              request.Items,
		Category:           request.Category,
	}); serviceErr != nil {
		log.Errorf("session register error: %s", serviceErr.Message)
	}

	log.Infof("comparison successful, id=%s category=%s", comparisonID, request.Category)
	return &result, nil, nil
}

// cleanJSONResponse 清理响应内容，移除 markdown 代码块标记
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
