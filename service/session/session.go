package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/clients/redis"
	"github.com/wardacoder/COMPAIR/pkg/tools"
	"github.com/wardacoder/COMPAIR/repository/factory"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const storeTypeRedis = "redis"

// Service 两层会话解析：快层（memory 或 redis）存活跃会话，
// conversations 表做持久兜底。快层未命中回落到持久层时不回写快层。
type Service struct {
	store             Store
	repositoryFactory factory.Factory
}

func NewService(repositoryFactory factory.Factory) *Service {
	var store Store
	if config.GetInstance().GetStringOrDefault(config.SessionStoreType, "memory") == storeTypeRedis {
		store = NewRedisStore(redis.GetInstance().GetClient())
		log.Info("session fast tier: redis")
	} else {
		store = NewMemoryStore()
		log.Info("session fast tier: memory")
	}
	return &Service{
		store:             store,
		repositoryFactory: repositoryFactory,
	}
}

// NewServiceWithStore 测试用，显式注入快层
func NewServiceWithStore(repositoryFactory factory.Factory, store Store) *Service {
	return &Service{
		store:             store,
		repositoryFactory: repositoryFactory,
	}
}

// Register 对比完成后把会话登记进快层。重复登记同一个对比 ID 是调用方的 bug。
func (s *Service) Register(ctx context.Context, conversation *model.ConversationContext) *model.Error {
	exists, err := s.store.Exists(ctx, conversation.ComparisonID)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}
	if exists {
		return model.NewError(model.ErrorSessionExists, fmt.Errorf("session for comparison %s already registered", conversation.ComparisonID))
	}

	if err := s.store.Set(ctx, conversation.ComparisonID, conversation); err != nil {
		return model.NewError(model.ErrorInternal, err)
	}
	return nil
}

// Resolve 按对比 ID 取会话上下文：先查快层，再落到 conversations 表。
// 两层都没有返回 ErrorComparisonNotFound。
func (s *Service) Resolve(ctx context.Context, comparisonID string) (*model.ConversationContext, *model.Error) {
	conversation, err := s.store.Get(ctx, comparisonID)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}
	if conversation != nil {
		return conversation, nil
	}

	conversation, serviceErr := s.resolveDurable(ctx, comparisonID)
	if serviceErr != nil {
		return nil, serviceErr
	}
	if conversation == nil {
		return nil, model.NewError(model.ErrorComparisonNotFound, nil)
	}
	return conversation, nil
}

// resolveDurable 从 conversations 表恢复会话视图，不存在返回 (nil, nil)
func (s *Service) resolveDurable(ctx context.Context, comparisonID string) (*model.ConversationContext, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	conversationRepo, err := s.repositoryFactory.NewConversationRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	row, err := conversationRepo.GetByComparisonID(comparisonID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}
	if row == nil {
		return nil, nil
	}

	conversation := &model.ConversationContext{
		ComparisonID: row.ComparisonID,
		Category:     row.Category,
	}
	if row.Items != "" {
		if err := json.Unmarshal([]byte(row.Items), &conversation.Items); err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
	}
	if row.Messages != "" {
		if err := json.Unmarshal([]byte(row.Messages), &conversation.Messages); err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
	}
	if row.OriginalComparison != "" {
		conversation.OriginalComparison = &model.ComparisonOutput{}
		if err := json.Unmarshal([]byte(row.OriginalComparison), conversation.OriginalComparison); err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
	}
	return conversation, nil
}

// Persist 把会话写进 conversations 表（保存对比时调用）。
// 已有同对比 ID 的行则跳过，保持首次保存的上下文。
func (s *Service) Persist(ctx context.Context, conversation *model.ConversationContext, userID string) *model.Error {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	conversationRepo, err := s.repositoryFactory.NewConversationRepository(dbSession)
	if err != nil {
		return model.NewError(model.ErrorNewRepo, err)
	}

	existing, err := conversationRepo.GetByComparisonID(conversation.ComparisonID)
	if err != nil {
		return model.NewError(model.ErrorDB, err)
	}
	if existing != nil {
		return nil
	}

	itemsJSON, err := json.Marshal(conversation.Items)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}
	messages := conversation.Messages
	if messages == nil {
		messages = []model.ConversationMessage{}
	}
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}
	originalJSON := "{}"
	if conversation.OriginalComparison != nil {
		data, err := json.Marshal(conversation.OriginalComparison)
		if err != nil {
			return model.NewError(model.ErrorInternal, err)
		}
		originalJSON = string(data)
	}

	now := time.Now().UTC()
	row := &entity.Conversation{
		ID:                 uuid.NewString(),
		ComparisonID:       conversation.ComparisonID,
		UserID:             userID,
		Messages:           string(messagesJSON),
		OriginalComparison: originalJSON,
		Items:              string(itemsJSON),
		Category:           conversation.Category,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := conversationRepo.Insert(row); err != nil {
		return model.NewError(model.ErrorDB, err)
	}
	return nil
}

// AppendExchange 追问后把一问一答写进两层。持久层没有会话行时只写快层，
// 两层都没有这个对比 ID 时返回 ErrorComparisonNotFound。返回追加后的会话消息条数。
func (s *Service) AppendExchange(ctx context.Context, comparisonID, question, answer string) (int, *model.Error) {
	now := time.Now().UTC().Format(time.RFC3339)
	exchange := []model.ConversationMessage{
		{Role: "user", Content: question, Timestamp: now},
		{Role: "assistant", Content: answer, Timestamp: now},
	}

	durableCount, inDurable, serviceErr := s.appendDurable(ctx, comparisonID, exchange)
	if serviceErr != nil {
		return 0, serviceErr
	}

	inFastTier, err := s.store.AppendMessages(ctx, comparisonID, exchange...)
	if err != nil {
		return 0, model.NewError(model.ErrorInternal, err)
	}

	if !inFastTier && !inDurable {
		return 0, model.NewError(model.ErrorComparisonNotFound, nil)
	}

	if inFastTier {
		conversation, err := s.store.Get(ctx, comparisonID)
		if err != nil {
			return 0, model.NewError(model.ErrorInternal, err)
		}
		if conversation != nil {
			return len(conversation.Messages), nil
		}
	}
	return durableCount, nil
}

// appendDurable 把消息追加进 conversations 表，返回追加后的条数和是否存在会话行
func (s *Service) appendDurable(ctx context.Context, comparisonID string, exchange []model.ConversationMessage) (int, bool, *model.Error) {
	conversation, serviceErr := s.resolveDurable(ctx, comparisonID)
	if serviceErr != nil {
		return 0, false, serviceErr
	}
	if conversation == nil {
		// 还没保存过对比，会话只活在快层
		return 0, false, nil
	}

	messages := append(conversation.Messages, exchange...)
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return 0, false, model.NewError(model.ErrorInternal, err)
	}

	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	conversationRepo, err := s.repositoryFactory.NewConversationRepository(dbSession)
	if err != nil {
		return 0, false, model.NewError(model.ErrorNewRepo, err)
	}
	if _, err := conversationRepo.UpdateMessages(comparisonID, string(messagesJSON), time.Now().UTC()); err != nil {
		return 0, false, model.NewError(model.ErrorDB, err)
	}
	return len(messages), true, nil
}

// History 取会话历史，快层优先，两层都没有返回 ErrorComparisonNotFound
func (s *Service) History(ctx context.Context, comparisonID string) ([]model.ConversationMessage, *model.Error) {
	conversation, serviceErr := s.Resolve(ctx, comparisonID)
	if serviceErr != nil {
		if serviceErr.Code == model.ErrorComparisonNotFound {
			return nil, model.NewError(model.ErrorHistoryNotFound, nil)
		}
		return nil, serviceErr
	}
	if conversation.Messages == nil {
		return []model.ConversationMessage{}, nil
	}
	return conversation.Messages, nil
}
