package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/tools"
	"github.com/wardacoder/COMPAIR/repository/factory"
	"github.com/wardacoder/COMPAIR/service/session"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Service 用户对比历史：保存、查询、删除。
// 保存时顺带维护 items 表的对比计数，并把活跃会话固化到 conversations 表。
type Service struct {
	repositoryFactory factory.Factory
	sessionService    *session.Service
}

func NewService(repositoryFactory factory.Factory, sessionService *session.Service) *Service {
	return &Service{
		repositoryFactory: repositoryFactory,
		sessionService:    sessionService,
	}
}

// Save 把对比结果存进用户历史。用户不存在时按请求里的 ID 建一个，
// 结果里带 comparison_id 且会话还活跃时把会话也固化下来。
func (s *Service) Save(ctx context.Context, request *model.SaveComparisonRequest) (*model.SaveComparisonResponse, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	userRepo, err := s.repositoryFactory.NewUserRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	comparisonRepo, err := s.repositoryFactory.NewComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}
	itemRepo, err := s.repositoryFactory.NewItemRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	now := time.Now().UTC()

	user, err := userRepo.Get(request.UserID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}
	if user == nil {
		if err := userRepo.Insert(&entity.User{
			ID:          request.UserID,
			Preferences: "{}",
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return nil, model.NewError(model.ErrorDB, err)
		}
	}

	itemsJSON, err := json.Marshal(request.Items)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}
	resultJSON, err := json.Marshal(request.Result)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}

	comparison := &entity.Comparison{
		ID:        uuid.NewString(),
		UserID:    request.UserID,
		Category:  request.Category,
		Items:     string(itemsJSON),
		Result:    string(resultJSON),
		CreatedAt: now,
	}
	if err := comparisonRepo.Insert(comparison); err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	// 维护条目的对比计数
	for _, itemName := range request.Items {
		item, err := itemRepo.GetByName(itemName)
		if err != nil {
			return nil, model.NewError(model.ErrorDB, err)
		}
		if item != nil {
			if err := itemRepo.IncrementComparisonCount(item.ID); err != nil {
				return nil, model.NewError(model.ErrorDB, err)
			}
			continue
		}
		if err := itemRepo.Insert(&entity.Item{
			ID:              uuid.NewString(),
			Name:            itemName,
			Category:        request.Category,
			ItemMetadata:    "{}",
			ComparisonCount: 1,
			CreatedAt:       now,
			UpdatedAt:       now,
		}); err != nil {
			return nil, model.NewError(model.ErrorDB, err)
		}
	}

	s.persistConversation(ctx, request)

	entry := &model.HistoryEntry{
		Timestamp: comparison.CreatedAt.Format(time.RFC3339),
		Category:  comparison.Category,
		Items:     request.Items,
		Result:    request.Result,
		ID:        comparison.ID,
	}
	log.Infof("comparison saved for user %s, id=%s", request.UserID, comparison.ID)
	return &model.SaveComparisonResponse{
		Message: "Comparison saved successfully",
		Entry:   entry,
	}, nil
}

// persistConversation 保存历史时把还在快层的会话固化到 conversations 表。
// 拿不到会话不算错，对比可能来自缓存命中或别的实例。
func (s *Service) persistConversation(ctx context.Context, request *model.SaveComparisonRequest) {
	comparisonID, ok := request.Result["comparison_id"].(string)
	if !ok || comparisonID == "" {
		return
	}

	conversation, serviceErr := s.sessionService.Resolve(ctx, comparisonID)
	if serviceErr != nil {
		return
	}
	if serviceErr := s.sessionService.Persist(ctx, conversation, request.UserID); serviceErr != nil {
		log.Errorf("persist conversation for comparison %s error: %s", comparisonID, serviceErr.Message)
	}
}

// List 查用户历史，默认按创建时间倒序
func (s *Service) List(ctx context.Context, condition *model.GetComparisonsCondition) (*model.HistoryResponse, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	comparisonRepo, err := s.repositoryFactory.NewComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	rows, err := comparisonRepo.List(condition)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	entries := make([]model.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := model.HistoryEntry{
			Timestamp: row.CreatedAt.Format(time.RFC3339),
			Category:  row.Category,
			ID:        row.ID,
		}
		if row.Items != "" {
			if err := json.Unmarshal([]byte(row.Items), &entry.Items); err != nil {
				return nil, model.NewError(model.ErrorInternal, err)
			}
		}
		if row.Result != "" {
			if err := json.Unmarshal([]byte(row.Result), &entry.Result); err != nil {
				return nil, model.NewError(model.ErrorInternal, err)
			}
		}
		entries = append(entries, entry)
	}

	return &model.HistoryResponse{
		UserID:  condition.UserID,
		History: entries,
	}, nil
}

// Delete 删除用户的一条历史，没删到返回 ErrorHistoryNotFound
func (s *Service) Delete(ctx context.Context, userID, comparisonID string) *model.Error {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	comparisonRepo, err := s.repositoryFactory.NewComparisonRepository(dbSession)
	if err != nil {
		return model.NewError(model.ErrorNewRepo, err)
	}

	deleted, err := comparisonRepo.Delete(userID, comparisonID)
	if err != nil {
		return model.NewError(model.ErrorDB, err)
	}
	if !deleted {
		return model.NewError(model.ErrorHistoryNotFound, nil)
	}
	log.Infof("history item %s deleted for user %s", comparisonID, userID)
	return nil
}
