package share

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/constant"
	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/tools"
	"github.com/wardacoder/COMPAIR/repository/factory"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Service 对比结果分享：短 ID 建链、公开读取带浏览计数
type Service struct {
	repositoryFactory factory.Factory
	shareURLBase      string
}

func NewService(repositoryFactory factory.Factory) *Service {
	return &Service{
		repositoryFactory: repositoryFactory,
		shareURLBase:      config.GetInstance().GetStringOrDefault(config.ShareURLBase, constant.DefaultShareURLBase),
	}
}

// NewServiceWithURLBase 测试用，绕开配置单例
func NewServiceWithURLBase(repositoryFactory factory.Factory, shareURLBase string) *Service {
	return &Service{
		repositoryFactory: repositoryFactory,
		shareURLBase:      shareURLBase,
	}
}

// Share 创建分享链接，短 ID 取 uuid 前 8 位
func (s *Service) Share(ctx context.Context, request *model.ShareComparisonRequest) (*model.ShareResponse, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	sharedRepo, err := s.repositoryFactory.NewSharedComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	shareID := uuid.NewString()[:constant.ShareIDLength]
	comparisonID, _ := request.Result["comparison_id"].(string)

	itemsJSON, err := json.Marshal(request.Items)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}
	resultJSON, err := json.Marshal(request.Result)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}

	row := &entity.SharedComparison{
		ID:           uuid.NewString(),
		ShareID:      shareID,
		ComparisonID: comparisonID,
		UserID:       request.UserID,
		Category:     request.Category,
		Items:        string(itemsJSON),
		Result:       string(resultJSON),
		CreatedAt:    time.Now().UTC(),
	}
	if err := sharedRepo.Insert(row); err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	log.Infof("comparison shared, share_id=%s", shareID)
	return &model.ShareResponse{
		ShareURL: s.shareURLBase + shareID,
		ShareID:  shareID,
		Message:  "Comparison shared successfully",
	}, nil
}

// Get 公开读取分享并把浏览计数加一，返回视图里的计数是加一后的值
func (s *Service) Get(ctx context.Context, shareID string) (*model.SharedComparisonView, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	sharedRepo, err := s.repositoryFactory.NewSharedComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	row, err := sharedRepo.GetByShareID(shareID)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}
	if row == nil {
		return nil, model.NewError(model.ErrorShareNotFound, nil)
	}

	if err := sharedRepo.IncrementViews(shareID); err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	view := &model.SharedComparisonView{
		ShareID:   row.ShareID,
		Category:  row.Category,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
		Views:     row.Views + 1,
	}
	if row.UserID != "" {
		userID := row.UserID
		view.UserID = &userID
	}
	if row.Items != "" {
		if err := json.Unmarshal([]byte(row.Items), &view.Items); err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
	}
	if row.Result != "" {
		if err := json.Unmarshal([]byte(row.Result), &view.Result); err != nil {
			return nil, model.NewError(model.ErrorInternal, err)
		}
	}
	return view, nil
}

// SweepExpired 删除带过期时间且已过期的分享，返回删除条数
func (s *Service) SweepExpired(ctx context.Context) (int64, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	sharedRepo, err := s.repositoryFactory.NewSharedComparisonRepository(dbSession)
	if err != nil {
		return 0, model.NewError(model.ErrorNewRepo, err)
	}

	deleted, err := sharedRepo.DeleteExpired(time.Now().UTC())
	if err != nil {
		return 0, model.NewError(model.ErrorDB, err)
	}
	return deleted, nil
}
