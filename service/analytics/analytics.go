package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/pkg/tools"
	"github.com/wardacoder/COMPAIR/repository/factory"
)

const (
	// 热门分享统计窗口和条数
	trendingDays  = 7
	trendingLimit = 10
	// 热门条目条数
	popularItemsLimit = 10
	// 类目统计默认窗口（天）
	DefaultCategoryStatsDays = 30
)

// Service 只读统计：热门分享、热门条目、类目分布
type Service struct {
	repositoryFactory factory.Factory
}

func NewService(repositoryFactory factory.Factory) *Service {
	return &Service{repositoryFactory: repositoryFactory}
}

// Trending 最近 7 天的分享按浏览量倒序取前 10
func (s *Service) Trending(ctx context.Context) ([]model.TrendingEntry, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	sharedRepo, err := s.repositoryFactory.NewSharedComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	since := time.Now().UTC().AddDate(0, 0, -trendingDays)
	rows, err := sharedRepo.ListTrendingSince(since, trendingLimit)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	entries := make([]model.TrendingEntry, 0, len(rows))
	for _, row := range rows {
		entry := model.TrendingEntry{
			ShareID:   row.ShareID,
			Category:  row.Category,
			Views:     row.Views,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		}
		if row.Items != "" {
			if err := json.Unmarshal([]byte(row.Items), &entry.Items); err != nil {
				return nil, model.NewError(model.ErrorInternal, err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// PopularItems 被对比次数最多的前 10 个条目
func (s *Service) PopularItems(ctx context.Context) ([]model.PopularItem, *model.Error) {
	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	itemRepo, err := s.repositoryFactory.NewItemRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	rows, err := itemRepo.ListMostCompared(popularItemsLimit)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	items := make([]model.PopularItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.PopularItem{
			Name:            row.Name,
			Category:        row.Category,
			ComparisonCount: row.ComparisonCount,
		})
	}
	return items, nil
}

// CategoryStats 最近 days 天各类目的对比保存次数
func (s *Service) CategoryStats(ctx context.Context, days int) (*model.CategoryStatsResponse, *model.Error) {
	if days <= 0 {
		days = DefaultCategoryStatsDays
	}

	dbSession := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(dbSession.Close, "close session")

	comparisonRepo, err := s.repositoryFactory.NewComparisonRepository(dbSession)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := comparisonRepo.GroupCountByCategory(since)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	stats := make([]model.CategoryStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, *row)
	}
	return &model.CategoryStatsResponse{Stats: stats}, nil
}
