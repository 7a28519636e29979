package cache

import (
	"context"
	"encoding/json"
	"fmt"
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

// Service 对比结果缓存。键为 (类目, 归一化条目, 偏好)，
// 过期采用读时惰性删除加后台定时清扫两条路径。
type Service struct {
	repositoryFactory factory.Factory
	ttl               time.Duration
}

func NewService(repositoryFactory factory.Factory) *Service {
	ttlHours := config.GetInstance().GetIntOrDefault(config.CacheTTLHours, constant.DefaultCacheTTLHours)
	return &Service{
		repositoryFactory: repositoryFactory,
		ttl:               time.Duration(ttlHours) * time.Hour,
	}
}

// NewServiceWithTTL 测试用，绕开配置单例
func NewServiceWithTTL(repositoryFactory factory.Factory, ttl time.Duration) *Service {
	return &Service{
		repositoryFactory: repositoryFactory,
		ttl:               ttl,
	}
}

// Lookup 查缓存。未命中返回 (nil, nil)；命中但已过期的行当场删掉，按未命中处理。
// 同一类目按 created_at 升序扫描，第一条结构化匹配的行生效。
func (s *Service) Lookup(ctx context.Context, category string, items []string, preferences *model.UserPreferences) (*model.ComparisonOutput, *model.Error) {
	session := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(session.Close, "close session")

	cacheRepo, err := s.repositoryFactory.NewComparisonCacheRepository(session)
	if err != nil {
		return nil, model.NewError(model.ErrorNewRepo, err)
	}

	normalizedItems := NormalizeItems(items)
	prefsKey, err := PreferencesKey(preferences)
	if err != nil {
		return nil, model.NewError(model.ErrorInternal, err)
	}

	rows, err := cacheRepo.ListByCategory(category)
	if err != nil {
		return nil, model.NewError(model.ErrorDB, err)
	}

	for _, row := range rows {
		var rowItems []string
		if err := json.Unmarshal([]byte(row.Items), &rowItems); err != nil {
			log.Warnf("cache row %s has malformed items json, skipping: %v", row.ID, err)
			continue
		}
		if !sameItems(NormalizeItems(rowItems), normalizedItems) {
			continue
		}

		rowPrefsKey, err := canonicalizeStoredPreferences(row.UserPreferences)
		if err != nil {
			log.Warnf("cache row %s has malformed preferences json, skipping: %v", row.ID, err)
			continue
		}
		if rowPrefsKey != prefsKey {
			continue
		}

		// 惰性过期：命中行已过期就删掉并按未命中处理
		if expired(row.ExpiresAt, time.Now().UTC()) {
			if err := cacheRepo.Delete(row.ID); err != nil {
				log.Errorf("delete expired cache row %s error: %v", row.ID, err)
			}
			return nil, nil
		}

		var result model.ComparisonOutput
		if err := json.Unmarshal([]byte(row.Result), &result); err != nil {
			return nil, model.NewError(model.ErrorInternal, fmt.Errorf("cache row %s result unmarshal: %w", row.ID, err))
		}

		log.Infof("cache hit for category=%s items=%v", category, normalizedItems)
		return &result, nil
	}

	return nil, nil
}

// expired 有效期定义为 now < expiresAt，到点即过期；expiresAt 为 nil 表示永不过期
func expired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && !expiresAt.After(now)
}

// Store 写入缓存，条目按归一化形式落库，过期时间为写入时刻加 TTL
func (s *Service) Store(ctx context.Context, category string, items []string, preferences *model.UserPreferences, result *model.ComparisonOutput) *model.Error {
	session := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(session.Close, "close session")

	cacheRepo, err := s.repositoryFactory.NewComparisonCacheRepository(session)
	if err != nil {
		return model.NewError(model.ErrorNewRepo, err)
	}

	normalizedItems := NormalizeItems(items)
	itemsJSON, err := json.Marshal(normalizedItems)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}

	prefsKey, err := PreferencesKey(preferences)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return model.NewError(model.ErrorInternal, err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	row := &entity.ComparisonCache{
		ID:              uuid.NewString(),
		Category:        category,
		Items:           string(itemsJSON),
		UserPreferences: prefsKey,
		Result:          string(resultJSON),
		CreatedAt:       now,
		ExpiresAt:       &expiresAt,
	}

	if err := cacheRepo.Insert(row); err != nil {
		return model.NewError(model.ErrorDB, err)
	}

	log.Infof("cached comparison for category=%s items=%v ttl=%s", category, normalizedItems, s.ttl)
	return nil
}

// SweepExpired 批量删除过期缓存行，返回删除条数
func (s *Service) SweepExpired(ctx context.Context) (int64, *model.Error) {
	session := s.repositoryFactory.NewSession(ctx)
	defer tools.ErrorWithPrintContext(session.Close, "close session")

	cacheRepo, err := s.repositoryFactory.NewComparisonCacheRepository(session)
	if err != nil {
		return 0, model.NewError(model.ErrorNewRepo, err)
	}

	deleted, err := cacheRepo.DeleteExpired(time.Now().UTC())
	if err != nil {
		return 0, model.NewError(model.ErrorDB, err)
	}
	return deleted, nil
}

// StartSweeper 启动后台清扫协程，ctx 取消时退出
func (s *Service) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("cache sweeper stopped")
				return
			case <-ticker.C:
				deleted, serviceErr := s.SweepExpired(ctx)
				if serviceErr != nil {
					log.Errorf("cache sweep error: %v", serviceErr.Message)
					continue
				}
				if deleted > 0 {
					log.Infof("cache sweep removed %d expired entries", deleted)
				}
			}
		}
	}()
}
