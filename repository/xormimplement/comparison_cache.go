package xormimplement

import (
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type ComparisonCacheRepository struct {
	session *Session
}

func NewComparisonCacheRepository(session *Session) repository.ComparisonCacheRepository {
	return &ComparisonCacheRepository{session: session}
}

func (r *ComparisonCacheRepository) Insert(data *entity.ComparisonCache) error {
	if data == nil {
		return fmt.Errorf("comparison_cache data cannot be nil")
	}
	if data.Category == "" {
		return fmt.Errorf("comparison_cache category cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameComparisonCache).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert comparison_cache: %w", err)
	}

	return nil
}

func (r *ComparisonCacheRepository) ListByCategory(category string) ([]*entity.ComparisonCache, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}

	// created_at 升序保证重复键时命中最早的一条，跨后端行为一致
	var results []*entity.ComparisonCache
	err := r.session.Table(entity.TableNameComparisonCache).
		Where(builder.Eq{entity.ComparisonCacheFieldCategory: category}).
		OrderBy(entity.ComparisonCacheFieldCreatedAt + " ASC").
		Find(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparison_cache: %w", err)
	}

	return results, nil
}

func (r *ComparisonCacheRepository) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("comparison_cache id cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameComparisonCache).
		Where(builder.Eq{entity.ComparisonCacheFieldID: id}).
		Delete(&entity.ComparisonCache{})
	if err != nil {
		return fmt.Errorf("failed to delete comparison_cache: %w", err)
	}

	return nil
}

func (r *ComparisonCacheRepository) DeleteExpired(now time.Time) (int64, error) {
	affected, err := r.session.Table(entity.TableNameComparisonCache).
		Where(builder.Lt{entity.ComparisonCacheFieldExpiresAt: now}).
		Delete(&entity.ComparisonCache{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired comparison_cache: %w", err)
	}

	return affected, nil
}
