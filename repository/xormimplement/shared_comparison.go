package xormimplement

import (
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type SharedComparisonRepository struct {
	session *Session
}

func NewSharedComparisonRepository(session *Session) repository.SharedComparisonRepository {
	return &SharedComparisonRepository{session: session}
}

func (r *SharedComparisonRepository) Insert(data *entity.SharedComparison) error {
	if data == nil {
		return fmt.Errorf("shared_comparison data cannot be nil")
	}
	if data.ShareID == "" {
		return fmt.Errorf("share_id cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameSharedComparisons).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert shared_comparison: %w", err)
	}

	return nil
}

func (r *SharedComparisonRepository) GetByShareID(shareID string) (*entity.SharedComparison, error) {
	if shareID == "" {
		return nil, fmt.Errorf("share_id cannot be empty")
	}

	result := &entity.SharedComparison{}
	ok, err := r.session.Table(entity.TableNameSharedComparisons).
		Where(builder.Eq{entity.SharedComparisonsFieldShareID: shareID}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared_comparison: %w", err)
	}

	if !ok {
		return nil, nil
	}

	// 过期的分享按不存在处理
	if result.ExpiresAt != nil && result.ExpiresAt.Before(time.Now().UTC()) {
		return nil, nil
	}

	return result, nil
}

func (r *SharedComparisonRepository) IncrementViews(shareID string) error {
	if shareID == "" {
		return fmt.Errorf("share_id cannot be empty")
	}

	sql := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = $1",
		entity.TableNameSharedComparisons,
		entity.SharedComparisonsFieldViews, entity.SharedComparisonsFieldViews,
		entity.SharedComparisonsFieldShareID)

	if _, err := r.session.Exec(sql, shareID); err != nil {
		return fmt.Errorf("failed to increment shared_comparison views: %w", err)
	}

	return nil
}

func (r *SharedComparisonRepository) ListTrendingSince(since time.Time, limit int) ([]*entity.SharedComparison, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []*entity.SharedComparison
	err := r.session.Table(entity.TableNameSharedComparisons).
		Where(builder.Gte{entity.SharedComparisonsFieldCreatedAt: since}).
		OrderBy(entity.SharedComparisonsFieldViews + " DESC").
		Limit(limit).
		Find(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending shared_comparisons: %w", err)
	}

	return results, nil
}

func (r *SharedComparisonRepository) DeleteExpired(now time.Time) (int64, error) {
	affected, err := r.session.Table(entity.TableNameSharedComparisons).
		Where(builder.Lt{entity.SharedComparisonsFieldExpiresAt: now}).
		Delete(&entity.SharedComparison{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired shared_comparisons: %w", err)
	}

	return affected, nil
}
