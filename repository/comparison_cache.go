package repository

import (
	"time"

	"github.com/wardacoder/COMPAIR/entity"
)

type ComparisonCacheRepository interface {
	Insert(data *entity.ComparisonCache) error
	// ListByCategory 取某类目下的全部缓存行，按 created_at 升序。
	// 命中判定放在 service 层做结构化比较，这里只负责候选集。
	ListByCategory(category string) ([]*entity.ComparisonCache, error)
	Delete(id string) error
	// DeleteExpired 删除所有已过期的缓存行，返回删除条数
	DeleteExpired(now time.Time) (int64, error)
}
