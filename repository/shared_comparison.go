package repository

import (
	"time"

	"github.com/wardacoder/COMPAIR/entity"
)

type SharedComparisonRepository interface {
	Insert(data *entity.SharedComparison) error
	// GetByShareID 按分享短 ID 查询，不存在或已过期返回 nil
	GetByShareID(shareID string) (*entity.SharedComparison, error)
	// IncrementViews 浏览计数 +1
	IncrementViews(shareID string) error
	// ListTrendingSince 查询指定时间之后的分享，按浏览量倒序
	ListTrendingSince(since time.Time, limit int) ([]*entity.SharedComparison, error)
	// DeleteExpired 删除所有已过期的分享，返回删除条数
	DeleteExpired(now time.Time) (int64, error)
}
