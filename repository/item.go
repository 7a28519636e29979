package repository

import "github.com/wardacoder/COMPAIR/entity"

type ItemRepository interface {
	Insert(data *entity.Item) error
	// GetByName 按条目名查询，不存在返回 nil
	GetByName(name string) (*entity.Item, error)
	// IncrementComparisonCount 对比计数 +1 并刷新 updated_at
	IncrementComparisonCount(id string) error
	// ListMostCompared 按对比次数倒序取前 N 个条目
	ListMostCompared(limit int) ([]*entity.Item, error)
}
