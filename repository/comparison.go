package repository

import (
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
)

type ComparisonRepository interface {
	Insert(data *entity.Comparison) error
	Get(id string) (*entity.Comparison, error)
	// List 按条件查询用户历史，默认按创建时间倒序
	List(condition *model.GetComparisonsCondition) ([]*entity.Comparison, error)
	// Delete 删除用户的一条对比记录，返回是否真的删除了
	Delete(userID, comparisonID string) (bool, error)
	// GroupCountByCategory 统计指定时间之后各类目的对比次数
	GroupCountByCategory(since time.Time) ([]*model.CategoryStat, error)
}
