package entity

import "time"

const (
	TableNameComparisonCache = "comparison_cache"

	ComparisonCacheFieldID              = "id"
	ComparisonCacheFieldCategory        = "category"
	ComparisonCacheFieldItems           = "items"
	ComparisonCacheFieldUserPreferences = "user_preferences"
	ComparisonCacheFieldResult          = "result"
	ComparisonCacheFieldCreatedAt       = "created_at"
	ComparisonCacheFieldExpiresAt       = "expires_at"
)

// ComparisonCache 对比结果缓存。Items 存的是归一化后的条目列表，
// 命中判定在 service 层做结构化比较，不依赖数据库的 JSON 等值语义。
type ComparisonCache struct {
	ID              string     `xorm:"pk 'id'" json:"id"`
	Category        string     `xorm:"category" json:"category"`
	Items           string     `xorm:"items" json:"items"`                       // JSONB 类型，存储为 JSON 字符串
	UserPreferences string     `xorm:"user_preferences" json:"user_preferences"` // JSONB 类型，存储为 JSON 字符串
	Result          string     `xorm:"result" json:"result"`                     // JSONB 类型，存储为 JSON 字符串
	CreatedAt       time.Time  `xorm:"created_at" json:"created_at"`
	ExpiresAt       *time.Time `xorm:"expires_at" json:"expires_at"` // 为空表示永不过期，写入路径总会设置
}

func (e *ComparisonCache) TableName() string {
	return TableNameComparisonCache
}
