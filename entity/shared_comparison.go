package entity

import "time"

const (
	TableNameSharedComparisons = "shared_comparisons"

	SharedComparisonsFieldID           = "id"
	SharedComparisonsFieldShareID      = "share_id"
	SharedComparisonsFieldComparisonID = "comparison_id"
	SharedComparisonsFieldUserID       = "user_id"
	SharedComparisonsFieldCategory     = "category"
	SharedComparisonsFieldItems        = "items"
	SharedComparisonsFieldResult       = "result"
	SharedComparisonsFieldViews        = "views"
	SharedComparisonsFieldExpiresAt    = "expires_at"
	SharedComparisonsFieldCreatedAt    = "created_at"
)

type SharedComparison struct {
	ID           string     `xorm:"pk 'id'" json:"id"`
	ShareID      string     `xorm:"share_id" json:"share_id"`
	ComparisonID string     `xorm:"comparison_id" json:"comparison_id"`
	UserID       string     `xorm:"user_id" json:"user_id"`
	Category     string     `xorm:"category" json:"category"`
	Items        string     `xorm:"items" json:"items"`   // JSONB 类型，存储为 JSON 字符串
	Result       string     `xorm:"result" json:"result"` // JSONB 类型，存储为 JSON 字符串
	Views        int64      `xorm:"views" json:"views"`
	ExpiresAt    *time.Time `xorm:"expires_at" json:"expires_at"` // 为空表示永不过期
	CreatedAt    time.Time  `xorm:"created_at" json:"created_at"`
}

func (e *SharedComparison) TableName() string {
	return TableNameSharedComparisons
}
