package entity

import "time"

const (
	TableNameComparisons = "comparisons"

	ComparisonsFieldID        = "id"
	ComparisonsFieldUserID    = "user_id"
	ComparisonsFieldCategory  = "category"
	ComparisonsFieldItems     = "items"
	ComparisonsFieldResult    = "result"
	ComparisonsFieldCreatedAt = "created_at"
)

type Comparison struct {
	ID        string    `xorm:"pk 'id'" json:"id"`
	UserID    string    `xorm:"user_id" json:"user_id"`
	Category  string    `xorm:"category" json:"category"`
	Items     string    `xorm:"items" json:"items"`   // JSONB 类型，存储为 JSON 字符串
	Result    string    `xorm:"result" json:"result"` // JSONB 类型，存储为 JSON 字符串
	CreatedAt time.Time `xorm:"created_at" json:"created_at"`
}

func (e *Comparison) TableName() string {
	return TableNameComparisons
}
