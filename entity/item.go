package entity

import "time"

const (
	TableNameItems = "items"

	ItemsFieldID              = "id"
	ItemsFieldName            = "name"
	ItemsFieldCategory        = "category"
	ItemsFieldItemMetadata    = "item_metadata"
	ItemsFieldComparisonCount = "comparison_count"
	ItemsFieldCreatedAt       = "created_at"
	ItemsFieldUpdatedAt       = "updated_at"
)

type Item struct {
	ID              string    `xorm:"pk 'id'" json:"id"`
	Name            string    `xorm:"name" json:"name"`
	Category        string    `xorm:"category" json:"category"`
	ItemMetadata    string    `xorm:"item_metadata" json:"item_metadata"` // JSONB 类型，存储为 JSON 字符串
	ComparisonCount int64     `xorm:"comparison_count" json:"comparison_count"`
	CreatedAt       time.Time `xorm:"created_at" json:"created_at"`
	UpdatedAt       time.Time `xorm:"updated_at" json:"updated_at"`
}

func (e *Item) TableName() string {
	return TableNameItems
}
