package entity

import "time"

const (
	TableNameConversations = "conversations"

	ConversationsFieldID                 = "id"
	ConversationsFieldComparisonID       = "comparison_id"
	ConversationsFieldUserID             = "user_id"
	ConversationsFieldMessages           = "messages"
	ConversationsFieldOriginalComparison = "original_comparison"
	ConversationsFieldItems              = "items"
	ConversationsFieldCategory           = "category"
	ConversationsFieldCreatedAt          = "created_at"
	ConversationsFieldUpdatedAt          = "updated_at"
)

type Conversation struct {
	ID                 string    `xorm:"pk 'id'" json:"id"`
	ComparisonID       string    `xorm:"comparison_id" json:"comparison_id"`
	UserID             string    `xorm:"user_id" json:"user_id"`
	Messages           string    `xorm:"messages" json:"messages"`                       // JSONB 类型，存储为 JSON 字符串
	OriginalComparison string    `xorm:"original_comparison" json:"original_comparison"` // JSONB 类型，存储为 JSON 字符串
	Items              string    `xorm:"items" json:"items"`                             // JSONB 类型，存储为 JSON 字符串
	Category           string    `xorm:"category" json:"category"`
	CreatedAt          time.Time `xorm:"created_at" json:"created_at"`
	UpdatedAt          time.Time `xorm:"updated_at" json:"updated_at"`
}

func (e *Conversation) TableName() string {
	return TableNameConversations
}
