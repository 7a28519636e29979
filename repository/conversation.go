package repository

import (
	"time"

	"github.com/wardacoder/COMPAIR/entity"
)

type ConversationRepository interface {
	Insert(data *entity.Conversation) error
	// GetByComparisonID 按对比 ID 查询会话，不存在返回 nil
	GetByComparisonID(comparisonID string) (*entity.Conversation, error)
	// UpdateMessages 覆盖写入消息列表（JSON 串）并刷新 updated_at，
	// 返回是否命中了会话记录
	UpdateMessages(comparisonID string, messagesJSON string, updatedAt time.Time) (bool, error)
}
