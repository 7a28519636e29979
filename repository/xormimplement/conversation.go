package xormimplement

import (
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type ConversationRepository struct {
	session *Session
}

func NewConversationRepository(session *Session) repository.ConversationRepository {
	return &ConversationRepository{session: session}
}

func (r *ConversationRepository) Insert(data *entity.Conversation) error {
	if data == nil {
		return fmt.Errorf("conversation data cannot be nil")
	}
	if data.ComparisonID == "" {
		return fmt.Errorf("conversation comparison_id cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameConversations).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	return nil
}

func (r *ConversationRepository) GetByComparisonID(comparisonID string) (*entity.Conversation, error) {
	if comparisonID == "" {
		return nil, fmt.Errorf("comparison_id cannot be empty")
	}

	result := &entity.Conversation{}
	ok, err := r.session.Table(entity.TableNameConversations).
		Where(builder.Eq{entity.ConversationsFieldComparisonID: comparisonID}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}

func (r *ConversationRepository) UpdateMessages(comparisonID string, messagesJSON string, updatedAt time.Time) (bool, error) {
	if comparisonID == "" {
		return false, fmt.Errorf("comparison_id cannot be empty")
	}

	affected, err := r.session.Table(entity.TableNameConversations).
		Where(builder.Eq{entity.ConversationsFieldComparisonID: comparisonID}).
		Update(map[string]interface{}{
			entity.ConversationsFieldMessages:  messagesJSON,
			entity.ConversationsFieldUpdatedAt: updatedAt,
		})
	if err != nil {
		return false, fmt.Errorf("failed to update conversation messages: %w", err)
	}

	return affected > 0, nil
}
