package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wardacoder/COMPAIR/model"

	goredis "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// Store 活跃会话的快层存储。持久层兜底在 Service 里做，这里只管快层。
type Store interface {
	// Get 不存在返回 (nil, nil)
	Get(ctx context.Context, comparisonID string) (*model.ConversationContext, error)
	Set(ctx context.Context, comparisonID string, conversation *model.ConversationContext) error
	Exists(ctx context.Context, comparisonID string) (bool, error)
	// AppendMessages 会话不在快层时返回 false，不算错误
	AppendMessages(ctx context.Context, comparisonID string, messages ...model.ConversationMessage) (bool, error)
}

// memoryStore 进程内快层，重启即失，持久层仍可兜底
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.ConversationContext
}

func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]*model.ConversationContext),
	}
}

func (s *memoryStore) Get(ctx context.Context, comparisonID string) (*model.ConversationContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.sessions[comparisonID]
	if !ok {
		return nil, nil
	}
	return cloneContext(conversation), nil
}

func (s *memoryStore) Set(ctx context.Context, comparisonID string, conversation *model.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[comparisonID] = cloneContext(conversation)
	return nil
}

func (s *memoryStore) Exists(ctx context.Context, comparisonID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[comparisonID]
	return ok, nil
}

func (s *memoryStore) AppendMessages(ctx context.Context, comparisonID string, messages ...model.ConversationMessage) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.sessions[comparisonID]
	if !ok {
		return false, nil
	}
	conversation.Messages = append(conversation.Messages, messages...)
	return true, nil
}

func cloneContext(conversation *model.ConversationContext) *model.ConversationContext {
	if conversation == nil {
		return nil
	}
	copied := *conversation
	copied.Messages = append([]model.ConversationMessage(nil), conversation.Messages...)
	return &copied
}

// redisStore 跨实例共享的快层，键为 compair:session:<comparison_id>
type redisStore struct {
	client *goredis.Client
}

const redisSessionKeyPrefix = "compair:session:"

func NewRedisStore(client *goredis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) key(comparisonID string) string {
	return redisSessionKeyPrefix + comparisonID
}

func (s *redisStore) Get(ctx context.Context, comparisonID string) (*model.ConversationContext, error) {
	data, err := s.client.Get(ctx, s.key(comparisonID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var conversation model.ConversationContext
	if err := json.Unmarshal(data, &conversation); err != nil {
		return nil, errors.WithStack(err)
	}
	return &conversation, nil
}

func (s *redisStore) Set(ctx context.Context, comparisonID string, conversation *model.ConversationContext) error {
	data, err := json.Marshal(conversation)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := s.client.Set(ctx, s.key(comparisonID), data, 0).Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (s *redisStore) Exists(ctx context.Context, comparisonID string) (bool, error) {
	count, err := s.client.Exists(ctx, s.key(comparisonID)).Result()
	if err != nil {
		return false, errors.WithStack(err)
	}
	return count > 0, nil
}

func (s *redisStore) AppendMessages(ctx context.Context, comparisonID string, messages ...model.ConversationMessage) (bool, error) {
	conversation, err := s.Get(ctx, comparisonID)
	if err != nil {
		return false, err
	}
	if conversation == nil {
		return false, nil
	}
	conversation.Messages = append(conversation.Messages, messages...)
	if err := s.Set(ctx, comparisonID, conversation); err != nil {
		return false, err
	}
	return true, nil
}
