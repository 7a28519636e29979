package memimplement

import (
	"context"
	"sync"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"
	"github.com/wardacoder/COMPAIR/repository/factory"
	"github.com/wardacoder/COMPAIR/repository/interfaces"
)

// Factory 全内存实现，主要给 service 层测试和本地开发用。
// 所有表共用一把锁，规模上完全够用。
type Factory struct {
	mu sync.RWMutex

	comparisons       []*entity.Comparison
	sharedComparisons []*entity.SharedComparison
	conversations     []*entity.Conversation
	caches            []*entity.ComparisonCache
	items             []*entity.Item
	users             []*entity.User
}

var _ factory.Factory = (*Factory)(nil)

func NewFactory() *Factory {
	return &Factory{}
}

type Session struct{}

func (s *Session) Begin() error    { return nil }
func (s *Session) Close() error    { return nil }
func (s *Session) Commit() error   { return nil }
func (s *Session) Rollback() error { return nil }

func (f *Factory) NewSession(ctx context.Context) interfaces.Session {
	return &Session{}
}

func (f *Factory) Ping(ctx context.Context) error {
	return nil
}

func (f *Factory) NewComparisonRepository(session interfaces.Session) (repository.ComparisonRepository, error) {
	return &ComparisonRepository{factory: f}, nil
}

func (f *Factory) NewSharedComparisonRepository(session interfaces.Session) (repository.SharedComparisonRepository, error) {
	return &SharedComparisonRepository{factory: f}, nil
}

func (f *Factory) NewConversationRepository(session interfaces.Session) (repository.ConversationRepository, error) {
	return &ConversationRepository{factory: f}, nil
}

func (f *Factory) NewComparisonCacheRepository(session interfaces.Session) (repository.ComparisonCacheRepository, error) {
	return &ComparisonCacheRepository{factory: f}, nil
}

func (f *Factory) NewItemRepository(session interfaces.Session) (repository.ItemRepository, error) {
	return &ItemRepository{factory: f}, nil
}

func (f *Factory) NewUserRepository(session interfaces.Session) (repository.UserRepository, error) {
	return &UserRepository{factory: f}, nil
}
