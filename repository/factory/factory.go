package factory

import (
	"context"

	"github.com/wardacoder/COMPAIR/repository"
	"github.com/wardacoder/COMPAIR/repository/interfaces"
)

type Factory interface {
	NewSession(ctx context.Context) interfaces.Session
	// Ping 数据库健康检查
	Ping(ctx context.Context) error
	NewComparisonRepository(session interfaces.Session) (repository.ComparisonRepository, error)
	NewSharedComparisonRepository(session interfaces.Session) (repository.SharedComparisonRepository, error)
	NewConversationRepository(session interfaces.Session) (repository.ConversationRepository, error)
	NewComparisonCacheRepository(session interfaces.Session) (repository.ComparisonCacheRepository, error)
	NewItemRepository(session interfaces.Session) (repository.ItemRepository, error)
	NewUserRepository(session interfaces.Session) (repository.UserRepository, error)
}
