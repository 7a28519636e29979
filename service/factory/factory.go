package factory

import (
	"sync"

	"github.com/wardacoder/COMPAIR/repository/factory"
	"github.com/wardacoder/COMPAIR/repository/xormimplement"
	"github.com/wardacoder/COMPAIR/service/analytics"
	"github.com/wardacoder/COMPAIR/service/cache"
	"github.com/wardacoder/COMPAIR/service/compare"
	"github.com/wardacoder/COMPAIR/service/history"
	"github.com/wardacoder/COMPAIR/service/session"
	"github.com/wardacoder/COMPAIR/service/share"
)

var instance *Factory
var once sync.Once

// Factory 服务层工厂。会话服务全进程一份，compare 和 history 共享同一个快层。
type Factory struct {
	repositoryFactory factory.Factory
	sessionService    *session.Service
	cacheService      *cache.Service
	compareService    *compare.Service
	historyService    *history.Service
	shareService      *share.Service
	analyticsService  *analytics.Service
}

// 单例模式
func GetServiceFactory() *Factory {
	once.Do(func() {
		repositoryFactory := xormimplement.GetRepositoryFactoryInstance()
		sessionService := session.NewService(repositoryFactory)

		instance = &Factory{
			repositoryFactory: repositoryFactory,
			sessionService:    sessionService,
			cacheService:      cache.NewService(repositoryFactory),
			compareService:    compare.NewService(repositoryFactory, sessionService),
			historyService:    history.NewService(repositoryFactory, sessionService),
			shareService:      share.NewService(repositoryFactory),
			analyticsService:  analytics.NewService(repositoryFactory),
		}
	})
	return instance
}

func (f *Factory) RepositoryFactory() factory.Factory {
	return f.repositoryFactory
}

func (f *Factory) CompareService() *compare.Service {
	return f.compareService
}

func (f *Factory) CacheService() *cache.Service {
	return f.cacheService
}

func (f *Factory) SessionService() *session.Service {
	return f.sessionService
}

func (f *Factory) HistoryService() *history.Service {
	return f.historyService
}

func (f *Factory) ShareService() *share.Service {
	return f.shareService
}

func (f *Factory) AnalyticsService() *analytics.Service {
	return f.analyticsService
}
