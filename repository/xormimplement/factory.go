package xormimplement

import (
	"context"
	"fmt"
	"sync"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/repository"
	"github.com/wardacoder/COMPAIR/repository/factory"
	"github.com/wardacoder/COMPAIR/repository/interfaces"

	"github.com/sirupsen/logrus"
	"xorm.io/xorm"

	_ "github.com/lib/pq"
)

var once sync.Once
var instance *Factory

type Factory struct {
	// 连接 pg
	engine *xorm.Engine
}

// 获取一个factory实例
func GetRepositoryFactoryInstance() factory.Factory {
	once.Do(func() {
		instance = &Factory{
			engine: openDB(
				config.GetInstance().GetString(config.BaseDbXormType),
				config.GetInstance().GetString(config.BaseDbXormHost),
				config.GetInstance().GetString(config.BaseDbXormPort),
				config.GetInstance().GetString(config.BaseDbXormUsername),
				config.GetInstance().GetString(config.BaseDbXormName),
				config.GetInstance().GetString(config.BaseDbXormPassword),
				config.GetInstance().GetBool(config.BaseDbXormShowsql),
			),
		}
	})
	return instance
}

// 设置xorm的连接参数
func openDB(dbType string, host string, port string, userName string, name string, password string, showSql bool) *xorm.Engine {
	//拼接数据库参数
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		userName,
		password,
		name,
		port)
	//设置连接参数
	engine, err := xorm.NewEngine(dbType, dsn)
	if err != nil {
		logrus.Errorf("Database connection failed err: %v. Database name: %s", err, name)
		panic(err)
	}
	//是否展示sql文件
	engine.ShowSQL(showSql)
	return engine
}

// 创建一个会话
func (f *Factory) NewSession(ctx context.Context) interfaces.Session {
	return &Session{Session: f.engine.NewSession().Context(ctx)}
}

// Ping 数据库健康检查
func (f *Factory) Ping(ctx context.Context) error {
	return f.engine.PingContext(ctx)
}

// NewComparisonRepository 创建对比历史仓库
func (f *Factory) NewComparisonRepository(session interfaces.Session) (repository.ComparisonRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewComparisonRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewSharedComparisonRepository 创建分享仓库
func (f *Factory) NewSharedComparisonRepository(session interfaces.Session) (repository.SharedComparisonRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewSharedComparisonRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewConversationRepository 创建会话仓库
func (f *Factory) NewConversationRepository(session interfaces.Session) (repository.ConversationRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewConversationRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewComparisonCacheRepository 创建对比缓存仓库
func (f *Factory) NewComparisonCacheRepository(session interfaces.Session) (repository.ComparisonCacheRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewComparisonCacheRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewItemRepository 创建条目仓库
func (f *Factory) NewItemRepository(session interfaces.Session) (repository.ItemRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewItemRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}

// NewUserRepository 创建用户仓库
func (f *Factory) NewUserRepository(session interfaces.Session) (repository.UserRepository, error) {
	if s, ok := session.(*Session); ok {
		return NewUserRepository(s), nil
	}
	return nil, fmt.Errorf("xorm session 结构解析失败")
}
