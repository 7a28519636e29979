package redis

import (
	"context"
	"sync"

	"github.com/wardacoder/COMPAIR/config"

	goredis "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

type Config struct {
	Db       int    `json:"db"`
	Host     string `json:"host"`
	Password string `json:"password"`
}

type ClientRedis struct {
	config *Config
	client *goredis.Client
}

var (
	instance *ClientRedis
	once     sync.Once
)

func GetInstance() *ClientRedis {
	once.Do(func() {
		conf := &Config{
			Db:       config.GetInstance().GetInt(config.RedisClientDb),
			Host:     config.GetInstance().GetString(config.RedisClientHost),
			Password: config.GetInstance().GetString(config.RedisClientPassword),
		}

		instance = &ClientRedis{
			config: conf,
			client: goredis.NewClient(&goredis.Options{
				Addr:     conf.Host,
				Password: conf.Password,
				DB:       conf.Db,
			}),
		}
	})
	return instance
}

func (zc *ClientRedis) GetClient() *goredis.Client {
	return zc.client
}

func (zc *ClientRedis) Ping(ctx context.Context) error {
	if err := zc.client.Ping(ctx).Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
