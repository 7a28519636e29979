package repository

import "github.com/wardacoder/COMPAIR/entity"

type UserRepository interface {
	Insert(data *entity.User) error
	// Get 按 ID 查询用户，不存在返回 nil
	Get(id string) (*entity.User, error)
}
