package xormimplement

import (
	"fmt"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type UserRepository struct {
	session *Session
}

func NewUserRepository(session *Session) repository.UserRepository {
	return &UserRepository{session: session}
}

func (r *UserRepository) Insert(data *entity.User) error {
	if data == nil {
		return fmt.Errorf("user data cannot be nil")
	}
	if data.ID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameUsers).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) Get(id string) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id cannot be empty")
	}

	result := &entity.User{}
	ok, err := r.session.Table(entity.TableNameUsers).
		Where(builder.Eq{entity.UsersFieldID: id}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}
