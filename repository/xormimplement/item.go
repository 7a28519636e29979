package xormimplement

import (
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type ItemRepository struct {
	session *Session
}

func NewItemRepository(session *Session) repository.ItemRepository {
	return &ItemRepository{session: session}
}

func (r *ItemRepository) Insert(data *entity.Item) error {
	if data == nil {
		return fmt.Errorf("item data cannot be nil")
	}
	if data.Name == "" {
		return fmt.Errorf("item name cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameItems).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByName(name string) (*entity.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}

	result := &entity.Item{}
	ok, err := r.session.Table(entity.TableNameItems).
		Where(builder.Eq{entity.ItemsFieldName: name}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}

func (r *ItemRepository) IncrementComparisonCount(id string) error {
	if id == "" {
		return fmt.Errorf("item id cannot be empty")
	}

	sql := fmt.Sprintf("UPDATE %s SET %s = %s + 1, %s = $1 WHERE %s = $2",
		entity.TableNameItems,
		entity.ItemsFieldComparisonCount, entity.ItemsFieldComparisonCount,
		entity.ItemsFieldUpdatedAt, entity.ItemsFieldID)

	if _, err := r.session.Exec(sql, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("failed to increment item comparison_count: %w", err)
	}

	return nil
}

func (r *ItemRepository) ListMostCompared(limit int) ([]*entity.Item, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []*entity.Item
	err := r.session.Table(entity.TableNameItems).
		OrderBy(entity.ItemsFieldComparisonCount + " DESC").
		Limit(limit).
		Find(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to list most compared items: %w", err)
	}

	return results, nil
}
