package xormimplement

import (
	"fmt"
	"time"

	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/repository"

	"xorm.io/builder"
)

type ComparisonRepository struct {
	session *Session
}

func NewComparisonRepository(session *Session) repository.ComparisonRepository {
	return &ComparisonRepository{session: session}
}

func (r *ComparisonRepository) Insert(data *entity.Comparison) error {
	if data == nil {
		return fmt.Errorf("comparison data cannot be nil")
	}
	if data.ID == "" {
		return fmt.Errorf("comparison id cannot be empty")
	}

	_, err := r.session.Table(entity.TableNameComparisons).Insert(data)
	if err != nil {
		return fmt.Errorf("failed to insert comparison: %w", err)
	}

	return nil
}

func (r *ComparisonRepository) Get(id string) (*entity.Comparison, error) {
	if id == "" {
		return nil, fmt.Errorf("comparison id cannot be empty")
	}

	result := &entity.Comparison{}
	ok, err := r.session.Table(entity.TableNameComparisons).
		Where(builder.Eq{entity.ComparisonsFieldID: id}).
		Get(result)
	if err != nil {
		return nil, fmt.Errorf("failed to get comparison: %w", err)
	}

	if !ok {
		return nil, nil
	}

	return result, nil
}

func (r *ComparisonRepository) List(condition *model.GetComparisonsCondition) ([]*entity.Comparison, error) {
	if condition == nil {
		return nil, fmt.Errorf("get condition cannot be nil")
	}
	if condition.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	conds := []builder.Cond{builder.Eq{entity.ComparisonsFieldUserID: condition.UserID}}
	if condition.Category != nil && *condition.Category != "" {
		conds = append(conds, builder.Eq{entity.ComparisonsFieldCategory: *condition.Category})
	}

	session := r.session.Table(entity.TableNameComparisons).Where(builder.And(conds...))

	pagerOrder(session, condition, WithDefaultOrderField(entity.ComparisonsFieldCreatedAt))

	var results []*entity.Comparison
	if err := session.Find(&results); err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}

	return results, nil
}

func (r *ComparisonRepository) Delete(userID, comparisonID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("user_id is required")
	}
	if comparisonID == "" {
		return false, fmt.Errorf("comparison id cannot be empty")
	}

	affected, err := r.session.Table(entity.TableNameComparisons).
		Where(builder.Eq{
			entity.ComparisonsFieldID:     comparisonID,
			entity.ComparisonsFieldUserID: userID,
		}).
		Delete(&entity.Comparison{})
	if err != nil {
		return false, fmt.Errorf("failed to delete comparison: %w", err)
	}

	return affected > 0, nil
}

func (r *ComparisonRepository) GroupCountByCategory(since time.Time) ([]*model.CategoryStat, error) {
	sql := fmt.Sprintf(`
		SELECT %s AS category, COUNT(%s) AS count
		FROM %s
		WHERE %s >= $1
		GROUP BY %s
	`, entity.ComparisonsFieldCategory, entity.ComparisonsFieldID,
		entity.TableNameComparisons,
		entity.ComparisonsFieldCreatedAt, entity.ComparisonsFieldCategory)

	var results []*model.CategoryStat
	if err := r.session.SQL(sql, since).Find(&results); err != nil {
		return nil, fmt.Errorf("failed to count comparisons by category: %w", err)
	}

	return results, nil
}
