package memimplement

import (
	"sort"
	"time"

	"github.com/wardacoder/COMPAIR/constant"
	"github.com/wardacoder/COMPAIR/entity"
	"github.com/wardacoder/COMPAIR/model"
)

type ComparisonRepository struct {
	factory *Factory
}

func (r *ComparisonRepository) Insert(data *entity.Comparison) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.comparisons = append(r.factory.comparisons, &row)
	return nil
}

func (r *ComparisonRepository) Get(id string) (*entity.Comparison, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	for _, row := range r.factory.comparisons {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ComparisonRepository) List(condition *model.GetComparisonsCondition) ([]*entity.Comparison, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	var rows []*entity.Comparison
	for _, row := range r.factory.comparisons {
		if row.UserID != condition.UserID {
			continue
		}
		if condition.Category != nil && row.Category != *condition.Category {
			continue
		}
		copied := *row
		rows = append(rows, &copied)
	}

	asc := false
	if order := condition.GetOrder(); order != nil {
		asc = order.OrderAsc
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	limit := constant.DefaultPageLimit
	offset := 0
	if pager := condition.GetPager(); pager != nil {
		if pager.Limit > 0 {
			limit = pager.Limit
		}
		if pager.Offset > 0 {
			offset = pager.Offset
		}
	}
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *ComparisonRepository) Delete(userID, comparisonID string) (bool, error) {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	for i, row := range r.factory.comparisons {
		if row.UserID == userID && row.ID == comparisonID {
			r.factory.comparisons = append(r.factory.comparisons[:i], r.factory.comparisons[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ComparisonRepository) GroupCountByCategory(since time.Time) ([]*model.CategoryStat, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	counts := map[string]int64{}
	for _, row := range r.factory.comparisons {
		if row.CreatedAt.Before(since) {
			continue
		}
		counts[row.Category]++
	}

	stats := make([]*model.CategoryStat, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, &model.CategoryStat{Category: category, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Category < stats[j].Category
		}
		return stats[i].Count > stats[j].Count
	})
	return stats, nil
}

type SharedComparisonRepository struct {
	factory *Factory
}

func (r *SharedComparisonRepository) Insert(data *entity.SharedComparison) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.sharedComparisons = append(r.factory.sharedComparisons, &row)
	return nil
}

func (r *SharedComparisonRepository) GetByShareID(shareID string) (*entity.SharedComparison, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	for _, row := range r.factory.sharedComparisons {
		if row.ShareID != shareID {
			continue
		}
		if row.ExpiresAt != nil && row.ExpiresAt.Before(time.Now().UTC()) {
			return nil, nil
		}
		copied := *row
		return &copied, nil
	}
	return nil, nil
}

func (r *SharedComparisonRepository) IncrementViews(shareID string) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	for _, row := range r.factory.sharedComparisons {
		if row.ShareID == shareID {
			row.Views++
			return nil
		}
	}
	return nil
}

func (r *SharedComparisonRepository) ListTrendingSince(since time.Time, limit int) ([]*entity.SharedComparison, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	var rows []*entity.SharedComparison
	for _, row := range r.factory.sharedComparisons {
		if row.CreatedAt.Before(since) {
			continue
		}
		copied := *row
		rows = append(rows, &copied)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Views > rows[j].Views
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *SharedComparisonRepository) DeleteExpired(now time.Time) (int64, error) {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	var kept []*entity.SharedComparison
	var deleted int64
	for _, row := range r.factory.sharedComparisons {
		if row.ExpiresAt != nil && row.ExpiresAt.Before(now) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.factory.sharedComparisons = kept
	return deleted, nil
}

type ConversationRepository struct {
	factory *Factory
}

func (r *ConversationRepository) Insert(data *entity.Conversation) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.conversations = append(r.factory.conversations, &row)
	return nil
}

func (r *ConversationRepository) GetByComparisonID(comparisonID string) (*entity.Conversation, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	for _, row := range r.factory.conversations {
		if row.ComparisonID == comparisonID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ConversationRepository) UpdateMessages(comparisonID string, messagesJSON string, updatedAt time.Time) (bool, error) {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	for _, row := range r.factory.conversations {
		if row.ComparisonID == comparisonID {
			row.Messages = messagesJSON
			row.UpdatedAt = updatedAt
			return true, nil
		}
	}
	return false, nil
}

type ComparisonCacheRepository struct {
	factory *Factory
}

func (r *ComparisonCacheRepository) Insert(data *entity.ComparisonCache) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.caches = append(r.factory.caches, &row)
	return nil
}

func (r *ComparisonCacheRepository) ListByCategory(category string) ([]*entity.ComparisonCache, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	var rows []*entity.ComparisonCache
	for _, row := range r.factory.caches {
		if row.Category != category {
			continue
		}
		copied := *row
		rows = append(rows, &copied)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *ComparisonCacheRepository) Delete(id string) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	for i, row := range r.factory.caches {
		if row.ID == id {
			r.factory.caches = append(r.factory.caches[:i], r.factory.caches[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ComparisonCacheRepository) DeleteExpired(now time.Time) (int64, error) {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	var kept []*entity.ComparisonCache
	var deleted int64
	for _, row := range r.factory.caches {
		if row.ExpiresAt != nil && row.ExpiresAt.Before(now) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.factory.caches = kept
	return deleted, nil
}

type ItemRepository struct {
	factory *Factory
}

func (r *ItemRepository) Insert(data *entity.Item) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.items = append(r.factory.items, &row)
	return nil
}

func (r *ItemRepository) GetByName(name string) (*entity.Item, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	for _, row := range r.factory.items {
		if row.Name == name {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ItemRepository) IncrementComparisonCount(id string) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	for _, row := range r.factory.items {
		if row.ID == id {
			row.ComparisonCount++
			row.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

func (r *ItemRepository) ListMostCompared(limit int) ([]*entity.Item, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	rows := make([]*entity.Item, 0, len(r.factory.items))
	for _, row := range r.factory.items {
		copied := *row
		rows = append(rows, &copied)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ComparisonCount > rows[j].ComparisonCount
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type UserRepository struct {
	factory *Factory
}

func (r *UserRepository) Insert(data *entity.User) error {
	r.factory.mu.Lock()
	defer r.factory.mu.Unlock()

	row := *data
	r.factory.users = append(r.factory.users, &row)
	return nil
}

func (r *UserRepository) Get(id string) (*entity.User, error) {
	r.factory.mu.RLock()
	defer r.factory.mu.RUnlock()

	for _, row := range r.factory.users {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}
