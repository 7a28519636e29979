package model

// SaveComparisonRequest 保存对比到历史的请求
type SaveComparisonRequest struct {
	UserID   string                 `json:"user_id" binding:"required"`
	Category string                 `json:"category" binding:"required"`
	Items    []string               `json:"items" binding:"required"`
	Result   map[string]interface{} `json:"result" binding:"required"`
}

// HistoryEntry 历史记录条目
type HistoryEntry struct {
	Timestamp string                 `json:"timestamp"`
	Category  string                 `json:"category"`
	Items     []string               `json:"items"`
	Result    map[string]interface{} `json:"result"`
	ID        string                 `json:"id"`
}

// HistoryResponse 用户历史响应
type HistoryResponse struct {
	UserID  string         `json:"user_id"`
	History []HistoryEntry `json:"history"`
}

// SaveComparisonResponse 保存结果响应
type SaveComparisonResponse struct {
	Message string        `json:"message"`
	Entry   *HistoryEntry `json:"entry"`
}

// GetComparisonsCondition 历史查询条件（带分页和排序）
type GetComparisonsCondition struct {
	UserID   string
	Category *string
	*Pager
	*Order
}

func (g *GetComparisonsCondition) GetPager() *Pager {
	return g.Pager
}

func (g *GetComparisonsCondition) GetOrder() *Order {
	return g.Order
}
