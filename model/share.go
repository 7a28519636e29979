package model

// ShareComparisonRequest 创建分享的请求
type ShareComparisonRequest struct {
	Category string                 `json:"category" binding:"required"`
	Items    []string               `json:"items" binding:"required"`
	Result   map[string]interface{} `json:"result" binding:"required"`
	UserID   string                 `json:"user_id"`
}

// ShareResponse 创建分享的响应
type ShareResponse struct {
	ShareURL string `json:"share_url"`
	ShareID  string `json:"share_id"`
	Message  string `json:"message"`
}

// SharedComparisonView 公开读取分享时的视图
type SharedComparisonView struct {
	ShareID   string                 `json:"share_id"`
	Category  string                 `json:"category"`
	Items     []string               `json:"items"`
	Result    map[string]interface{} `json:"result"`
	CreatedAt string                 `json:"created_at"`
	UserID    *string                `json:"user_id"`
	Views     int64                  `json:"views"`
}
