package model

// ConversationMessage 会话中的一条消息
type ConversationMessage struct {
	Role      string `json:"role"` // user 或 assistant
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ConversationContext 一次对比的会话上下文（快层和持久层共用的读视图）
type ConversationContext struct {
	ComparisonID       string                `json:"comparison_id"`
	OriginalComparison *ComparisonOutput     `json:"original_comparison"`
	Items              []string              `json:"items"`
	Category           string                `json:"category"`
	Messages           []ConversationMessage `json:"messages"`
}

// FollowUpRequest 追问请求
type FollowUpRequest struct {
	ComparisonID string `json:"comparison_id" binding:"required"`
	Question     string `json:"question" binding:"required"`
}

// FollowUpResponse 追问响应
type FollowUpResponse struct {
	Answer              string `json:"answer"`
	ComparisonID        string `json:"comparison_id"`
	ConversationHistory int    `json:"conversation_history"` // 当前会话消息条数
}

// FollowUpHistoryResponse 会话历史响应
type FollowUpHistoryResponse struct {
	ComparisonID string                `json:"comparison_id"`
	History      []ConversationMessage `json:"history"`
}
