package model

// UserPreferences 用户偏好，决定是否让模型选出个性化赢家
type UserPreferences struct {
	Priorities []string `json:"priorities"` // 用户最关心的特性
	Budget     string   `json:"budget"`     // 预算约束
	UseCase    string   `json:"use_case"`   // 使用场景
}

// HasAny 任一偏好字段非空则认为用户提供了偏好
func (p *UserPreferences) HasAny() bool {
	if p == nil {
		return false
	}
	return len(p.Priorities) > 0 || p.Budget != "" || p.UseCase != ""
}

// ToMap 转成缓存键使用的偏好映射，nil 归一化为空映射
func (p *UserPreferences) ToMap() map[string]interface{} {
	if p == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{
		"priorities": p.Priorities,
		"budget":     p.Budget,
		"use_case":   p.UseCase,
	}
}

// CompareRequest 对比请求
type CompareRequest struct {
	Category        string           `json:"category" binding:"required"`
	Items           []string         `json:"items" binding:"required"`
	Criteria        string           `json:"criteria"`
	UserPreferences *UserPreferences `json:"user_preferences"`
}

// ComparisonOutput 对比结果，同时也是 LLM 的结构化输出格式。
// Message 非空表示模型层面的拒绝（类目不匹配、无意义输入），原样透传给前端。
type ComparisonOutput struct {
	Introduction       string                   `json:"introduction,omitempty"`
	Table              []map[string]interface{} `json:"table,omitempty"`
	Pros               []string                 `json:"pros,omitempty"`
	Cons               []string                 `json:"cons,omitempty"`
	Recommendation     string                   `json:"recommendation,omitempty"`
	PersonalizedWinner *string                  `json:"personalized_winner"`
	WinnerReason       *string                  `json:"winner_reason"`
	Message            string                   `json:"message,omitempty"`

	// 响应附加元信息，缓存命中时会用请求里的原始值覆盖
	ComparisonID string   `json:"comparison_id,omitempty"`
	Items        []string `json:"items,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// RejectionResponse 校验不通过时的提示响应，HTTP 状态仍为 200
type RejectionResponse struct {
	Message string `json:"message"`
}
