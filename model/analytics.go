package model

// TrendingEntry 热门分享条目
type TrendingEntry struct {
	ShareID   string   `json:"share_id"`
	Category  string   `json:"category"`
	Items     []string `json:"items"`
	Views     int64    `json:"views"`
	CreatedAt string   `json:"created_at"`
}

// PopularItem 被对比次数最多的条目
type PopularItem struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	ComparisonCount int64  `json:"comparison_count"`
}

// CategoryStat 类目统计
type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CategoryStatsResponse 类目统计响应
type CategoryStatsResponse struct {
	Stats []CategoryStat `json:"stats"`
}
