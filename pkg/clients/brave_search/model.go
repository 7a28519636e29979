package brave_search

type Config struct {
	Addr     string `json:"addr"`
	Token    string `json:"token"`
	Count    int    `json:"count"`    // 抓取的搜索结果条数
	Snippets int    `json:"snippets"` // 拼进摘要的片段条数
	Timeout  int    `json:"timeout"`  // 请求超时（秒）
}

// SearchResult 单条网页搜索结果
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SearchData 单个条目的搜索结果汇总
type SearchData struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Summary string         `json:"summary"`
}

// braveResponse Brave Search API 响应中我们关心的部分
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
		} `json:"results"`
	} `json:"web"`
}
