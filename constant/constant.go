package constant

const (
	DefaultPageLimit = 100
)

const (
	EmptyString = ""
)

// 消息角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// 对比请求校验规则
const (
	// MinItemsToCompare 至少需要对比的条目数
	MinItemsToCompare = 2
	// MinItemLength 单个条目去掉首尾空白后的最小长度
	MinItemLength = 2
)

// 校验失败时返回给前端的提示文案（HTTP 200 + message，不走错误通道）
const (
	MsgTooFewItems    = "Please provide at least 2 items to compare."
	MsgItemsTooShort  = "Please enter clear, distinct, and comparable items."
	MsgDuplicateItems = "Please enter different items to compare."
)

// 缓存与分享默认值
const (
	// DefaultCacheTTLHours 对比缓存默认过期时间（小时）
	DefaultCacheTTLHours = 24
	// ShareIDLength 分享短 ID 长度，取 uuid 前 8 位
	ShareIDLength = 8
	// DefaultShareURLBase 分享链接前缀
	DefaultShareURLBase = "https://compair.com/shared/"
)

// Brave Search 默认参数
const (
	DefaultBraveSearchAddr     = "https://api.search.brave.com/res/v1/web/search"
	DefaultBraveSearchCount    = 5
	DefaultBraveSearchSnippets = 5
	// DefaultBraveSearchTimeout 搜索请求超时（秒）
	DefaultBraveSearchTimeout = 10
)
