package model

// Pager 分页结构
type Pager struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// Order 排序结构
type Order struct {
	OrderAsc bool   `json:"order_asc" form:"order_asc"` // 是否升序，eg: false
	OrderBy  string `json:"order_by" form:"order_by"`   // 排序字段，eg: "created_at"
}
