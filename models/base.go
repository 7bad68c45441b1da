package models

// PaginationQuery 列表查询的分页参数
type PaginationQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// PaginationResult 列表响应中的分页信息
type PaginationResult struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(total int64, page, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
