package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PaginationDTO 分页元信息
type PaginationDTO struct {
	Current int64 `json:"current"`
	Pages   int64 `json:"pages"`
	Total   int64 `json:"total"`
}
