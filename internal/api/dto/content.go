package dto

// GenerateContentDTO 内容生成请求
type GenerateContentDTO struct {
	Topic string `json:"topic" binding:"required"`
	Niche string `json:"niche" binding:"required"`
}

// ContentBankQueryDTO 内容库查询参数
type ContentBankQueryDTO struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=12"`
	Niche  string `form:"niche"`
	Search string `form:"search"`
}

// ContentIdeaDTO 内容库条目返回对象
type ContentIdeaDTO struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Niche     string   `json:"niche"`
	ReelIdea  string   `json:"reelIdea"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	Hook      string   `json:"hook"`
	CreatedAt string   `json:"createdAt"`
}

// ContentBankDTO 内容库分页返回包装
type ContentBankDTO struct {
	Items      []*ContentIdeaDTO `json:"items"`
	Pagination *PaginationDTO    `json:"pagination"`
}
