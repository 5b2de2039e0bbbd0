package dto

import "time"

// RatingDTO 评分
type RatingDTO struct {
	ID          uint64    `json:"id"`
	PortfolioID uint64    `json:"portfolio_id"`
	Stars       int       `json:"stars"`
	Review      *string   `json:"review,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Rater
	RaterID   uint64 `json:"rater_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

// RatingBaseDTO 评分 - 提交或覆盖
type RatingBaseDTO struct {
	Stars  int     `json:"stars" binding:"required,min=1,max=5"`
	Review *string `json:"review" validate:"omitempty,max=1000"`
}

// SubmitRatingDTO 评分提交结果，action 区分首评与覆盖
type SubmitRatingDTO struct {
	Action string     `json:"action"` // created | updated
	Rating *RatingDTO `json:"rating"`
}

// RatingListDTO 评分列表查询
type RatingListDTO struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=50"`
	SortBy   string `form:"sort_by,default=createdAt" binding:"oneof=createdAt stars"`
	Order    string `form:"order,default=desc" binding:"oneof=asc desc"`
}

// RatingPaginationDTO 评分分页元数据
type RatingPaginationDTO struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRatings int64 `json:"totalRatings"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// RatingsPageDTO 评分列表响应
type RatingsPageDTO struct {
	List       []*RatingDTO        `json:"list"`
	Pagination RatingPaginationDTO `json:"pagination"`
}
