package dto

import "time"

// PortfolioDTO 作品集
type PortfolioDTO struct {
	// Portfolio
	ID          uint64    `json:"id"`
	TemplateID  string    `json:"template_id"`
	HeroName    string    `json:"hero_name"`
	HeroTitle   string    `json:"hero_title"`
	HeroTagline string    `json:"hero_tagline"`
	AboutMe     string    `json:"about_me"`
	Skills      []string  `json:"skills"`
	Slug        string    `json:"slug"`
	Status      int8      `json:"status"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 聚合字段
	Views              int64       `json:"views"`
	AverageRating      float64     `json:"average_rating"`
	TotalRatings       int         `json:"total_ratings"`
	RatingDistribution map[int]int `json:"rating_distribution"`

	// Owner
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

// PortfolioBaseDTO 作品集 - 新增或修改
type PortfolioBaseDTO struct {
	TemplateID  string   `json:"template_id" binding:"required" validate:"min=1,max=64"`
	HeroName    string   `json:"hero_name" binding:"required" validate:"min=1,max=100"`
	HeroTitle   string   `json:"hero_title" validate:"max=100"`
	HeroTagline string   `json:"hero_tagline" validate:"max=255"`
	AboutMe     string   `json:"about_me" binding:"required" validate:"min=1,max=5000"`
	Skills      []string `json:"skills" validate:"max=30"`
	Featured    bool     `json:"featured"`
}

// PortfolioListDTO 作品集列表查询
type PortfolioListDTO struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
	Mine     bool   `form:"mine"`
	Featured bool   `form:"featured"`
	Skill    string `form:"skill"`
	Role     string `form:"role"`
}

// PortfolioWaterfallDTO 作品集列表响应
type PortfolioWaterfallDTO struct {
	List    []*PortfolioDTO `json:"list"`
	HasMore bool            `json:"has_more"`
}
