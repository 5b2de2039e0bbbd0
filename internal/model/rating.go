package model

import (
	"time"
)

type Rating struct {
	ID          uint64    `gorm:"primaryKey"`
	PortfolioID uint64    `gorm:"not null;uniqueIndex:idx_portfolio_rater;index:idx_portfolio_id" json:"portfolio_id"`
	RaterID     uint64    `gorm:"not null;uniqueIndex:idx_portfolio_rater" json:"rater_id"`
	Stars       int       `gorm:"not null" json:"stars"` // 1..5
	Review      *string   `gorm:"type:varchar(1000)" json:"review"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联关系
	Rater User `gorm:"foreignKey:RaterID;references:ID"`
}

func (Rating) TableName() string {
	return "ratings"
}
