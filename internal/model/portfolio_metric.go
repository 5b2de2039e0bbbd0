package model

import (
	"time"
)

type PortfolioMetric struct {
	ID            uint64    `gorm:"primaryKey"`
	PortfolioID   uint64    `gorm:"not null;index:idx_portfolio_date,unique"`
	MetricDate    time.Time `gorm:"not null;index:idx_portfolio_date,unique;column:metric_date"`
	TotalViews    int64     `gorm:"not null;default:0"`
	TotalRatings  int       `gorm:"not null;default:0"`
	AverageRating float64   `gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (PortfolioMetric) TableName() string {
	return "portfolio_daily_metrics"
}
