package repository

import (
	"Showcase/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PortfolioMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.PortfolioMetric) error
	GetMetricsByDays(ctx context.Context, portfolioID uint64, days int) ([]*model.PortfolioMetric, error)
}

type portfolioMetricRepoImpl struct {
	db *gorm.DB
}

func NewPortfolioMetricRepository(db *gorm.DB) PortfolioMetricRepo {
	return &portfolioMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 portfolio_id + metric_date 已存在，则更新各项数值
func (r *portfolioMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.PortfolioMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "portfolio_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_views",
			"total_ratings",
			"average_rating",
		}),
	}).Create(metric).Error
}

// GetMetricsByDays 获取作品集最近 N 天的趋势数据
func (r *portfolioMetricRepoImpl) GetMetricsByDays(ctx context.Context, portfolioID uint64, days int) ([]*model.PortfolioMetric, error) {
	metrics := make([]*model.PortfolioMetric, 0)
	result := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -days)).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
