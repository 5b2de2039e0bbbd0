package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/redis"
	"Showcase/internal/pkg/util"
	"Showcase/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type PortfolioMetricService interface {
	// SyncPortfolioMetric 同步作品集每日指标快照
	SyncPortfolioMetric(ctx context.Context, portfolioID uint64) error
	// GetMetricsBy7Days 获取最近7天趋势数据
	GetMetricsBy7Days(ctx context.Context, portfolioID uint64, userID uint64) (*dto.PortfolioTrendDTO, error)
	// GetMetricsBy30Days 获取最近30天趋势数据
	GetMetricsBy30Days(ctx context.Context, portfolioID uint64, userID uint64) (*dto.PortfolioTrendDTO, error)
}

type portfolioMetricServiceImpl struct {
	metricRepo    repository.PortfolioMetricRepo
	portfolioRepo repository.PortfolioRepo
}

func NewPortfolioMetricService(metricRepo repository.PortfolioMetricRepo, portfolioRepo repository.PortfolioRepo) PortfolioMetricService {
	return &portfolioMetricServiceImpl{
		metricRepo:    metricRepo,
		portfolioRepo: portfolioRepo,
	}
}

// SyncPortfolioMetric 实现：将 portfolios 表的实时计数刷入每日指标表
func (s *portfolioMetricServiceImpl) SyncPortfolioMetric(ctx context.Context, portfolioID uint64) error {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}
	if portfolio == nil {
		return ErrPortfolioNotFound
	}

	today := util.GetMidnight(time.Now())
	metric := &model.PortfolioMetric{
		PortfolioID:   portfolioID,
		MetricDate:    today,
		TotalViews:    portfolio.Views,
		TotalRatings:  portfolio.TotalRatings,
		AverageRating: portfolio.AverageRating,
	}

	if err = s.metricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	if redis.GetRdbClient() != nil {
		idStr := strconv.FormatUint(portfolioID, 10)
		_ = redis.DeleteKey(ctx, consts.PortfolioMetrics7DaysKey+idStr)
		_ = redis.DeleteKey(ctx, consts.PortfolioMetrics30DaysKey+idStr)
	}

	return nil
}

func (s *portfolioMetricServiceImpl) GetMetricsBy7Days(ctx context.Context, portfolioID uint64, userID uint64) (*dto.PortfolioTrendDTO, error) {
	key := consts.PortfolioMetrics7DaysKey + strconv.FormatUint(portfolioID, 10)
	return s.getMetrics(ctx, portfolioID, userID, key, 7)
}

func (s *portfolioMetricServiceImpl) GetMetricsBy30Days(ctx context.Context, portfolioID uint64, userID uint64) (*dto.PortfolioTrendDTO, error) {
	key := consts.PortfolioMetrics30DaysKey + strconv.FormatUint(portfolioID, 10)
	return s.getMetrics(ctx, portfolioID, userID, key, 30)
}

// getMetrics 聚合查询与数据平滑逻辑
func (s *portfolioMetricServiceImpl) getMetrics(ctx context.Context, portfolioID uint64, userID uint64, key string, days int) (*dto.PortfolioTrendDTO, error) {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}
	if portfolio.UserID != userID {
		return nil, UnauthorizedError
	}

	useCache := redis.GetRdbClient() != nil
	if useCache {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.PortfolioTrendDTO
			_ = json.Unmarshal([]byte(val), &res)
			return &res, nil
		}
	}

	rawData, err := s.metricRepo.GetMetricsByDays(ctx, portfolioID, days)
	if err != nil {
		return nil, err
	}

	dataMap := make(map[string]*model.PortfolioMetric)
	for _, m := range rawData {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.PortfolioTrendDTO{
		PortfolioID: portfolioID,
		Days:        days,
		Views:       make([]*dto.PortfolioMetricDTO, 0, days),
		Ratings:     make([]*dto.PortfolioMetricDTO, 0, days),
		Average:     make([]*dto.PortfolioMetricDTO, 0, days),
	}

	var lastValid *model.PortfolioMetric
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		currentDate := util.GetMidnight(now.AddDate(0, 0, -i))
		dateStr := currentDate.Format(time.DateOnly)

		var views, ratings, average float64
		if val, ok := dataMap[dateStr]; ok {
			views, ratings, average = float64(val.TotalViews), float64(val.TotalRatings), val.AverageRating
			lastValid = val
		} else if lastValid != nil {
			views, ratings, average = float64(lastValid.TotalViews), float64(lastValid.TotalRatings), lastValid.AverageRating
		}

		res.Views = append(res.Views, &dto.PortfolioMetricDTO{Date: dateStr, Value: views})
		res.Ratings = append(res.Ratings, &dto.PortfolioMetricDTO{Date: dateStr, Value: ratings})
		res.Average = append(res.Average, &dto.PortfolioMetricDTO{Date: dateStr, Value: average})
	}

	if useCache {
		if data, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(data))
		}
	}

	return res, nil
}
