package repository

import (
	"Showcase/internal/model"
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

type RatingRepo interface {
	CreateRating(ctx context.Context, rating *model.Rating) error
	UpdateRating(ctx context.Context, rating *model.Rating) error
	DeleteRating(ctx context.Context, id uint64) error
	GetRatingById(ctx context.Context, id uint64) (*model.Rating, error)
	GetRatingByRater(ctx context.Context, portfolioID, raterID uint64) (*model.Rating, error)
	ListRatings(ctx context.Context, portfolioID uint64, sortBy string, desc bool, limit, offset int) ([]*model.Rating, error)
	CountRatings(ctx context.Context, portfolioID uint64) (int64, error)
	RecomputeAggregates(ctx context.Context, portfolioID uint64) error
}

type RatingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepo {
	return &RatingRepoImpl{db: db}
}

func (s *RatingRepoImpl) CreateRating(ctx context.Context, rating *model.Rating) error {
	return s.db.WithContext(ctx).Create(rating).Error
}

func (s *RatingRepoImpl) UpdateRating(ctx context.Context, rating *model.Rating) error {
	return s.db.WithContext(ctx).
		Model(rating).
		Select("stars", "review", "updated_at").
		Updates(rating).Error
}

func (s *RatingRepoImpl) DeleteRating(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Rating{}, id).Error
}

func (s *RatingRepoImpl) GetRatingById(ctx context.Context, id uint64) (*model.Rating, error) {
	var rating model.Rating
	err := s.db.WithContext(ctx).First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (s *RatingRepoImpl) GetRatingByRater(ctx context.Context, portfolioID, raterID uint64) (*model.Rating, error) {
	var rating model.Rating
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ? AND rater_id = ?", portfolioID, raterID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// ListRatings 稳定排序分页，同值按 id 兜底
func (s *RatingRepoImpl) ListRatings(ctx context.Context, portfolioID uint64, sortBy string, desc bool, limit, offset int) ([]*model.Rating, error) {
	column := "created_at"
	if sortBy == "stars" {
		column = "stars"
	}
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var ratings []*model.Rating
	err := s.db.WithContext(ctx).
		Preload("Rater").
		Preload("Rater.UserDetail").
		Where("portfolio_id = ?", portfolioID).
		Order(column + " " + direction + ", id ASC").
		Limit(limit).Offset(offset).
		Find(&ratings).Error
	return ratings, err
}

func (s *RatingRepoImpl) CountRatings(ctx context.Context, portfolioID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Rating{}).
		Where("portfolio_id = ?", portfolioID).
		Count(&count).Error
	return count, err
}

// RecomputeAggregates 全量重算作品集的评分聚合字段。
// 整个读-算-写在单个事务内执行，且总在触发它的评分写入提交之后调用，
// 保证每次重算读到的都是本次变更之后的状态。
func (s *RatingRepoImpl) RecomputeAggregates(ctx context.Context, portfolioID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stars []int
		if err := tx.Model(&model.Rating{}).
			Where("portfolio_id = ?", portfolioID).
			Pluck("stars", &stars).Error; err != nil {
			return err
		}

		distribution := model.NewStarDistribution()
		sum := 0
		for _, star := range stars {
			distribution[star]++
			sum += star
		}

		total := len(stars)
		average := 0.0
		if total > 0 {
			average = math.Round(float64(sum)/float64(total)*10) / 10
		}

		return tx.Model(&model.Portfolio{}).
			Where("id = ?", portfolioID).
			Updates(map[string]interface{}{
				"average_rating":      average,
				"total_ratings":       total,
				"rating_distribution": distribution,
				"updated_at":          time.Now(),
			}).Error
	})
}
