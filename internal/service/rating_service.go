package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/minio"
	"Showcase/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jinzhu/copier"

	"gorm.io/gorm"
)

const (
	RatingActionCreated = "created"
	RatingActionUpdated = "updated"
)

type RatingService interface {
	SubmitRating(ctx context.Context, raterID uint64, portfolioID uint64, baseDTO *dto.RatingBaseDTO) (*dto.SubmitRatingDTO, error)
	DeleteRating(ctx context.Context, raterID uint64, ratingID uint64) error
	GetMyRating(ctx context.Context, raterID uint64, portfolioID uint64) (*dto.RatingDTO, error)
	ListRatings(ctx context.Context, portfolioID uint64, listDTO *dto.RatingListDTO) (*dto.RatingsPageDTO, error)
}

type ratingServiceImpl struct {
	ratingRepo    repository.RatingRepo
	portfolioRepo repository.PortfolioRepo
	userRepo      repository.UserRepo
}

func NewRatingService(ratingRepo repository.RatingRepo, portfolioRepo repository.PortfolioRepo, userRepo repository.UserRepo) RatingService {
	return &ratingServiceImpl{
		ratingRepo:    ratingRepo,
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
	}
}

// SubmitRating 提交评分。同一评分人对同一作品集重复提交时原地覆盖，
// 任何变更提交后同步重算作品集聚合字段
func (s *ratingServiceImpl) SubmitRating(ctx context.Context, raterID uint64, portfolioID uint64, baseDTO *dto.RatingBaseDTO) (*dto.SubmitRatingDTO, error) {
	if baseDTO.Stars < consts.MinStars || baseDTO.Stars > consts.MaxStars {
		return nil, ErrStarsOutOfRange
	}

	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}
	if portfolio.UserID == raterID {
		return nil, ErrRatingSelf
	}

	existing, err := s.ratingRepo.GetRatingByRater(ctx, portfolioID, raterID)
	if err != nil {
		return nil, err
	}

	action := RatingActionCreated
	var rating *model.Rating

	if existing != nil {
		existing.Stars = baseDTO.Stars
		existing.Review = baseDTO.Review
		existing.UpdatedAt = time.Now()
		if err = s.ratingRepo.UpdateRating(ctx, existing); err != nil {
			return nil, err
		}
		action = RatingActionUpdated
		rating = existing
	} else {
		rating = &model.Rating{
			PortfolioID: portfolioID,
			RaterID:     raterID,
			Stars:       baseDTO.Stars,
			Review:      baseDTO.Review,
		}
		if err = s.ratingRepo.CreateRating(ctx, rating); err != nil {
			// 并发首评兜底唯一索引，降级为覆盖
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.SubmitRating(ctx, raterID, portfolioID, baseDTO)
			}
			return nil, err
		}
	}

	if err = s.ratingRepo.RecomputeAggregates(ctx, portfolioID); err != nil {
		return nil, err
	}

	ratingDTO, err := s.toRatingDTO(ctx, rating)
	if err != nil {
		return nil, err
	}

	return &dto.SubmitRatingDTO{
		Action: action,
		Rating: ratingDTO,
	}, nil
}

// DeleteRating 删除评分，仅限本人，删除后同步重算聚合
func (s *ratingServiceImpl) DeleteRating(ctx context.Context, raterID uint64, ratingID uint64) error {
	rating, err := s.ratingRepo.GetRatingById(ctx, ratingID)
	if err != nil {
		return err
	}
	if rating == nil {
		return ErrRatingNotFound
	}
	if rating.RaterID != raterID {
		return UnauthorizedError
	}

	if err = s.ratingRepo.DeleteRating(ctx, ratingID); err != nil {
		return err
	}

	return s.ratingRepo.RecomputeAggregates(ctx, rating.PortfolioID)
}

// GetMyRating 获取登录用户对指定作品集的评分
func (s *ratingServiceImpl) GetMyRating(ctx context.Context, raterID uint64, portfolioID uint64) (*dto.RatingDTO, error) {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}

	rating, err := s.ratingRepo.GetRatingByRater(ctx, portfolioID, raterID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}

	return s.toRatingDTO(ctx, rating)
}

// ListRatings 分页查询评分列表。越界页返回空列表与正确的分页元数据
func (s *ratingServiceImpl) ListRatings(ctx context.Context, portfolioID uint64, listDTO *dto.RatingListDTO) (*dto.RatingsPageDTO, error) {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}

	page, pageSize := listDTO.Page, listDTO.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total, err := s.ratingRepo.CountRatings(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	desc := listDTO.Order != "asc"
	rawData, err := s.ratingRepo.ListRatings(ctx, portfolioID, listDTO.SortBy, desc, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	dtoItems := make([]*dto.RatingDTO, len(rawData))
	for i, rating := range rawData {
		item, err := s.toRatingDTO(ctx, rating)
		if err != nil {
			return nil, err
		}
		dtoItems[i] = item
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &dto.RatingsPageDTO{
		List: dtoItems,
		Pagination: dto.RatingPaginationDTO{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalRatings: total,
			HasNext:      int64((page-1)*pageSize+pageSize) < total,
			HasPrev:      page > 1,
		},
	}, nil
}

// toRatingDTO 将 Model 转换为返回给前端的 DTO，评分人信息缺失时降级为占位用户
func (s *ratingServiceImpl) toRatingDTO(ctx context.Context, rating *model.Rating) (*dto.RatingDTO, error) {
	out := &dto.RatingDTO{}
	if err := copier.Copy(out, rating); err != nil {
		return nil, err
	}

	detail := &rating.Rater.UserDetail
	if detail.UserID == 0 {
		details, err := s.userRepo.GetUserDetailByIds(ctx, []uint64{rating.RaterID})
		if err == nil && len(details) > 0 {
			detail = details[0]
		}
	}

	if detail.UserID > 0 {
		out.Nickname = detail.Nickname
		out.AvatarURL = minio.GetPublicURL(detail.AvatarURL)
	} else {
		out.Nickname = "用户_" + strconv.FormatUint(rating.RaterID, 10)
		out.AvatarURL = minio.GetPublicURL(consts.DefaultAvatarURL)
	}

	return out, nil
}
