package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/minio"
	"Showcase/internal/pkg/util"
	"Showcase/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/jinzhu/copier"

	"gorm.io/gorm"
)

type PortfolioService interface {
	CreatePortfolio(ctx context.Context, userID uint64, baseDTO *dto.PortfolioBaseDTO) (*dto.PortfolioDTO, error)
	GetPortfolio(ctx context.Context, viewerID uint64, portfolioID uint64) (*dto.PortfolioDTO, error)
	GetPortfolioSelf(ctx context.Context, userID uint64) (*dto.PortfolioDTO, error)
	ListPortfolios(ctx context.Context, userID uint64, listDTO *dto.PortfolioListDTO) (*dto.PortfolioWaterfallDTO, error)
	UpdatePortfolio(ctx context.Context, userID uint64, portfolioID uint64, baseDTO *dto.PortfolioBaseDTO) error
	DeletePortfolio(ctx context.Context, userID uint64, portfolioID uint64) error
	RecordView(ctx context.Context, viewerID uint64, portfolioID uint64) error
}

type portfolioServiceImpl struct {
	portfolioRepo repository.PortfolioRepo
}

func NewPortfolioService(portfolioRepo repository.PortfolioRepo) PortfolioService {
	return &portfolioServiceImpl{
		portfolioRepo: portfolioRepo,
	}
}

// CreatePortfolio 创建作品集，每个用户至多一份
func (s *portfolioServiceImpl) CreatePortfolio(ctx context.Context, userID uint64, baseDTO *dto.PortfolioBaseDTO) (*dto.PortfolioDTO, error) {
	existing, err := s.portfolioRepo.GetPortfolioByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPortfolioExist
	}

	portfolio := &model.Portfolio{}
	if err = copier.Copy(portfolio, baseDTO); err != nil {
		return nil, err
	}
	portfolio.UserID = userID
	portfolio.Slug = util.GenerateSlug(baseDTO.HeroName)
	portfolio.Status = consts.PortfolioStatusPublished
	portfolio.Views = 0
	portfolio.AverageRating = 0
	portfolio.TotalRatings = 0
	portfolio.RatingDistribution = model.NewStarDistribution()

	if err = s.portfolioRepo.CreatePortfolio(ctx, portfolio); err != nil {
		// 并发创建时兜底唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPortfolioExist
		}
		return nil, err
	}

	created, err := s.portfolioRepo.GetPortfolio(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}
	return s.toPortfolioDTO(created)
}

// GetPortfolio 获取作品集详情并记录浏览
func (s *portfolioServiceImpl) GetPortfolio(ctx context.Context, viewerID uint64, portfolioID uint64) (*dto.PortfolioDTO, error) {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}

	if err = s.RecordView(ctx, viewerID, portfolioID); err != nil {
		log.WarnContext(ctx, "record view failed", "portfolio_id", portfolioID, "err", err)
	} else if viewerID != portfolio.UserID {
		portfolio.Views++
	}

	return s.toPortfolioDTO(portfolio)
}

// GetPortfolioSelf 获取登录用户自己的作品集
func (s *portfolioServiceImpl) GetPortfolioSelf(ctx context.Context, userID uint64) (*dto.PortfolioDTO, error) {
	portfolio, err := s.portfolioRepo.GetPortfolioByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}
	return s.toPortfolioDTO(portfolio)
}

// ListPortfolios 过滤分页查询
func (s *portfolioServiceImpl) ListPortfolios(ctx context.Context, userID uint64, listDTO *dto.PortfolioListDTO) (*dto.PortfolioWaterfallDTO, error) {
	query := &repository.PortfolioQuery{
		Featured: listDTO.Featured,
		Skill:    listDTO.Skill,
		Role:     listDTO.Role,
	}
	if listDTO.Mine {
		if userID == 0 {
			return nil, ErrMissingLoginCredentials
		}
		query.UserID = userID
	}

	page, pageSize := listDTO.Page, listDTO.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	rawData, err := s.portfolioRepo.ListPortfolios(ctx, query, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(rawData) > pageSize {
		hasMore = true
		rawData = rawData[:pageSize]
	}

	dtoItems := make([]*dto.PortfolioDTO, len(rawData))
	for i, portfolio := range rawData {
		item, err := s.toPortfolioDTO(portfolio)
		if err != nil {
			return nil, err
		}
		dtoItems[i] = item
	}

	return &dto.PortfolioWaterfallDTO{
		List:    dtoItems,
		HasMore: hasMore,
	}, nil
}

// UpdatePortfolio 更新作品集内容，仅 hero 名称变化时重新生成 slug
func (s *portfolioServiceImpl) UpdatePortfolio(ctx context.Context, userID uint64, portfolioID uint64, baseDTO *dto.PortfolioBaseDTO) error {
	oldPortfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}
	if oldPortfolio == nil {
		return ErrPortfolioNotFound
	}
	if oldPortfolio.UserID != userID {
		return UnauthorizedError
	}

	heroNameChanged := oldPortfolio.HeroName != baseDTO.HeroName

	if err = copier.Copy(oldPortfolio, baseDTO); err != nil {
		return err
	}
	if heroNameChanged {
		oldPortfolio.Slug = util.GenerateSlug(baseDTO.HeroName)
	}

	return s.portfolioRepo.UpdatePortfolioContent(ctx, oldPortfolio)
}

// DeletePortfolio 删除作品集。关联评分不做级联清理
func (s *portfolioServiceImpl) DeletePortfolio(ctx context.Context, userID uint64, portfolioID uint64) error {
	portfolio, err := s.portfolioRepo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}
	if portfolio == nil {
		return ErrPortfolioNotFound
	}
	if portfolio.UserID != userID {
		return UnauthorizedError
	}

	return s.portfolioRepo.DeletePortfolio(ctx, portfolioID)
}

// RecordView 记录一次浏览，owner 自看不计数
func (s *portfolioServiceImpl) RecordView(ctx context.Context, viewerID uint64, portfolioID uint64) error {
	return s.portfolioRepo.IncrementViews(ctx, portfolioID, viewerID)
}

// toPortfolioDTO 将 Model 转换为返回给前端的 DTO
func (s *portfolioServiceImpl) toPortfolioDTO(portfolio *model.Portfolio) (*dto.PortfolioDTO, error) {
	out := &dto.PortfolioDTO{}
	if err := copier.Copy(out, portfolio); err != nil {
		return nil, err
	}
	out.Skills = portfolio.Skills
	out.RatingDistribution = portfolio.RatingDistribution

	defaultAvatarUrl := minio.GetPublicURL(consts.DefaultAvatarURL)

	if portfolio.User.ID > 0 {
		out.UserID = portfolio.User.ID
		if portfolio.User.UserDetail.UserID > 0 {
			out.Nickname = portfolio.User.UserDetail.Nickname
			out.AvatarURL = minio.GetPublicURL(portfolio.User.UserDetail.AvatarURL)
		} else {
			out.Nickname = "用户_" + strconv.FormatUint(portfolio.User.ID, 10)
			out.AvatarURL = defaultAvatarUrl
		}
	} else {
		out.UserID = portfolio.UserID
		out.Nickname = "未知用户"
		out.AvatarURL = defaultAvatarUrl
	}

	return out, nil
}
