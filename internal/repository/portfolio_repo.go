package repository

import (
	"Showcase/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PortfolioQuery 列表过滤条件
type PortfolioQuery struct {
	UserID   uint64 // 仅查询此用户的作品集
	Featured bool
	Skill    string // 技能子串，不区分大小写
	Role     string // 职位/头衔子串，不区分大小写
}

type PortfolioRepo interface {
	CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error
	GetPortfolio(ctx context.Context, id uint64) (*model.Portfolio, error)
	GetPortfolioByUserId(ctx context.Context, userID uint64) (*model.Portfolio, error)
	UpdatePortfolioContent(ctx context.Context, portfolio *model.Portfolio) error
	DeletePortfolio(ctx context.Context, id uint64) error
	IncrementViews(ctx context.Context, id uint64, viewerID uint64) error
	ListPortfolios(ctx context.Context, query *PortfolioQuery, limit, offset int) ([]*model.Portfolio, error)
	ListPortfolioIDs(ctx context.Context, lastID uint64, limit int) ([]uint64, error)
}

type PortfolioRepoImpl struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepo {
	return &PortfolioRepoImpl{
		db: db,
	}
}

func (s *PortfolioRepoImpl) CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error {
	return s.db.WithContext(ctx).Create(portfolio).Error
}

func (s *PortfolioRepoImpl) GetPortfolio(ctx context.Context, id uint64) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("User.UserDetail").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &portfolio, nil
}

func (s *PortfolioRepoImpl) GetPortfolioByUserId(ctx context.Context, userID uint64) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("User.UserDetail").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &portfolio, nil
}

// UpdatePortfolioContent 仅更新内容类字段，owner/views/聚合字段不经此路径
func (s *PortfolioRepoImpl) UpdatePortfolioContent(ctx context.Context, portfolio *model.Portfolio) error {
	return s.db.WithContext(ctx).
		Model(portfolio).
		Select("template_id", "hero_name", "hero_title", "hero_tagline",
			"about_me", "skills", "slug", "featured", "updated_at").
		Updates(portfolio).Error
}

func (s *PortfolioRepoImpl) DeletePortfolio(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Portfolio{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// IncrementViews 原子自增浏览数，owner 自看不计入
func (s *PortfolioRepoImpl) IncrementViews(ctx context.Context, id uint64, viewerID uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Portfolio{}).
		Where("id = ? AND user_id <> ? AND is_deleted = ?", id, viewerID, false).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (s *PortfolioRepoImpl) ListPortfolios(ctx context.Context, query *PortfolioQuery, limit, offset int) ([]*model.Portfolio, error) {
	tx := s.db.WithContext(ctx).
		Preload("User").
		Preload("User.UserDetail").
		Where("is_deleted = ? AND status = ?", false, 1)

	if query != nil {
		if query.UserID > 0 {
			tx = tx.Where("user_id = ?", query.UserID)
		}
		if query.Featured {
			tx = tx.Where("featured = ?", true)
		}
		if query.Skill != "" {
			tx = tx.Where("LOWER(skills) LIKE ?", "%"+strings.ToLower(query.Skill)+"%")
		}
		if query.Role != "" {
			tx = tx.Where("LOWER(hero_title) LIKE ?", "%"+strings.ToLower(query.Role)+"%")
		}
	}

	var portfolios []*model.Portfolio
	err := tx.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}

// ListPortfolioIDs 游标式批量取 ID，供每日指标快照任务遍历
func (s *PortfolioRepoImpl) ListPortfolioIDs(ctx context.Context, lastID uint64, limit int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&model.Portfolio{}).
		Where("id > ? AND is_deleted = ?", lastID, false).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}
