package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/pkg/consts"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePortfolioOnePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.UserID)
	assert.Equal(t, "owner", created.Nickname)
	assert.Equal(t, int8(consts.PortfolioStatusPublished), created.Status)
	assert.Equal(t, int64(0), created.Views)
	assert.Equal(t, 0.0, created.AverageRating)
	assert.Equal(t, 0, created.TotalRatings)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, created.RatingDistribution)
	assert.True(t, strings.HasPrefix(created.Slug, "jane-doe-"))

	_, err = svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Again"))
	assert.ErrorIs(t, err, ErrPortfolioExist)

	// 删除旧的之后允许重建
	require.NoError(t, svc.DeletePortfolio(ctx, owner.ID, created.ID))
	rebuilt, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Again"))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, rebuilt.ID)
}

func TestUpdatePortfolioSlugRegeneration(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	// 仅改简介，slug 不变
	update := basePortfolioDTO("Jane Doe")
	update.AboutMe = "换一段自我介绍"
	require.NoError(t, svc.UpdatePortfolio(ctx, owner.ID, created.ID, update))

	after := mustPortfolio(t, db, created.ID)
	assert.Equal(t, created.Slug, after.Slug)
	assert.Equal(t, "换一段自我介绍", after.AboutMe)

	// 改名则重新生成 slug
	renamed := basePortfolioDTO("John Smith")
	require.NoError(t, svc.UpdatePortfolio(ctx, owner.ID, created.ID, renamed))

	after = mustPortfolio(t, db, created.ID)
	assert.True(t, strings.HasPrefix(after.Slug, "john-smith-"))
	assert.NotEqual(t, created.Slug, after.Slug)
}

func TestUpdatePortfolioAccessControl(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	stranger := seedUser(t, db, "stranger")
	created, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	err = svc.UpdatePortfolio(ctx, stranger.ID, created.ID, basePortfolioDTO("Hacked"))
	assert.ErrorIs(t, err, UnauthorizedError)

	err = svc.UpdatePortfolio(ctx, owner.ID, created.ID+100, basePortfolioDTO("Missing"))
	assert.ErrorIs(t, err, ErrPortfolioNotFound)

	err = svc.DeletePortfolio(ctx, stranger.ID, created.ID)
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestUpdatePortfolioDoesNotTouchAggregates(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	rater := seedUser(t, db, "rater")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 4})
	require.NoError(t, err)

	require.NoError(t, portfolioSvc.UpdatePortfolio(ctx, owner.ID, created.ID, basePortfolioDTO("Jane Doe")))

	after := mustPortfolio(t, db, created.ID)
	assert.Equal(t, 1, after.TotalRatings)
	assert.Equal(t, 4.0, after.AverageRating)
}

func TestDeletePortfolioKeepsRatings(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	rater := seedUser(t, db, "rater")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 4})
	require.NoError(t, err)

	require.NoError(t, portfolioSvc.DeletePortfolio(ctx, owner.ID, created.ID))

	_, err = portfolioSvc.GetPortfolio(ctx, rater.ID, created.ID)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)

	// 评分不做级联清理
	var count int64
	require.NoError(t, db.Table("ratings").Where("portfolio_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordViewExcludesOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	// 作者自看不计数
	self, err := svc.GetPortfolio(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), self.Views)

	// 未登录访客计数
	_, err = svc.GetPortfolio(ctx, 0, created.ID)
	require.NoError(t, err)

	viewers := seedUsers(t, db, "viewer", 3)
	for _, viewer := range viewers {
		_, err = svc.GetPortfolio(ctx, viewer.ID, created.ID)
		require.NoError(t, err)
	}

	after := mustPortfolio(t, db, created.ID)
	assert.Equal(t, int64(4), after.Views)
}

func TestListPortfoliosFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	aliceDTO := basePortfolioDTO("Alice")
	aliceDTO.HeroTitle = "Frontend Developer"
	aliceDTO.Skills = []string{"React", "TypeScript"}
	_, err := svc.CreatePortfolio(ctx, alice.ID, aliceDTO)
	require.NoError(t, err)

	bobDTO := basePortfolioDTO("Bob")
	bobDTO.HeroTitle = "Backend Engineer"
	bobDTO.Skills = []string{"Go", "Redis"}
	bobDTO.Featured = true
	_, err = svc.CreatePortfolio(ctx, bob.ID, bobDTO)
	require.NoError(t, err)

	carolDTO := basePortfolioDTO("Carol")
	carolDTO.HeroTitle = "Platform Engineer"
	carolDTO.Skills = []string{"Go", "Kubernetes"}
	_, err = svc.CreatePortfolio(ctx, carol.ID, carolDTO)
	require.NoError(t, err)

	all, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, all.List, 3)
	assert.False(t, all.HasMore)

	featured, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 10, Featured: true})
	require.NoError(t, err)
	require.Len(t, featured.List, 1)
	assert.Equal(t, "Bob", featured.List[0].HeroName)

	goSkill, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 10, Skill: "go"})
	require.NoError(t, err)
	assert.Len(t, goSkill.List, 2)

	engineers, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 10, Role: "engineer"})
	require.NoError(t, err)
	assert.Len(t, engineers.List, 2)

	// mine 需要登录
	_, err = svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 10, Mine: true})
	assert.ErrorIs(t, err, ErrMissingLoginCredentials)

	mine, err := svc.ListPortfolios(ctx, alice.ID, &dto.PortfolioListDTO{Page: 1, PageSize: 10, Mine: true})
	require.NoError(t, err)
	require.Len(t, mine.List, 1)
	assert.Equal(t, "Alice", mine.List[0].HeroName)
}

func TestListPortfoliosWaterfall(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	users := seedUsers(t, db, "user", 5)
	for i, user := range users {
		_, err := svc.CreatePortfolio(ctx, user.ID, basePortfolioDTO("User "+string(rune('A'+i))))
		require.NoError(t, err)
	}

	page1, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page1.List, 2)
	assert.True(t, page1.HasMore)

	page3, err := svc.ListPortfolios(ctx, 0, &dto.PortfolioListDTO{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page3.List, 1)
	assert.False(t, page3.HasMore)
}

func TestGetPortfolioSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	_, err := svc.GetPortfolioSelf(ctx, owner.ID)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)

	created, err := svc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	self, err := svc.GetPortfolioSelf(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, self.ID)

	// 自己查看不增加浏览量
	assert.Equal(t, int64(0), self.Views)
}
