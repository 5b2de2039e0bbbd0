package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingAggregates(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	raters := seedUsers(t, db, "rater", 5)
	stars := []int{5, 5, 4, 3, 5}
	for i, rater := range raters {
		result, err := ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: stars[i]})
		require.NoError(t, err)
		assert.Equal(t, RatingActionCreated, result.Action)
		assert.Equal(t, stars[i], result.Rating.Stars)
	}

	portfolio := mustPortfolio(t, db, created.ID)
	assert.Equal(t, 5, portfolio.TotalRatings)
	assert.Equal(t, 4.4, portfolio.AverageRating)
	assert.Equal(t, model.StarDistribution{1: 0, 2: 0, 3: 1, 4: 1, 5: 3}, portfolio.RatingDistribution)
}

func TestSubmitRatingUpsert(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	rater := seedUser(t, db, "rater")
	first, err := ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 2})
	require.NoError(t, err)
	assert.Equal(t, RatingActionCreated, first.Action)

	second, err := ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 5})
	require.NoError(t, err)
	assert.Equal(t, RatingActionUpdated, second.Action)
	assert.Equal(t, first.Rating.ID, second.Rating.ID)

	// 覆盖不增加总数
	portfolio := mustPortfolio(t, db, created.ID)
	assert.Equal(t, 1, portfolio.TotalRatings)
	assert.Equal(t, 5.0, portfolio.AverageRating)
	assert.Equal(t, model.StarDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, portfolio.RatingDistribution)
}

func TestSubmitRatingSelfForbidden(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	_, err = ratingSvc.SubmitRating(ctx, owner.ID, created.ID, &dto.RatingBaseDTO{Stars: 5})
	assert.ErrorIs(t, err, ErrRatingSelf)
}

func TestSubmitRatingValidation(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	rater := seedUser(t, db, "rater")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 0})
	assert.ErrorIs(t, err, ErrStarsOutOfRange)

	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 6})
	assert.ErrorIs(t, err, ErrStarsOutOfRange)

	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID+100, &dto.RatingBaseDTO{Stars: 3})
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestDeleteRatingRecomputes(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	raters := seedUsers(t, db, "rater", 5)
	stars := []int{5, 5, 4, 3, 5}
	var threeStarRatingID uint64
	for i, rater := range raters {
		result, err := ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: stars[i]})
		require.NoError(t, err)
		if stars[i] == 3 {
			threeStarRatingID = result.Rating.ID
		}
	}

	// 非作者删除
	err = ratingSvc.DeleteRating(ctx, raters[0].ID, threeStarRatingID)
	assert.ErrorIs(t, err, UnauthorizedError)

	require.NoError(t, ratingSvc.DeleteRating(ctx, raters[3].ID, threeStarRatingID))

	portfolio := mustPortfolio(t, db, created.ID)
	assert.Equal(t, 4, portfolio.TotalRatings)
	assert.Equal(t, 4.8, portfolio.AverageRating)
	assert.Equal(t, model.StarDistribution{1: 0, 2: 0, 3: 0, 4: 1, 5: 3}, portfolio.RatingDistribution)

	err = ratingSvc.DeleteRating(ctx, raters[3].ID, threeStarRatingID)
	assert.ErrorIs(t, err, ErrRatingNotFound)
}

func TestDeleteLastRatingResetsAggregates(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	rater := seedUser(t, db, "rater")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	result, err := ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 4})
	require.NoError(t, err)
	require.NoError(t, ratingSvc.DeleteRating(ctx, rater.ID, result.Rating.ID))

	portfolio := mustPortfolio(t, db, created.ID)
	assert.Equal(t, 0, portfolio.TotalRatings)
	assert.Equal(t, 0.0, portfolio.AverageRating)
	assert.Equal(t, model.NewStarDistribution(), portfolio.RatingDistribution)
}

func TestGetMyRating(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	rater := seedUser(t, db, "rater")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	_, err = ratingSvc.GetMyRating(ctx, rater.ID, created.ID)
	assert.ErrorIs(t, err, ErrRatingNotFound)

	review := "写得不错"
	_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: 4, Review: &review})
	require.NoError(t, err)

	mine, err := ratingSvc.GetMyRating(ctx, rater.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, mine.Stars)
	require.NotNil(t, mine.Review)
	assert.Equal(t, review, *mine.Review)
	assert.Equal(t, "rater", mine.Nickname)
}

func TestListRatingsPagination(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	raters := seedUsers(t, db, "rater", 23)
	for i, rater := range raters {
		_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: i%5 + 1})
		require.NoError(t, err)
	}

	page3, err := ratingSvc.ListRatings(ctx, created.ID, &dto.RatingListDTO{
		Page: 3, PageSize: 10, SortBy: "createdAt", Order: "desc",
	})
	require.NoError(t, err)
	assert.Len(t, page3.List, 3)
	assert.Equal(t, 3, page3.Pagination.CurrentPage)
	assert.Equal(t, 3, page3.Pagination.TotalPages)
	assert.Equal(t, int64(23), page3.Pagination.TotalRatings)
	assert.False(t, page3.Pagination.HasNext)
	assert.True(t, page3.Pagination.HasPrev)

	// 越界页返回空列表与正确的元数据
	page5, err := ratingSvc.ListRatings(ctx, created.ID, &dto.RatingListDTO{
		Page: 5, PageSize: 10, SortBy: "createdAt", Order: "desc",
	})
	require.NoError(t, err)
	assert.Empty(t, page5.List)
	assert.Equal(t, 5, page5.Pagination.CurrentPage)
	assert.Equal(t, 3, page5.Pagination.TotalPages)
	assert.False(t, page5.Pagination.HasNext)
	assert.True(t, page5.Pagination.HasPrev)
}

func TestListRatingsSortByStars(t *testing.T) {
	db := newTestDB(t)
	portfolioSvc := newPortfolioService(db)
	ratingSvc := newRatingService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	created, err := portfolioSvc.CreatePortfolio(ctx, owner.ID, basePortfolioDTO("Jane Doe"))
	require.NoError(t, err)

	raters := seedUsers(t, db, "rater", 4)
	stars := []int{2, 5, 3, 5}
	for i, rater := range raters {
		_, err = ratingSvc.SubmitRating(ctx, rater.ID, created.ID, &dto.RatingBaseDTO{Stars: stars[i]})
		require.NoError(t, err)
	}

	asc, err := ratingSvc.ListRatings(ctx, created.ID, &dto.RatingListDTO{
		Page: 1, PageSize: 10, SortBy: "stars", Order: "asc",
	})
	require.NoError(t, err)
	require.Len(t, asc.List, 4)
	assert.Equal(t, []int{2, 3, 5, 5}, []int{asc.List[0].Stars, asc.List[1].Stars, asc.List[2].Stars, asc.List[3].Stars})
	// 同分按 ID 升序，保证稳定排序
	assert.Less(t, asc.List[2].ID, asc.List[3].ID)

	desc, err := ratingSvc.ListRatings(ctx, created.ID, &dto.RatingListDTO{
		Page: 1, PageSize: 10, SortBy: "stars", Order: "desc",
	})
	require.NoError(t, err)
	require.Len(t, desc.List, 4)
	assert.Equal(t, 5, desc.List[0].Stars)
	assert.Equal(t, 2, desc.List[3].Stars)
}

func TestListRatingsPortfolioNotFound(t *testing.T) {
	db := newTestDB(t)
	ratingSvc := newRatingService(db)

	_, err := ratingSvc.ListRatings(context.Background(), 999, &dto.RatingListDTO{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}
