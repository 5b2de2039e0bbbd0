package job

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/repository"
	"Showcase/internal/service"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserDetail{},
		&model.Portfolio{},
		&model.Rating{},
		&model.PortfolioMetric{},
	))
	return db
}

func TestPortfolioMetricsJobRun(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	portfolioRepo := repository.NewPortfolioRepository(db)
	metricRepo := repository.NewPortfolioMetricRepository(db)
	portfolioSvc := service.NewPortfolioService(portfolioRepo)
	metricSvc := service.NewPortfolioMetricService(metricRepo, portfolioRepo)

	for i := 0; i < 3; i++ {
		email := "owner" + strconv.Itoa(i) + "@test.local"
		user := &model.User{Email: &email}
		require.NoError(t, db.Create(user).Error)

		_, err := portfolioSvc.CreatePortfolio(ctx, user.ID, &dto.PortfolioBaseDTO{
			TemplateID: "classic",
			HeroName:   "Owner " + strconv.Itoa(i),
			AboutMe:    "个人简介",
		})
		require.NoError(t, err)
	}

	metricsJob := NewPortfolioMetricsJob(portfolioRepo, metricSvc)
	metricsJob.Run()

	var count int64
	require.NoError(t, db.Model(&model.PortfolioMetric{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	// 再跑一次同日 Upsert，不会新增行
	metricsJob.Run()
	require.NoError(t, db.Model(&model.PortfolioMetric{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
