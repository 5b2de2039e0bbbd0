package wire

import (
	"Showcase/internal/api"
	"Showcase/internal/api/config"
	"Showcase/internal/api/handler"
	"Showcase/internal/job"
	"Showcase/internal/pkg/cron"
	"Showcase/internal/repository"
	"Showcase/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	metricRepo := repository.NewPortfolioMetricRepository(db)

	userService := service.NewUserService(userRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	ratingService := service.NewRatingService(ratingRepo, portfolioRepo, userRepo)
	metricService := service.NewPortfolioMetricService(metricRepo, portfolioRepo)

	handlers := &api.HandlersGroup{
		UserHandler:            handler.NewUserHandler(userService),
		PortfolioHandler:       handler.NewPortfolioHandler(portfolioService),
		RatingHandler:          handler.NewRatingHandler(ratingService),
		PortfolioMetricHandler: handler.NewPortfolioMetricHandler(metricService),
		MediaHandler:           handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	metricsJob := job.NewPortfolioMetricsJob(portfolioRepo, metricService)
	cronMgr := cron.NewCronManager(metricsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
