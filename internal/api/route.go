package api

import (
	"Showcase/internal/api/middleware"
	"Showcase/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.GET("/:user_id/simple", group.UserHandler.GetUserSimpleInfoById)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
				authGroup.POST("/avatar", group.UserHandler.UploadAvatar)
			}
		}

		portfolioGroup := apiGroup.Group("/portfolios")
		{
			authOptGroup := portfolioGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PortfolioHandler.ListPortfolios)
				authOptGroup.GET("/detail/:portfolio_id", group.PortfolioHandler.GetPortfolio)
			}

			authGroup := portfolioGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PortfolioHandler.CreatePortfolio)
				authGroup.PUT("/:portfolio_id", group.PortfolioHandler.UpdatePortfolio)
				authGroup.DELETE("/:portfolio_id", group.PortfolioHandler.DeletePortfolio)
				authGroup.GET("/self", group.PortfolioHandler.GetPortfolioSelf)
			}
		}

		ratingGroup := apiGroup.Group("/ratings")
		{
			ratingGroup.GET("/list/:portfolio_id", group.RatingHandler.ListRatings)

			authGroup := ratingGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:portfolio_id", group.RatingHandler.SubmitRating)
				authGroup.DELETE("/:rating_id", group.RatingHandler.DeleteRating)
				authGroup.GET("/me/:portfolio_id", group.RatingHandler.GetMyRating)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.Use(middleware.AuthMiddleware())
			{
				metricsGroup.GET("/portfolio/7d/:portfolio_id", group.PortfolioMetricHandler.GetMetrics7Days)
				metricsGroup.GET("/portfolio/30d/:portfolio_id", group.PortfolioMetricHandler.GetMetrics30Days)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
