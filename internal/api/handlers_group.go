package api

import "Showcase/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler            *handler.UserHandler
	PortfolioHandler       *handler.PortfolioHandler
	RatingHandler          *handler.RatingHandler
	PortfolioMetricHandler *handler.PortfolioMetricHandler
	MediaHandler           *handler.MediaHandler
}
