package handler

import (
	"Showcase/internal/pkg/response"
	"Showcase/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PortfolioMetricHandler struct {
	metricSvc service.PortfolioMetricService
}

func NewPortfolioMetricHandler(metricSvc service.PortfolioMetricService) *PortfolioMetricHandler {
	return &PortfolioMetricHandler{
		metricSvc: metricSvc,
	}
}

func (s *PortfolioMetricHandler) GetMetrics7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	trend, err := s.metricSvc.GetMetricsBy7Days(c.Request.Context(), portfolioID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

func (s *PortfolioMetricHandler) GetMetrics30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	trend, err := s.metricSvc.GetMetricsBy30Days(c.Request.Context(), portfolioID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
