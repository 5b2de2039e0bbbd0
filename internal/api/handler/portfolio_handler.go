package handler

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/pkg/response"
	"Showcase/internal/pkg/util"
	"Showcase/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioSvc service.PortfolioService
}

func NewPortfolioHandler(portfolioSvc service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioSvc: portfolioSvc,
	}
}

func (s *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var baseDTO dto.PortfolioBaseDTO
	err := c.ShouldBind(&baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	portfolioDTO, err := s.portfolioSvc.CreatePortfolio(c.Request.Context(), userID, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, portfolioDTO)
}

// GetPortfolio 作品集详情，登录且非作者访问时计入浏览量
func (s *PortfolioHandler) GetPortfolio(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	portfolioDTO, err := s.portfolioSvc.GetPortfolio(c.Request.Context(), viewerID, portfolioID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, portfolioDTO)
}

func (s *PortfolioHandler) GetPortfolioSelf(c *gin.Context) {
	userID := c.GetUint64("user_id")
	portfolioDTO, err := s.portfolioSvc.GetPortfolioSelf(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, portfolioDTO)
}

func (s *PortfolioHandler) ListPortfolios(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var listDTO dto.PortfolioListDTO
	err := c.ShouldBindQuery(&listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if listDTO.Page < 1 {
		listDTO.Page = 1
	}
	if listDTO.PageSize < 1 || listDTO.PageSize > 50 {
		listDTO.PageSize = 10
	}
	waterfall, err := s.portfolioSvc.ListPortfolios(c.Request.Context(), userID, &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, waterfall)
}

func (s *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	userID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.PortfolioBaseDTO
	if err = c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.portfolioSvc.UpdatePortfolio(c.Request.Context(), userID, portfolioID, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	userID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.portfolioSvc.DeletePortfolio(c.Request.Context(), userID, portfolioID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
