package handler

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/pkg/response"
	"Showcase/internal/pkg/util"
	"Showcase/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingSvc: ratingSvc,
	}
}

// SubmitRating 提交评分，同一用户重复提交视为覆盖
func (s *RatingHandler) SubmitRating(c *gin.Context) {
	raterID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.RatingBaseDTO
	if err = c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.ratingSvc.SubmitRating(c.Request.Context(), raterID, portfolioID, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *RatingHandler) DeleteRating(c *gin.Context) {
	raterID := c.GetUint64("user_id")
	ratingID, err := strconv.ParseUint(c.Param("rating_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.ratingSvc.DeleteRating(c.Request.Context(), raterID, ratingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RatingHandler) GetMyRating(c *gin.Context) {
	raterID := c.GetUint64("user_id")
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	ratingDTO, err := s.ratingSvc.GetMyRating(c.Request.Context(), raterID, portfolioID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ratingDTO)
}

func (s *RatingHandler) ListRatings(c *gin.Context) {
	portfolioID, err := strconv.ParseUint(c.Param("portfolio_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var listDTO dto.RatingListDTO
	if err = c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.ratingSvc.ListRatings(c.Request.Context(), portfolioID, &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
