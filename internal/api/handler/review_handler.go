package handler

import (
	"errors"
	"strconv"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/api/middleware"
	"kursa-go/internal/api/response"
	"kursa-go/internal/service"
	"kursa-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create 提交评价
// @Summary 提交评价
// @Description 为视频提交 1-5 星评分及可选评论
// @Tags 评价
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param video_id path int true "视频ID"
// @Param request body dto.ReviewCreateRequest true "评价内容"
// @Success 201 {object} response.Response{data=dto.ReviewInfo} "提交成功"
// @Failure 400 {object} response.ErrorResponse "评分超出范围"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{video_id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	info, err := h.reviewService.Create(principal.UserID, videoID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrVideoNotFound):
			response.NotFound(c, err.Error())
		default:
			logger.Error("Create review failed", zap.Error(err))
			response.InternalError(c, "提交评价失败，请稍后重试")
		}
		return
	}

	response.Created(c, "评价提交成功", info)
}
