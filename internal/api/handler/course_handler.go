package handler

import (
	"errors"
	"strconv"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/api/response"
	"kursa-go/internal/service"
	"kursa-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Create 创建课程
// @Summary 创建课程
// @Description 编辑创建新课程，课程标题全局唯一
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseCreateRequest true "课程信息"
// @Success 201 {object} response.Response{data=dto.CourseInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 403 {object} response.ErrorResponse "需要编辑权限"
// @Failure 409 {object} response.ErrorResponse "同名课程已存在"
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.courseService.Create(&req)
	if err != nil {
		handleCourseError(c, err)
		return
	}

	response.Created(c, "课程创建成功", info)
}

// List 课程列表
// @Summary 课程列表
// @Description 获取全部课程，按标题排序，附带每个课程的视频数量
// @Tags 课程
// @Produce json
// @Success 200 {object} response.Response{data=dto.CourseListData} "获取成功"
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	data, err := h.courseService.List()
	if err != nil {
		logger.Error("List courses failed", zap.Error(err))
		response.InternalError(c, "获取课程列表失败")
		return
	}

	response.OK(c, "获取课程列表成功", data)
}

// GetDetail 课程详情
// @Summary 课程详情
// @Description 获取课程信息及其下属视频（按上传时间正序）
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} response.Response{data=dto.CourseDetailData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "课程不存在"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetDetail(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的课程ID")
		return
	}

	data, err := h.courseService.GetDetail(courseID)
	if err != nil {
		handleCourseError(c, err)
		return
	}

	response.OK(c, "获取课程详情成功", data)
}

func handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCourseTitleExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Course operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
