package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/api/middleware"
	"kursa-go/internal/api/response"
	"kursa-go/internal/config"
	"kursa-go/internal/service"
	"kursa-go/pkg/logger"
	"kursa-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Upload 上传视频
// @Summary 上传视频
// @Description 编辑上传视频文件并关联到课程
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "视频标题"
// @Param description formData string false "视频描述"
// @Param course_id formData int true "所属课程ID"
// @Param video_file formData file true "视频文件"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "上传成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 403 {object} response.ErrorResponse "需要编辑权限"
// @Failure 404 {object} response.ErrorResponse "课程不存在"
// @Router /videos/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	file, err := c.FormFile("video_file")
	if err != nil {
		response.BadRequest(c, "请上传视频文件")
		return
	}

	uploadCfg := config.GetUpload()

	ext := utils.FileExtension(file.Filename)
	if !uploadCfg.VideoExtAllowed(ext) {
		response.BadRequest(c, fmt.Sprintf("不支持的文件格式，支持: %s",
			strings.Join(uploadCfg.AllowedVideoExt, ", ")))
		return
	}

	if file.Size == 0 || file.Size > uploadCfg.MaxVideoSizeBytes() {
		response.BadRequest(c, fmt.Sprintf("文件大小无效（不能为空，最大 %dMB）", uploadCfg.MaxVideoSizeMB))
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer f.Close()

	info, err := h.videoService.Upload(principal.UserID, &req, f, file.Size, file.Filename)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "视频上传成功", info)
}

// List 视频列表（公开，不需要登录）
// @Summary 视频列表
// @Description 分页获取视频，可按课程筛选，按上传时间倒序
// @Tags 视频
// @Produce json
// @Param course_id query int false "课程ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var courseID *int64
	if v := c.Query("course_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			courseID = &id
		}
	}

	data, err := h.videoService.List(page, pageSize, courseID)
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取视频列表成功", data)
}

// GetDetail 视频详情（公开，不需要登录）
// @Summary 视频详情
// @Description 返回视频信息、评价（最新在前）、资料列表和评分汇总
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoDetailData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	data, err := h.videoService.GetDetail(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频详情成功", data)
}

// Stream 视频播放（公开，不需要登录）
// @Summary 视频播放
// @Description 以流的方式返回视频文件内容
// @Tags 视频
// @Produce octet-stream
// @Param id path int true "视频ID"
// @Success 200 {file} binary "视频内容"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/stream [get]
func (h *VideoHandler) Stream(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	video, obj, err := h.videoService.Stream(c.Request.Context(), videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	defer obj.Reader.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "video/" + video.FileFormat
	}

	c.DataFromReader(200, obj.Size, contentType, obj.Reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`inline; filename="%s"`, video.OriginalFilename),
	})
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoFileGone):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
