package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/api/middleware"
	"kursa-go/internal/api/response"
	"kursa-go/internal/service"
	"kursa-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaterialHandler struct {
	materialService *service.MaterialService
}

func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// Create 添加课程资料
// @Summary 添加课程资料
// @Description 编辑为视频附加资料，类型为 comment、link 或 file
// @Tags 资料
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param video_id path int true "视频ID"
// @Param material_type formData string true "资料类型: comment, link, file"
// @Param content formData string false "文字说明或链接地址"
// @Param material_file formData file false "资料文件（file 类型必填）"
// @Success 201 {object} response.Response{data=dto.MaterialInfo} "添加成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 403 {object} response.ErrorResponse "需要编辑权限"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{video_id}/materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.MaterialCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	// file 类型才读取上传文件，其余类型忽略 multipart 中的文件字段
	var (
		f        multipart.File
		fileSize int64
		filename string
	)
	if req.MaterialType == "file" {
		file, err := c.FormFile("material_file")
		if err != nil {
			response.BadRequest(c, service.ErrFileRequired.Error())
			return
		}
		f, err = file.Open()
		if err != nil {
			response.InternalError(c, "打开上传文件失败")
			return
		}
		defer f.Close()
		fileSize = file.Size
		filename = file.Filename
	}

	principal, _ := middleware.GetPrincipal(c)

	info, err := h.materialService.Create(principal.UserID, videoID, &req, f, fileSize, filename)
	if err != nil {
		handleMaterialError(c, err)
		return
	}

	response.Created(c, "资料添加成功", info)
}

// Download 下载资料文件（公开，不需要登录）
// @Summary 下载资料文件
// @Description 以附件形式下载 file 类型的资料，文件名为原始上传名
// @Tags 资料
// @Produce octet-stream
// @Param id path int true "资料ID"
// @Success 200 {file} binary "文件内容"
// @Failure 404 {object} response.ErrorResponse "资料不存在"
// @Router /materials/{id}/download [get]
func (h *MaterialHandler) Download(c *gin.Context) {
	materialID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的资料ID")
		return
	}

	material, obj, err := h.materialService.Download(c.Request.Context(), materialID)
	if err != nil {
		handleMaterialError(c, err)
		return
	}
	defer obj.Reader.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(200, obj.Size, contentType, obj.Reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, material.OriginalFilename),
	})
}

func handleMaterialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMaterialNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrContentRequired), errors.Is(err, service.ErrFileRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Material operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
