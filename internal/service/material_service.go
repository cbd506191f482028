package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/config"
	infraKafka "kursa-go/internal/infra/kafka"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"
	"kursa-go/internal/storage"
	"kursa-go/pkg/logger"
	"kursa-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMaterialNotFound = errors.New("资料不存在")
	ErrContentRequired  = errors.New("文字说明和链接类型必须填写内容")
	ErrFileRequired     = errors.New("文件类型必须附带上传文件")
)

type MaterialService struct {
	materialRepo *repository.MaterialRepository
	videoRepo    *repository.VideoRepository
	store        storage.Store
}

func NewMaterialService(materialRepo *repository.MaterialRepository, videoRepo *repository.VideoRepository, store storage.Store) *MaterialService {
	return &MaterialService{materialRepo: materialRepo, videoRepo: videoRepo, store: store}
}

// Create 为视频添加资料。资料形态由 material_type 一次性判定：
// comment/link 只需要非空内容，file 需要非空文件负载。
// 校验不通过时既不写存储也不落库。
func (s *MaterialService) Create(actorID, videoID int64, req *dto.MaterialCreateRequest, fileReader io.Reader, fileSize int64, originalFilename string) (*dto.MaterialInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	material := &model.Material{
		VideoID:      videoID,
		MaterialType: req.MaterialType,
	}

	switch req.MaterialType {
	case model.MaterialTypeComment, model.MaterialTypeLink:
		if req.Content == "" {
			return nil, ErrContentRequired
		}
		// 链接类型的内容同时充当 URL 和展示文案
		material.Content = req.Content

	case model.MaterialTypeFile:
		if fileReader == nil || originalFilename == "" {
			return nil, ErrFileRequired
		}

		sanitized := utils.SanitizeFilename(originalFilename)
		objectName := utils.UniqueObjectName(originalFilename)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		// 先写存储再落库，与视频上传同一套顺序约定
		if err := s.store.Put(ctx, config.GetUpload().MaterialBucket, objectName, fileReader, fileSize, "application/octet-stream"); err != nil {
			logger.Error("Upload material to storage failed",
				zap.String("object", objectName), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}

		material.Filename = objectName
		material.OriginalFilename = sanitized
		material.Content = "File: " + sanitized
	}

	if err := s.materialRepo.Create(material); err != nil {
		return nil, err
	}

	eventCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	infraKafka.SendActivityEvent(eventCtx, &infraKafka.ActivityEvent{
		Type:       infraKafka.EventMaterialAdded,
		VideoID:    videoID,
		MaterialID: material.ID,
		ActorID:    actorID,
	})

	return toMaterialInfo(material), nil
}

// Download 打开文件型资料的下载流。资料不存在或类型不是文件时
// 统一按不存在处理（文字和链接没有可下载的负载）。
func (s *MaterialService) Download(ctx context.Context, materialID int64) (*model.Material, *storage.Object, error) {
	material, err := s.materialRepo.GetByID(materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMaterialNotFound
		}
		return nil, nil, err
	}

	if material.MaterialType != model.MaterialTypeFile || material.Filename == "" {
		return nil, nil, ErrMaterialNotFound
	}

	obj, err := s.store.Get(ctx, config.GetUpload().MaterialBucket, material.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrMaterialNotFound
		}
		return nil, nil, err
	}

	return material, obj, nil
}

func toMaterialInfo(m *model.Material) *dto.MaterialInfo {
	info := &dto.MaterialInfo{
		ID:               m.ID,
		VideoID:          m.VideoID,
		MaterialType:     m.MaterialType,
		Content:          m.Content,
		OriginalFilename: m.OriginalFilename,
		UploadedAt:       m.UploadedAt,
	}
	if m.MaterialType == model.MaterialTypeFile {
		info.DownloadURL = fmt.Sprintf("/api/v1/materials/%d/download", m.ID)
	}
	return info
}
