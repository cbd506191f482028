package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/config"
	infraES "kursa-go/internal/infra/elasticsearch"
	infraKafka "kursa-go/internal/infra/kafka"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"
	"kursa-go/internal/storage"
	"kursa-go/pkg/logger"
	"kursa-go/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound = errors.New("视频不存在")
	ErrVideoFileGone = errors.New("视频文件缺失")
	ErrUploadFailed  = errors.New("上传文件失败")
)

type VideoService struct {
	videoRepo    *repository.VideoRepository
	courseRepo   *repository.CourseRepository
	reviewRepo   *repository.ReviewRepository
	materialRepo *repository.MaterialRepository
	store        storage.Store
	cache        *redis.Client
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	courseRepo *repository.CourseRepository,
	reviewRepo *repository.ReviewRepository,
	materialRepo *repository.MaterialRepository,
	store storage.Store,
	cache *redis.Client,
) *VideoService {
	return &VideoService{
		videoRepo:    videoRepo,
		courseRepo:   courseRepo,
		reviewRepo:   reviewRepo,
		materialRepo: materialRepo,
		store:        store,
		cache:        cache,
	}
}

// Upload 上传视频：对象存储写入 + 元数据落库。
// 存储对象名统一带随机前缀，同名上传不会互相覆盖。
// 文件先写存储再提交数据库；插入失败时不回删对象
//（与资料上传保持同一套顺序约定）。
func (s *VideoService) Upload(uploaderID int64, req *dto.VideoUploadRequest, fileReader io.Reader, fileSize int64, originalFilename string) (*dto.VideoInfo, error) {
	course, err := s.courseRepo.GetByID(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	sanitized := utils.SanitizeFilename(originalFilename)
	objectName := utils.UniqueObjectName(originalFilename)
	format := utils.FileExtension(sanitized)

	uploadCfg := config.GetUpload()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	contentType := "video/" + format
	if err := s.store.Put(ctx, uploadCfg.VideoBucket, objectName, fileReader, fileSize, contentType); err != nil {
		logger.Error("Upload video to storage failed",
			zap.String("object", objectName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	video := &model.Video{
		CourseID:         course.ID,
		UploaderID:       uploaderID,
		Title:            req.Title,
		Description:      req.Description,
		Filename:         objectName,
		OriginalFilename: sanitized,
		FileSize:         fileSize,
		FileFormat:       format,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	// 旁路：搜索索引同步和活动事件，失败不影响上传结果
	if syncErr := infraES.SyncVideo(ctx, video, course.Title); syncErr != nil {
		logger.Warn("Sync video to ES failed", zap.Int64("video_id", video.ID), zap.Error(syncErr))
	}
	infraKafka.SendActivityEvent(ctx, &infraKafka.ActivityEvent{
		Type:     infraKafka.EventVideoUploaded,
		VideoID:  video.ID,
		CourseID: course.ID,
		ActorID:  uploaderID,
	})

	video.Course = *course
	return toVideoInfo(video, true), nil
}

// GetDetail 获取视频详情：评价倒序、资料正序、评分聚合（带缓存）
func (s *VideoService) GetDetail(videoID int64) (*dto.VideoDetailData, error) {
	video, err := s.videoRepo.GetByIDWithCourse(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.aggregateRating(videoID)
	if err != nil {
		return nil, err
	}

	reviewItems := make([]dto.ReviewInfo, 0, len(reviews))
	for i := range reviews {
		reviewItems = append(reviewItems, *toReviewInfo(&reviews[i]))
	}

	materialItems := make([]dto.MaterialInfo, 0, len(materials))
	for i := range materials {
		materialItems = append(materialItems, *toMaterialInfo(&materials[i]))
	}

	return &dto.VideoDetailData{
		Video:         *toVideoInfo(video, true),
		Reviews:       reviewItems,
		Materials:     materialItems,
		AverageRating: avg,
		RatingLabel:   fmt.Sprintf("%.1f / 5 Stars", avg),
		ReviewCount:   count,
	}, nil
}

// List 视频列表（分页，可按课程筛选）
func (s *VideoService) List(page, pageSize int, courseID *int64) (*dto.VideoListData, error) {
	skip := (page - 1) * pageSize
	videos, total, err := s.videoRepo.ListVideos(skip, pageSize, courseID, nil)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], true))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.VideoListData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Stream 打开视频文件流供原始字节播放
func (s *VideoService) Stream(ctx context.Context, videoID int64) (*model.Video, *storage.Object, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrVideoNotFound
		}
		return nil, nil, err
	}

	obj, err := s.store.Get(ctx, config.GetUpload().VideoBucket, video.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrVideoFileGone
		}
		return nil, nil, err
	}

	return video, obj, nil
}

// aggregateRating 评分聚合：缓存优先，未命中回源数据库并回填。
// 均值保留一位小数，无评价时为 0.0。
func (s *VideoService) aggregateRating(videoID int64) (float64, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if avg, count, ok := getCachedRating(ctx, s.cache, videoID); ok {
		return avg, count, nil
	}

	avg, count, err := s.reviewRepo.Aggregate(videoID)
	if err != nil {
		return 0, 0, err
	}

	avg = math.Round(avg*10) / 10
	setCachedRating(ctx, s.cache, videoID, avg, count)
	return avg, count, nil
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo
func toVideoInfo(video *model.Video, includeCourse bool) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:               video.ID,
		CourseID:         video.CourseID,
		UploaderID:       video.UploaderID,
		Title:            video.Title,
		Description:      video.Description,
		Filename:         video.Filename,
		OriginalFilename: video.OriginalFilename,
		FileSize:         video.FileSize,
		FileFormat:       video.FileFormat,
		UploadedAt:       video.UploadedAt,
	}

	if includeCourse && video.Course.ID != 0 {
		info.Course = &dto.CourseBrief{
			ID:    video.Course.ID,
			Title: video.Course.Title,
		}
	}

	return info
}
