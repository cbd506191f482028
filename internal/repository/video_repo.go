package repository

import (
	"kursa-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithCourse 根据 ID 获取视频（含课程信息）
func (r *VideoRepository) GetByIDWithCourse(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Course").Preload("Uploader").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// ListVideos 视频列表查询（分页、课程筛选、标题/描述模糊搜索），
// 默认按上传时间倒序
func (r *VideoRepository) ListVideos(skip, limit int, courseID *int64, search *string) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{})

	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}
	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Course").Order("uploaded_at DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// ListByCourse 获取课程下的视频，按上传时间正序
func (r *VideoRepository) ListByCourse(courseID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("course_id = ?", courseID).
		Order("uploaded_at ASC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// GetByIDs 批量查询视频（含课程信息）
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Course").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}
