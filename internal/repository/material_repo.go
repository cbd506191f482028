package repository

import (
	"kursa-go/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create 创建资料记录
func (r *MaterialRepository) Create(material *model.Material) error {
	return r.db.Create(material).Error
}

// GetByID 根据 ID 获取资料
func (r *MaterialRepository) GetByID(id int64) (*model.Material, error) {
	var material model.Material
	err := r.db.First(&material, id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// ListByVideo 获取视频的资料列表，按上传时间正序
func (r *MaterialRepository) ListByVideo(videoID int64) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.Where("video_id = ?", videoID).
		Order("uploaded_at ASC").Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
