package repository

import (
	"kursa-go/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create 创建评价记录
func (r *ReviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

// ListByVideo 获取视频的评价列表，按评价时间倒序
func (r *ReviewRepository) ListByVideo(videoID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("video_id = ?", videoID).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Aggregate 计算视频的评分均值和评价条数。无评价时均值为 0
// （AVG 在无行时为 NULL，COALESCE 归一为 0）。
func (r *ReviewRepository) Aggregate(videoID int64) (avg float64, count int64, err error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err = r.db.Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("video_id = ?", videoID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
