package model

import "time"

// Review 视频评价模型（1-5 星评分，可附评语）
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评价标识" json:"id"`
	VideoID   int64     `gorm:"not null;index:idx_reviews_video_id;comment:被评价视频ID" json:"video_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5;comment:评分（1-5）" json:"rating"`
	Comment   string    `gorm:"type:text;comment:评语" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_reviews_created_at;comment:评价时间" json:"created_at"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
