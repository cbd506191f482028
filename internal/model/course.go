package model

import "time"

// Course 课程模型，一个课程聚合多个视频
type Course struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:课程标识" json:"id"`
	Title       string    `gorm:"size:150;not null;uniqueIndex;comment:课程标题" json:"title"`
	Description string    `gorm:"type:text;comment:课程描述" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:CourseID" json:"videos,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
