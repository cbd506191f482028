package model

import "time"

// Video 视频模型
type Video struct {
	ID               int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	CourseID         int64     `gorm:"not null;index:idx_videos_course_id;comment:所属课程ID" json:"course_id"`
	UploaderID       int64     `gorm:"not null;index:idx_videos_uploader_id;comment:上传者ID" json:"uploader_id"`
	Title            string    `gorm:"size:100;not null;comment:视频标题" json:"title"`
	Description      string    `gorm:"type:text;comment:视频描述" json:"description"`
	Filename         string    `gorm:"size:255;not null;comment:存储对象名" json:"filename"`
	OriginalFilename string    `gorm:"size:255;comment:原始文件名" json:"original_filename"`
	FileSize         int64     `gorm:"default:0;comment:文件大小（字节）" json:"file_size"`
	FileFormat       string    `gorm:"size:20;comment:文件格式" json:"file_format"`
	UploadedAt       time.Time `gorm:"autoCreateTime;index:idx_videos_uploaded_at;comment:上传时间" json:"uploaded_at"`

	// 关联关系：删除视频会级联删除附属资料，评价不级联
	Course    Course     `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Uploader  User       `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
	Materials []Material `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"materials,omitempty"`
	Reviews   []Review   `gorm:"foreignKey:VideoID" json:"reviews,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
