package model

import "time"

// 资料类型
const (
	MaterialTypeComment = "comment"
	MaterialTypeLink    = "link"
	MaterialTypeFile    = "file"
)

// Material 视频附属资料模型：文字说明、外部链接或可下载文件
type Material struct {
	ID               int64     `gorm:"primaryKey;autoIncrement;comment:资料标识" json:"id"`
	VideoID          int64     `gorm:"not null;index:idx_materials_video_id;comment:所属视频ID" json:"video_id"`
	MaterialType     string    `gorm:"size:50;not null;comment:资料类型" json:"material_type"`
	Content          string    `gorm:"type:text;comment:文字内容或链接地址" json:"content"`
	Filename         string    `gorm:"size:255;comment:存储对象名（仅文件类型）" json:"filename,omitempty"`
	OriginalFilename string    `gorm:"size:255;comment:原始文件名（仅文件类型）" json:"original_filename,omitempty"`
	UploadedAt       time.Time `gorm:"autoCreateTime;index:idx_materials_uploaded_at;comment:上传时间" json:"uploaded_at"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}
