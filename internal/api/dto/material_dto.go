package dto

import "time"

// MaterialCreateRequest 添加资料请求（multipart/form-data）。
// material_type 在入口处一次性判定资料的形态，file 类型的负载
// 从 multipart 表单中单独读取。
type MaterialCreateRequest struct {
	MaterialType string `form:"material_type" binding:"required,oneof=comment link file"`
	Content      string `form:"content" binding:"omitempty"`
}

// MaterialInfo 资料信息
type MaterialInfo struct {
	ID               int64     `json:"id"`
	VideoID          int64     `json:"video_id"`
	MaterialType     string    `json:"material_type"`
	Content          string    `json:"content"`
	OriginalFilename string    `json:"original_filename,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at"`
	DownloadURL      string    `json:"download_url,omitempty"`
}
