package dto

import "time"

// VideoUploadRequest 视频上传请求（multipart/form-data）
type VideoUploadRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=100"`
	Description string `form:"description" binding:"omitempty"`
	CourseID    int64  `form:"course_id" binding:"required"`
}

// CourseBrief 视频中嵌套的课程简要信息
type CourseBrief struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// VideoInfo 视频信息
type VideoInfo struct {
	ID               int64        `json:"id"`
	CourseID         int64        `json:"course_id"`
	UploaderID       int64        `json:"uploader_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Filename         string       `json:"filename"`
	OriginalFilename string       `json:"original_filename,omitempty"`
	FileSize         int64        `json:"file_size"`
	FileFormat       string       `json:"file_format"`
	UploadedAt       time.Time    `json:"uploaded_at"`
	Course           *CourseBrief `json:"course,omitempty"`
}

// VideoDetailData 视频详情：评价倒序、资料正序、评分聚合
type VideoDetailData struct {
	Video         VideoInfo      `json:"video"`
	Reviews       []ReviewInfo   `json:"reviews"`
	Materials     []MaterialInfo `json:"materials"`
	AverageRating float64        `json:"average_rating"`
	RatingLabel   string         `json:"rating_label"`
	ReviewCount   int64          `json:"review_count"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}
