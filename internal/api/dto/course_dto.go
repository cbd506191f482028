package dto

import "time"

// CourseCreateRequest 创建课程请求
type CourseCreateRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=150"`
	Description string `json:"description" binding:"omitempty"`
}

// CourseInfo 课程信息
type CourseInfo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	VideoCount  int64     `json:"video_count"`
}

// CourseDetailData 课程详情（含视频，按上传时间正序）
type CourseDetailData struct {
	Course CourseInfo  `json:"course"`
	Videos []VideoInfo `json:"videos"`
}

// CourseListData 课程列表响应数据
type CourseListData struct {
	Courses []CourseInfo `json:"courses"`
	Total   int64        `json:"total"`
}
