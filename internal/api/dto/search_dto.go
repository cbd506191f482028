package dto

// SearchVideoRequest 视频搜索请求
type SearchVideoRequest struct {
	Q        string `form:"q"`
	CourseID *int64 `form:"course_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// SearchVideoInfo 搜索结果中的视频条目
type SearchVideoInfo struct {
	ID          int64               `json:"id"`
	CourseID    int64               `json:"course_id"`
	CourseTitle string              `json:"course_title"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	FileFormat  string              `json:"file_format"`
	Highlight   map[string][]string `json:"highlight,omitempty"`
}

// SearchVideoData 搜索结果响应数据
type SearchVideoData struct {
	Videos     []SearchVideoInfo `json:"videos"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int64             `json:"total_pages"`
}
