package dto

import "time"

// ReviewCreateRequest 提交评价请求
type ReviewCreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty"`
}

// ReviewInfo 评价信息
type ReviewInfo struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
