package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kursa-go/internal/model"
	"kursa-go/pkg/logger"

	"go.uber.org/zap"
)

// ESVideoDoc ES 视频文档结构
type ESVideoDoc struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"course_id"`
	CourseTitle string `json:"course_title"`
	UploaderID  int64  `json:"uploader_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileFormat  string `json:"file_format"`
	UploadedAt  string `json:"uploaded_at"`
}

func videoToESDoc(v *model.Video, courseTitle string) *ESVideoDoc {
	return &ESVideoDoc{
		ID:          v.ID,
		CourseID:    v.CourseID,
		CourseTitle: courseTitle,
		UploaderID:  v.UploaderID,
		Title:       v.Title,
		Description: v.Description,
		FileFormat:  v.FileFormat,
		UploadedAt:  v.UploadedAt.Format(time.RFC3339),
	}
}

// SyncVideo 同步单个视频到 ES（上传成功后旁路调用）
func SyncVideo(ctx context.Context, v *model.Video, courseTitle string) error {
	doc := videoToESDoc(v, courseTitle)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, VideosIndexName(), fmt.Sprintf("%d", v.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", v.ID))
	return nil
}
