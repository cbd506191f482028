package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 完整业务流：编辑建课、传视频，访客逐条评价后查看聚合结果
func TestCourseVideoReviewFlow(t *testing.T) {
	env := setupTestEnv(t)
	_, editorToken := env.createUser(t, "editor1", true)
	_, visitorToken := env.createUser(t, "visitor1", false)

	w := env.doJSON(http.MethodPost, "/api/v1/courses", editorToken, map[string]string{
		"title": "Intro",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	courseID := dataField(t, w)["id"].(float64)

	w = env.doMultipart(http.MethodPost, "/api/v1/videos/upload", editorToken,
		map[string]string{
			"title":     "V1",
			"course_id": itoa(int64(courseID)),
		},
		"video_file", "v1.mp4", []byte("video payload"),
	)
	assert.Equal(t, http.StatusCreated, w.Code)
	videoID := dataField(t, w)["id"].(float64)
	videoPath := "/api/v1/videos/" + itoa(int64(videoID))

	for _, rating := range []int{5, 3, 4} {
		w = env.doJSON(http.MethodPost, videoPath+"/reviews", visitorToken,
			map[string]interface{}{"rating": rating})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// 详情页无需登录
	w = env.doGet(videoPath, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, 4.0, data["average_rating"])
	assert.Equal(t, "4.0 / 5 Stars", data["rating_label"])
	assert.Equal(t, float64(3), data["review_count"])

	// 课程列表反映视频数量
	w = env.doGet("/api/v1/courses", "")
	assert.Equal(t, http.StatusOK, w.Code)
	courses := dataField(t, w)["courses"].([]interface{})
	assert.Len(t, courses, 1)
	assert.Equal(t, float64(1), courses[0].(map[string]interface{})["video_count"])
}
