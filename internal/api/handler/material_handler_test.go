package handler_test

import (
	"net/http"
	"testing"

	"kursa-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateMaterial_Comment(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
		map[string]string{
			"material_type": "comment",
			"content":       "课前请先安装 Go 工具链",
		},
		"", "", nil,
	)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "comment", data["material_type"])
	assert.Equal(t, "课前请先安装 Go 工具链", data["content"])
	// 非文件类型没有下载地址
	_, hasURL := data["download_url"]
	assert.False(t, hasURL)
}

func TestCreateMaterial_EmptyCommentRejected(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	for _, materialType := range []string{"comment", "link"} {
		w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
			map[string]string{
				"material_type": materialType,
				"content":       "",
			},
			"", "", nil,
		)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	env.db.Model(&model.Material{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateMaterial_FileWithoutUploadRejected(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
		map[string]string{"material_type": "file"},
		"", "", nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMaterial_VideoNotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "editor1", true)

	w := env.doMultipart(http.MethodPost, "/api/v1/videos/9999/materials", token,
		map[string]string{
			"material_type": "comment",
			"content":       "无处安放的说明",
		},
		"", "", nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaterialFile_UploadDownloadRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	content := []byte("slide deck content: %PDF-1.7 ...")
	w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
		map[string]string{"material_type": "file"},
		"material_file", "slides v2.pdf", content,
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := dataField(t, w)
	downloadURL, _ := data["download_url"].(string)
	assert.NotEmpty(t, downloadURL)

	// 下载内容与上传完全一致，文件名回到清洗后的原始名
	w = env.doGet(downloadURL, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "slides_v2.pdf")
}

func TestDownloadMaterial_NonFileTypeIs404(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
		map[string]string{
			"material_type": "link",
			"content":       "https://go.dev/tour",
		},
		"", "", nil,
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var material model.Material
	assert.NoError(t, env.db.First(&material).Error)

	// link 类型没有可下载的文件
	w = env.doGet("/api/v1/materials/"+itoa(material.ID)+"/download", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadMaterial_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doGet("/api/v1/materials/9999/download", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaterials_ListedOldestFirstInVideoDetail(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, token := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	for _, content := range []string{"第一条", "第二条", "第三条"} {
		w := env.doMultipart(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/materials", token,
			map[string]string{
				"material_type": "comment",
				"content":       content,
			},
			"", "", nil,
		)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.doGet("/api/v1/videos/"+itoa(video.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	materials := data["materials"].([]interface{})
	assert.Len(t, materials, 3)
	first := materials[0].(map[string]interface{})
	assert.Equal(t, "第一条", first["content"])
}
