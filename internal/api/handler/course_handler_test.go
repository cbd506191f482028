package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"kursa-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateCourse_Success(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "editor1", true)

	w := env.doJSON(http.MethodPost, "/api/v1/courses", token, map[string]string{
		"title":       "Go 入门",
		"description": "从零开始学 Go",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "Go 入门", data["title"])

	var count int64
	env.db.Model(&model.Course{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCourse_DuplicateTitle(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "editor1", true)
	env.createCourse(t, "Go 入门")

	w := env.doJSON(http.MethodPost, "/api/v1/courses", token, map[string]string{
		"title": "Go 入门",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	// 重复提交不产生第二行
	var count int64
	env.db.Model(&model.Course{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCourse_RequiresEditor(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "visitor1", false)

	w := env.doJSON(http.MethodPost, "/api/v1/courses", token, map[string]string{
		"title": "未授权的课程",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	env.db.Model(&model.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateCourse_UnauthenticatedGetsLoginURL(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(http.MethodPost, "/api/v1/courses", "", map[string]string{
		"title": "匿名课程",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	errObj := errorField(t, w)
	loginURL, _ := errObj["login_url"].(string)
	assert.True(t, strings.HasPrefix(loginURL, "/api/v1/auth/login?next="))
	assert.Contains(t, loginURL, "%2Fapi%2Fv1%2Fcourses")
}

func TestListCourses_OrderedByTitle(t *testing.T) {
	env := setupTestEnv(t)
	env.createCourse(t, "Zig 精讲")
	env.createCourse(t, "Go 入门")

	w := env.doGet("/api/v1/courses", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	courses := data["courses"].([]interface{})
	assert.Len(t, courses, 2)

	first := courses[0].(map[string]interface{})
	second := courses[1].(map[string]interface{})
	assert.Equal(t, "Go 入门", first["title"])
	assert.Equal(t, "Zig 精讲", second["title"])
}

func TestListCourses_VideoCounts(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	courseA := env.createCourse(t, "Go 入门")
	env.createCourse(t, "Rust 进阶")
	env.createVideo(t, courseA.ID, uploaderID, "lesson1")
	env.createVideo(t, courseA.ID, uploaderID, "lesson2")

	w := env.doGet("/api/v1/courses", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	courses := data["courses"].([]interface{})
	assert.Len(t, courses, 2)

	first := courses[0].(map[string]interface{})
	second := courses[1].(map[string]interface{})
	assert.Equal(t, "Go 入门", first["title"])
	assert.Equal(t, float64(2), first["video_count"])
	assert.Equal(t, "Rust 进阶", second["title"])
	assert.Equal(t, float64(0), second["video_count"])
}

func TestGetCourseDetail_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doGet("/api/v1/courses/9999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCourseDetail_WithVideos(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	env.createVideo(t, course.ID, uploaderID, "lesson1")
	env.createVideo(t, course.ID, uploaderID, "lesson2")

	w := env.doGet("/api/v1/courses/"+itoa(course.ID), "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	videos := data["videos"].([]interface{})
	assert.Len(t, videos, 2)
}
