package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "alice", data["username"])
	// 注册接口不开放编辑身份
	assert.Equal(t, false, data["is_editor"])

	w = env.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data = dataField(t, w)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "bearer", data["token_type"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", false)

	w := env.doJSON(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", false)

	w := env.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// 未登录访问受保护接口拿到带回跳参数的登录地址，
// 用它登录后响应回传原始目标路径。
func TestLoginRedirectFlow(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")
	env.createUser(t, "alice", false)

	target := "/api/v1/videos/" + itoa(video.ID) + "/reviews"
	w := env.doJSON(http.MethodPost, target, "", map[string]interface{}{"rating": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	errObj := errorField(t, w)
	loginURL, _ := errObj["login_url"].(string)
	assert.True(t, strings.HasPrefix(loginURL, "/api/v1/auth/login?next="))

	parsed, err := url.Parse(loginURL)
	assert.NoError(t, err)
	next := parsed.Query().Get("next")
	assert.Equal(t, target, next)

	w = env.doJSON(http.MethodPost, loginURL, "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, target, data["redirect_to"])
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice", false)

	w := env.doGet("/api/v1/auth/me", token)
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "alice", data["username"])
}

func TestMe_InvalidToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doGet("/api/v1/auth/me", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
