package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"kursa-go/internal/api/handler"
	"kursa-go/internal/api/router"
	"kursa-go/internal/config"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"
	"kursa-go/internal/service"
	"kursa-go/internal/storage"
	"kursa-go/pkg/logger"
	"kursa-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv 一套完整的测试环境：内存 SQLite + 内存对象存储 + 全部路由
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *storage.MemoryStore
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	config.Set(&config.Config{
		App: config.AppConfig{Name: "kursa-test", Mode: gin.TestMode},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})

	// 每个测试独立的内存库，避免用例之间互相污染
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Video{},
		&model.Material{},
		&model.Review{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	store := storage.NewMemoryStore()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authService := service.NewAuthService(userRepo)
	courseService := service.NewCourseService(courseRepo, videoRepo)
	videoService := service.NewVideoService(videoRepo, courseRepo, reviewRepo, materialRepo, store, nil)
	materialService := service.NewMaterialService(materialRepo, videoRepo, store)
	reviewService := service.NewReviewService(reviewRepo, videoRepo, nil)
	searchService := service.NewSearchService(videoRepo)

	r := gin.New()
	router.Setup(r,
		handler.NewAuthHandler(authService),
		handler.NewCourseHandler(courseService),
		handler.NewVideoHandler(videoService),
		handler.NewMaterialHandler(materialService),
		handler.NewReviewHandler(reviewService),
		handler.NewSearchHandler(searchService),
	)

	return &testEnv{router: r, db: db, store: store}
}

// createUser 直接落库创建用户并返回可用的 Bearer token
func (e *testEnv) createUser(t *testing.T, username string, isEditor bool) (int64, string) {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
		IsEditor: isEditor,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsEditor)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user.ID, token
}

func (e *testEnv) createCourse(t *testing.T, title string) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, Description: "test course"}
	if err := e.db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func (e *testEnv) createVideo(t *testing.T, courseID, uploaderID int64, title string) *model.Video {
	t.Helper()

	video := &model.Video{
		CourseID:         courseID,
		UploaderID:       uploaderID,
		Title:            title,
		Filename:         "test_" + title + ".mp4",
		OriginalFilename: title + ".mp4",
		FileSize:         1024,
		FileFormat:       "mp4",
	}
	if err := e.db.Create(video).Error; err != nil {
		t.Fatalf("create video: %v", err)
	}
	return video
}

func (e *testEnv) doJSON(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doGet(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart 提交 multipart 表单，fileField 为空时不附带文件
func (e *testEnv) doMultipart(method, path, token string, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, fileName)
		_, _ = part.Write(fileContent)
	}
	writer.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeResponse(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %s", w.Body.String())
	}
	return data
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeResponse(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %s", w.Body.String())
	}
	return errObj
}
