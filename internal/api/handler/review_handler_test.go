package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"kursa-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func submitReview(t *testing.T, env *testEnv, token string, videoID int64, rating int, comment string) *model.Review {
	t.Helper()

	w := env.doJSON(http.MethodPost, "/api/v1/videos/"+itoa(videoID)+"/reviews", token,
		map[string]interface{}{"rating": rating, "comment": comment})
	assert.Equal(t, http.StatusCreated, w.Code)

	var review model.Review
	assert.NoError(t, env.db.Order("id DESC").First(&review).Error)
	return &review
}

func TestCreateReview_Success(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	_, token := env.createUser(t, "visitor1", false)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	review := submitReview(t, env, token, video.ID, 4, "讲得不错")
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, video.ID, review.VideoID)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	_, token := env.createUser(t, "visitor1", false)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	for _, rating := range []int{0, 6, -1} {
		w := env.doJSON(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/reviews", token,
			map[string]interface{}{"rating": rating})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	env.db.Model(&model.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateReview_RequiresLogin(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	w := env.doJSON(http.MethodPost, "/api/v1/videos/"+itoa(video.ID)+"/reviews", "",
		map[string]interface{}{"rating": 5})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	errObj := errorField(t, w)
	loginURL, _ := errObj["login_url"].(string)
	assert.True(t, strings.HasPrefix(loginURL, "/api/v1/auth/login?next="))
}

func TestVideoDetail_RatingAggregation(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	_, token := env.createUser(t, "visitor1", false)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	for _, rating := range []int{5, 3, 4} {
		submitReview(t, env, token, video.ID, rating, "")
	}

	w := env.doGet("/api/v1/videos/"+itoa(video.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, 4.0, data["average_rating"])
	assert.Equal(t, "4.0 / 5 Stars", data["rating_label"])
	assert.Equal(t, float64(3), data["review_count"])
}

func TestVideoDetail_ReviewsNewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	// 显式错开评价时间，后提交的排在最前
	base := time.Now().Add(-time.Hour)
	for i, comment := range []string{"第一条", "第二条", "第三条"} {
		review := &model.Review{
			VideoID:   video.ID,
			Rating:    4,
			Comment:   comment,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, env.db.Create(review).Error)
	}

	w := env.doGet("/api/v1/videos/"+itoa(video.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	reviews := data["reviews"].([]interface{})
	assert.Len(t, reviews, 3)

	comments := make([]string, 0, len(reviews))
	for _, item := range reviews {
		comments = append(comments, item.(map[string]interface{})["comment"].(string))
	}
	assert.Equal(t, []string{"第三条", "第二条", "第一条"}, comments)
}

func TestVideoDetail_NoReviews(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	w := env.doGet("/api/v1/videos/"+itoa(video.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, 0.0, data["average_rating"])
	assert.Equal(t, float64(0), data["review_count"])
	reviews := data["reviews"].([]interface{})
	assert.Empty(t, reviews)
}

func TestVideoDetail_RoundedAverage(t *testing.T) {
	env := setupTestEnv(t)
	uploaderID, _ := env.createUser(t, "editor1", true)
	_, token := env.createUser(t, "visitor1", false)
	course := env.createCourse(t, "Go 入门")
	video := env.createVideo(t, course.ID, uploaderID, "lesson1")

	// (5+4+4)/3 = 4.333... 取一位小数
	for _, rating := range []int{5, 4, 4} {
		submitReview(t, env, token, video.ID, rating, "")
	}

	w := env.doGet("/api/v1/videos/"+itoa(video.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, 4.3, data["average_rating"])
	assert.Equal(t, "4.3 / 5 Stars", data["rating_label"])
}
