package service

import (
	"errors"
	"strings"

	"kursa-go/internal/api/dto"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound    = errors.New("课程不存在")
	ErrCourseTitleExists = errors.New("同名课程已存在")
)

type CourseService struct {
	courseRepo *repository.CourseRepository
	videoRepo  *repository.VideoRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, videoRepo *repository.VideoRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, videoRepo: videoRepo}
}

// Create 创建课程。标题先做存在性预检，并发窗口内漏网的重复
// 由数据库唯一约束兜底，两种情况都报同名冲突而不是崩溃。
func (s *CourseService) Create(req *dto.CourseCreateRequest) (*dto.CourseInfo, error) {
	exists, err := s.courseRepo.ExistsByTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCourseTitleExists
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.courseRepo.Create(course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ErrCourseTitleExists
		}
		return nil, err
	}

	return toCourseInfo(course, 0), nil
}

// List 按标题排序列出全部课程
func (s *CourseService) List() (*dto.CourseListData, error) {
	courses, err := s.courseRepo.ListByTitle()
	if err != nil {
		return nil, err
	}

	counts, err := s.courseRepo.CountVideosByCourse()
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseInfo, 0, len(courses))
	for i := range courses {
		items = append(items, *toCourseInfo(&courses[i], counts[courses[i].ID]))
	}

	return &dto.CourseListData{
		Courses: items,
		Total:   int64(len(items)),
	}, nil
}

// GetDetail 获取课程详情，视频按上传时间正序
func (s *CourseService) GetDetail(courseID int64) (*dto.CourseDetailData, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	videos, err := s.videoRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], false))
	}

	return &dto.CourseDetailData{
		Course: *toCourseInfo(course, int64(len(items))),
		Videos: items,
	}, nil
}

func toCourseInfo(course *model.Course, videoCount int64) *dto.CourseInfo {
	return &dto.CourseInfo{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
		VideoCount:  videoCount,
	}
}

// isUniqueViolation 识别各数据库方言的唯一约束冲突
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
