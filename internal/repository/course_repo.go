package repository

import (
	"kursa-go/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetByID 根据 ID 获取课程
func (r *CourseRepository) GetByID(id int64) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create 创建课程记录
func (r *CourseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

// ExistsByTitle 检查同名课程是否已存在
func (r *CourseRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Course{}).Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByTitle 按标题排序列出全部课程
func (r *CourseRepository) ListByTitle() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Order("title ASC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// CountVideosByCourse 一次查询统计各课程下的视频数量
func (r *CourseRepository) CountVideosByCourse() (map[int64]int64, error) {
	var rows []struct {
		CourseID int64
		Count    int64
	}
	err := r.db.Model(&model.Video{}).
		Select("course_id, COUNT(*) AS count").
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Count
	}
	return counts, nil
}
