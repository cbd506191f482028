package service

import (
	"context"
	"errors"
	"time"

	"kursa-go/internal/api/dto"
	infraKafka "kursa-go/internal/infra/kafka"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrInvalidRating 评分必须在 1 到 5 之间
var ErrInvalidRating = errors.New("评分必须在 1 到 5 之间")

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	videoRepo  *repository.VideoRepository
	cache      *redis.Client
}

func NewReviewService(reviewRepo *repository.ReviewRepository, videoRepo *repository.VideoRepository, cache *redis.Client) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, videoRepo: videoRepo, cache: cache}
}

// Create 提交评价并使该视频的评分聚合缓存失效
func (s *ReviewService) Create(actorID, videoID int64, req *dto.ReviewCreateRequest) (*dto.ReviewInfo, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	review := &model.Review{
		VideoID: videoID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	invalidateRatingCache(ctx, s.cache, videoID)

	infraKafka.SendActivityEvent(ctx, &infraKafka.ActivityEvent{
		Type:     infraKafka.EventReviewSubmitted,
		VideoID:  videoID,
		ReviewID: review.ID,
		ActorID:  actorID,
	})

	return toReviewInfo(review), nil
}

func toReviewInfo(r *model.Review) *dto.ReviewInfo {
	return &dto.ReviewInfo{
		ID:        r.ID,
		VideoID:   r.VideoID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
