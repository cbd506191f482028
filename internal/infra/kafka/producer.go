package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kursa-go/internal/config"
	"kursa-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 活动事件类型
const (
	EventVideoUploaded   = "video_uploaded"
	EventReviewSubmitted = "review_submitted"
	EventMaterialAdded   = "material_added"
)

// ActivityEvent 平台活动事件消息体。事件仅作旁路通知用途，
// 请求本身的事务语义不依赖事件是否送达。
type ActivityEvent struct {
	Type       string `json:"type"`
	VideoID    int64  `json:"video_id,omitempty"`
	CourseID   int64  `json:"course_id,omitempty"`
	MaterialID int64  `json:"material_id,omitempty"`
	ReviewID   int64  `json:"review_id,omitempty"`
	ActorID    int64  `json:"actor_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

// InitProducer 初始化 Kafka 生产者。未启用时不创建 Writer，
// 事件发送自动变成空操作。
func InitProducer(cfg *config.KafkaConfig) error {
	if !cfg.Enabled {
		logger.Info("Kafka disabled, activity events will be skipped")
		return nil
	}

	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendActivityEvent 发送活动事件。生产者未初始化时静默跳过，
// 发送失败只记日志，不影响请求结果。
func SendActivityEvent(ctx context.Context, event *ActivityEvent) {
	if producer == nil {
		return
	}

	cfg := config.GetKafka()
	topic := cfg.Topics["activity_events"]
	if topic == "" {
		topic = "activity-events"
	}

	if event.OccurredAt == 0 {
		event.OccurredAt = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal activity event", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		logger.Error("Failed to send activity event",
			zap.String("type", event.Type),
			zap.Error(err),
		)
		return
	}

	logger.Debug("Activity event sent",
		zap.String("type", event.Type),
		zap.Int64("video_id", event.VideoID),
	)
}

// CloseProducer 关闭 Kafka 生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	logger.Info("Kafka producer closed")
	return err
}
