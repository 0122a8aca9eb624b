package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// CommentCreatedEvent 新评论事件载荷，按帖子ID分区投递
type CommentCreatedEvent struct {
	PostID    uint64 `json:"post_id"`
	CommentID uint64 `json:"comment_id"`
	AuthorID  uint64 `json:"author_id"`
	Commenter string `json:"commenter"`
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// PublishCommentCreated 序列化评论事件并发送
func (p *KafkaProducer) PublishCommentCreated(ctx context.Context, ev CommentCreatedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Send(ctx, MakeKeyFromID(ev.PostID), payload)
}

func MakeKeyFromID(id uint64) string {
	return fmt.Sprintf("%d", id)
}
