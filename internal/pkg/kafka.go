package pkg

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// 审计事件类型
const (
	EventSignedUp     = "member.signed_up"
	EventJoined       = "member.joined"
	EventAdminGranted = "member.admin_granted"
	EventMsgCreated   = "message.created"
	EventMsgDeleted   = "message.deleted"
)

type AuditEvent struct {
	Type     string    `json:"type"`
	Username string    `json:"username,omitempty"`
	TargetID uint64    `json:"target_id,omitempty"`
	At       time.Time `json:"at"`
}

type AuditProducer struct {
	writer *kafka.Writer
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// NewAuditProducer brokers为空时返回nil，调用方当作关闭处理
func NewAuditProducer(cfg KafkaConfig) *AuditProducer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &AuditProducer{writer: w}
}

func (p *AuditProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Emit 尽力而为：失败只记日志，不影响请求
func (p *AuditProducer) Emit(eventType, username string, targetID uint64) {
	if p == nil || p.writer == nil {
		return
	}
	ev := AuditEvent{Type: eventType, Username: username, TargetID: targetID, At: time.Now()}
	value, err := json.Marshal(ev)
	if err != nil {
		logrus.WithError(err).Warn("audit: marshal event failed")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg := kafka.Message{
		Key:   []byte(username),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logrus.WithError(err).WithField("event", eventType).Warn("audit: publish failed")
	}
}
