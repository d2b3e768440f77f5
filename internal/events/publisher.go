// Package events publishes comment lifecycle events to NATS JetStream.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/example/personality-board/internal/platform/natsconn"
	"github.com/example/personality-board/internal/store"
)

const (
	SubjectCommentCreated = "board.comments.created"
	streamName            = "BOARD"
)

// Publisher publishes board events to NATS JetStream.
type Publisher struct {
	js  nats.JetStreamContext
	log *zap.Logger
}

// New connects to NATS and ensures the BOARD stream exists.
// If natsURL is empty, returns a no-op publisher (stub).
func New(natsURL string, log *zap.Logger) (*Publisher, error) {
	if natsURL == "" {
		log.Warn("NATS_URL not set, board events will not be published (stub mode)")
		return &Publisher{log: log}, nil
	}

	nc, err := natsconn.Connect(natsconn.Options{URL: natsURL})
	if err != nil {
		return nil, err
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, err
	}

	// Create stream if it doesn't exist.
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{"board.>"},
		Storage:  nats.FileStorage,
	})
	if err != nil {
		log.Warn("failed to create NATS stream (may already exist)", zap.Error(err))
	}

	log.Info("NATS publisher initialised", zap.String("stream", streamName))
	return &Publisher{js: js, log: log}, nil
}

// CommentCreatedEvent is the payload published when a comment is created.
type CommentCreatedEvent struct {
	EventID   string    `json:"event_id"`
	CommentID string    `json:"comment_id"`
	ProfileID string    `json:"profile_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentCreated publishes a board.comments.created event. Publishing is
// best-effort: failures are logged, never surfaced to the request.
func (p *Publisher) CommentCreated(_ context.Context, c store.Comment) {
	evt := CommentCreatedEvent{
		EventID:   uuid.NewString(),
		CommentID: c.ID,
		ProfileID: c.ProfileID,
		UserID:    c.UserID,
		CreatedAt: c.Date,
	}

	if p.js == nil {
		p.log.Debug("NATS stub: skipping publish",
			zap.String("subject", SubjectCommentCreated),
			zap.String("event_id", evt.EventID))
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		p.log.Warn("marshal comment event", zap.Error(err))
		return
	}

	ack, err := p.js.Publish(SubjectCommentCreated, data)
	if err != nil {
		p.log.Warn("publish comment event",
			zap.String("subject", SubjectCommentCreated), zap.Error(err))
		return
	}

	p.log.Debug("NATS event published",
		zap.String("subject", SubjectCommentCreated),
		zap.String("event_id", evt.EventID),
		zap.Uint64("seq", ack.Sequence),
	)
}
