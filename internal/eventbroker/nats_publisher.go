package eventbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"feed-api/internal/models"
	"feed-api/internal/services"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	SubjectPostCreated = "feed.post.created"
	SubjectPostUpdated = "feed.post.updated"
	SubjectPostDeleted = "feed.post.deleted"
)

// PostEvent is the payload shared with subscribers of the feed.post.* subjects.
type PostEvent struct {
	Action    string    `json:"action"`
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id,omitempty"`
	Title     string    `json:"title,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	At        time.Time `json:"at"`
}

type NatsPublisher struct {
	nc *nats.Conn
}

var _ services.EventPublisher = (*NatsPublisher)(nil)

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

func (p *NatsPublisher) PublishPostCreated(ctx context.Context, post *models.Post) error {
	return p.publish(ctx, SubjectPostCreated, postEvent("create", post))
}

func (p *NatsPublisher) PublishPostUpdated(ctx context.Context, post *models.Post) error {
	return p.publish(ctx, SubjectPostUpdated, postEvent("update", post))
}

func (p *NatsPublisher) PublishPostDeleted(ctx context.Context, postID bson.ObjectID) error {
	return p.publish(ctx, SubjectPostDeleted, PostEvent{Action: "delete", ID: postID.Hex(), At: time.Now().UTC()})
}

func postEvent(action string, post *models.Post) PostEvent {
	return PostEvent{
		Action:    action,
		ID:        post.ID.Hex(),
		CreatorID: post.Creator.Hex(),
		Title:     post.Title,
		ImageURL:  post.ImageURL,
		At:        post.UpdatedAt,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, subject string, event PostEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	// carry the caller's trace into the message headers
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	slog.DebugContext(ctx, "publishing post event", "subject", subject, "post_id", event.ID)
	return p.nc.PublishMsg(msg)
}
