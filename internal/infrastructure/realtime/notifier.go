package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"tutorlink.backend/pkg/logger"
)

// ProfilesChannel is the pub/sub channel carrying profile change events.
const ProfilesChannel = "profiles"

// ProfileEvent describes a moderation change on a user's profile. Admin
// dashboards subscribe to these to refresh without polling.
type ProfileEvent struct {
	UserID uuid.UUID `json:"userId"`
	Action string    `json:"action"`
	Status string    `json:"status"`
}

// Notifier publishes and consumes profile change events over Redis pub/sub
type Notifier struct {
	client *redis.Client
}

// NewNotifier creates a new notifier
func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// PublishProfileEvent broadcasts a profile change. Publish failures are
// logged and swallowed: moderation outcomes must not depend on pub/sub.
func (n *Notifier) PublishProfileEvent(ctx context.Context, event ProfileEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "failed to marshal profile event", zap.Error(err))
		return
	}
	if err := n.client.Publish(ctx, ProfilesChannel, payload).Err(); err != nil {
		logger.Error(ctx, "failed to publish profile event", zap.Error(err), zap.String("userId", event.UserID.String()))
	}
}

// SubscribeProfileEvents subscribes to profile changes. The returned channel
// closes when ctx is cancelled. Malformed payloads are skipped.
func (n *Notifier) SubscribeProfileEvents(ctx context.Context) <-chan ProfileEvent {
	sub := n.client.Subscribe(ctx, ProfilesChannel)
	events := make(chan ProfileEvent)

	go func() {
		defer close(events)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var event ProfileEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logger.Warn(ctx, "skipping malformed profile event", zap.Error(err))
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events
}
