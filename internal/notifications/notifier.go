package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"mindscape/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// FactsChannel is the broadcast channel carrying every published fact.
const FactsChannel = "feed:facts"

// envelope is the wire format for a published fact.
type envelope struct {
	Fact    string `json:"fact"`
	Payload any    `json:"payload"`
}

// Notifier publishes domain facts into Redis channels.
// A nil Redis client turns every publish into a no-op, so the core keeps
// working when Redis is unavailable.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Publish sends the fact to the broadcast facts channel.
func (n *Notifier) Publish(ctx context.Context, fact Fact) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(envelope{Fact: fact.Name(), Payload: fact})
	if err != nil {
		return err
	}
	if err := n.rdb.Publish(ctx, FactsChannel, payload).Err(); err != nil {
		return err
	}
	middleware.FactsPublished.WithLabelValues(fact.Name()).Inc()
	return nil
}

// PublishUser sends the fact to a single user's notification channel in
// addition to the broadcast channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, fact Fact) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	if err := n.Publish(ctx, fact); err != nil {
		return err
	}
	payload, err := json.Marshal(envelope{Fact: fact.Name(), Payload: fact})
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// UserChannel names the notification channel a client subscribes to for a
// single user's facts.
func UserChannel(userID uint) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}
