package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%d"
	FeedKey           = "feed:latest"
	ReactionKeyPrefix = "post:%d:reactions"
)

const (
	PostTTL     = 30 * time.Minute
	FeedTTL     = 1 * time.Minute
	ReactionTTL = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ReactionKey(postID uint) string {
	return fmt.Sprintf(ReactionKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, ReactionKey(postID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey)
}
