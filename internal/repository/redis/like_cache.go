package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danupratama/forum-api/domain"
)

const (
	KeyCommentLikes = "comment:likes:%s"

	likeCountTTL = time.Hour
)

type commentLikeCache struct {
	client *redis.Client
}

var _ domain.CommentLikeCache = (*commentLikeCache)(nil)

func NewCommentLikeCache(client *redis.Client) *commentLikeCache {
	return &commentLikeCache{
		client,
	}
}

func (c *commentLikeCache) MGetCounts(ctx context.Context, commentIDs []string) (map[string]int64, []string, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil, nil
	}

	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyCommentLikes, id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	found := make(map[string]int64, len(commentIDs))
	var missing []string
	for i, val := range values {
		if val == nil {
			missing = append(missing, commentIDs[i])
			continue
		}
		s, ok := val.(string)
		if !ok {
			missing = append(missing, commentIDs[i])
			continue
		}
		count, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			missing = append(missing, commentIDs[i])
			continue
		}
		found[commentIDs[i]] = count
	}
	return found, missing, nil
}

func (c *commentLikeCache) MSetCounts(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, count := range counts {
		pipe.Set(ctx, fmt.Sprintf(KeyCommentLikes, id), count, likeCountTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *commentLikeCache) SetCount(ctx context.Context, commentID string, count int64) error {
	return c.client.Set(ctx, fmt.Sprintf(KeyCommentLikes, commentID), count, likeCountTTL).Err()
}

// IncrCount only adjusts a count that is already cached; incrementing an
// absent key would fabricate a count of 1 regardless of the real total.
func (c *commentLikeCache) IncrCount(ctx context.Context, commentID string) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrCacheMiss
	}
	return c.client.Incr(ctx, key).Err()
}

func (c *commentLikeCache) DecrCount(ctx context.Context, commentID string) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrCacheMiss
	}
	return c.client.Decr(ctx, key).Err()
}
