package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrReplyNotFound = errors.New("reply not found")

// ReplyRepository - cache of raw model replies keyed by model and prompt.
type ReplyRepository interface {
	Get(ctx context.Context, model, prompt string) (string, error)
	Save(ctx context.Context, model, prompt, reply string) error
}

type dbReply struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReplyRepository - ttl of 0 keeps replies forever.
func NewReplyRepository(client *redis.Client, ttl time.Duration) ReplyRepository {
	return &dbReply{
		client: client,
		ttl:    ttl,
	}
}

func replyKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "reply:" + model + ":" + hex.EncodeToString(sum[:])
}

func (that *dbReply) Get(ctx context.Context, model, prompt string) (string, error) {
	reply, err := that.client.Get(ctx, replyKey(model, prompt)).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrReplyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get reply: %w", err)
	}

	return reply, nil
}

func (that *dbReply) Save(ctx context.Context, model, prompt, reply string) error {
	if err := that.client.Set(ctx, replyKey(model, prompt), reply, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set reply: %w", err)
	}

	return nil
}

type nopReply struct{}

// NewNopReplyRepository - used when redis is disabled, never holds anything.
func NewNopReplyRepository() ReplyRepository {
	return nopReply{}
}

func (nopReply) Get(context.Context, string, string) (string, error) {
	return "", ErrReplyNotFound
}

func (nopReply) Save(context.Context, string, string, string) error {
	return nil
}
