package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/redis/go-redis/v9"
)

type CartRepoError error

var ErrCorruptSnapshot CartRepoError = errors.New("corrupt cart snapshot")

// CartSnapshotRepo 購物車快照
// 整台購物車以JSON array存在單一key底下  每次Save整份覆寫
type CartSnapshotRepo struct {
	client *redis.Client
}

func NewCartSnapshotRepo(client *redis.Client) *CartSnapshotRepo {
	return &CartSnapshotRepo{client: client}
}

var _ cart.Persister = (*CartSnapshotRepo)(nil)

func generateCartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Load 讀取快照  key不存在回傳空車
// 快照毀損時先刪掉再回傳ErrCorruptSnapshot  由store決定fail-soft行為
func (r *CartSnapshotRepo) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	key := generateCartKey(sessionID)

	raw, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		r.client.Del(ctx, key)
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return lines, nil
}

// Save 購物車可以跨session存在  不設TTL
func (r *CartSnapshotRepo) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	key := generateCartKey(sessionID)

	if len(lines) == 0 {
		return r.client.Del(ctx, key).Err()
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (r *CartSnapshotRepo) Drop(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, generateCartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to drop cart snapshot: %w", err)
	}
	return nil
}
